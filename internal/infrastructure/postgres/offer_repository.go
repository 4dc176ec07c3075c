package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
)

var _ repository.OfferRepository = (*OfferRepo)(nil)

const offerColumns = `id, branch_id, title, description, image_url, public_id, valid_from, valid_until, is_active, created_at, updated_at`

// OfferRepo implementación de OfferRepository sobre PostgreSQL.
type OfferRepo struct {
	q Querier
}

// NewOfferRepository construye el adaptador de ofertas.
func NewOfferRepository(q Querier) *OfferRepo {
	return &OfferRepo{q: q}
}

func scanOffer(row pgx.Row) (*entity.Offer, error) {
	var o entity.Offer
	err := row.Scan(&o.ID, &o.BranchID, &o.Title, &o.Description, &o.ImageURL, &o.PublicID,
		&o.ValidFrom, &o.ValidUntil, &o.IsActive, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste una oferta.
func (r *OfferRepo) Create(ctx context.Context, o *entity.Offer) error {
	query := `
		INSERT INTO offers (` + offerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.BranchID, o.Title, o.Description, o.ImageURL, o.PublicID,
		o.ValidFrom, o.ValidUntil, o.IsActive, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return dbError("insert offer", err)
	}
	return nil
}

// GetByID obtiene una oferta de la sucursal.
func (r *OfferRepo) GetByID(ctx context.Context, branchID, id string) (*entity.Offer, error) {
	o, err := scanOffer(r.q.QueryRow(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE id = $1 AND branch_id = $2`, id, branchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get offer", err)
	}
	return o, nil
}

// ListByBranch lista las ofertas, las más recientes primero. activeOnly filtra por is_active.
func (r *OfferRepo) ListByBranch(ctx context.Context, branchID string, activeOnly bool) ([]*entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers
		WHERE branch_id = $1 AND (NOT $2 OR is_active)
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, branchID, activeOnly)
	if err != nil {
		return nil, dbError("list offers", err)
	}
	defer rows.Close()
	list := make([]*entity.Offer, 0)
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, dbError("scan offer", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Update reemplaza los campos editables de la oferta.
func (r *OfferRepo) Update(ctx context.Context, o *entity.Offer) error {
	query := `
		UPDATE offers SET title = $3, description = $4, image_url = $5, public_id = $6,
			valid_from = $7, valid_until = $8, is_active = $9, updated_at = $10
		WHERE id = $1 AND branch_id = $2`
	tag, err := r.q.Exec(ctx, query,
		o.ID, o.BranchID, o.Title, o.Description, o.ImageURL, o.PublicID,
		o.ValidFrom, o.ValidUntil, o.IsActive, o.UpdatedAt,
	)
	if err != nil {
		return dbError("update offer", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra la oferta y devuelve el public_id de su imagen.
func (r *OfferRepo) Delete(ctx context.Context, branchID, id string) (string, error) {
	return deleteReturningPublicID(ctx, r.q, "offers", branchID, id)
}
