package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
)

var (
	_ repository.BranchRepository   = (*BranchRepo)(nil)
	_ repository.SettingsRepository = (*SettingsRepo)(nil)
)

const branchColumns = `id, owner_id, name, location, created_at, updated_at`

// BranchRepo implementación de BranchRepository sobre PostgreSQL (usable con pool o tx).
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador de sucursales. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

func scanBranch(row pgx.Row) (*entity.Branch, error) {
	var b entity.Branch
	if err := row.Scan(&b.ID, &b.OwnerID, &b.Name, &b.Location, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste una sucursal.
func (r *BranchRepo) Create(ctx context.Context, b *entity.Branch) error {
	query := `
		INSERT INTO branches (id, owner_id, name, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.q.Exec(ctx, query, b.ID, b.OwnerID, b.Name, b.Location, b.CreatedAt, b.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return dbError("insert branch", err)
	}
	return nil
}

// GetByID obtiene una sucursal por ID (nil, nil si no existe).
func (r *BranchRepo) GetByID(ctx context.Context, id string) (*entity.Branch, error) {
	b, err := scanBranch(r.q.QueryRow(ctx, `SELECT `+branchColumns+` FROM branches WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get branch", err)
	}
	return b, nil
}

// ListByOwner lista las sucursales del usuario por fecha de creación.
func (r *BranchRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Branch, error) {
	rows, err := r.q.Query(ctx, `SELECT `+branchColumns+` FROM branches WHERE owner_id = $1 ORDER BY created_at, name`, ownerID)
	if err != nil {
		return nil, dbError("list branches", err)
	}
	defer rows.Close()
	list := make([]*entity.Branch, 0)
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, dbError("scan branch", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Update modifica nombre y ubicación; solo el dueño puede hacerlo.
func (r *BranchRepo) Update(ctx context.Context, b *entity.Branch) error {
	query := `
		UPDATE branches SET name = $3, location = $4, updated_at = $5
		WHERE id = $1 AND owner_id = $2`
	tag, err := r.q.Exec(ctx, query, b.ID, b.OwnerID, b.Name, b.Location, b.UpdatedAt)
	if err != nil {
		return dbError("update branch", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra la sucursal del dueño; el contenido cae en cascada.
func (r *BranchRepo) Delete(ctx context.Context, ownerID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM branches WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return dbError("delete branch", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IsOwnedBy informa si la sucursal existe y pertenece al usuario.
func (r *BranchRepo) IsOwnedBy(ctx context.Context, branchID, userID string) (bool, error) {
	var owned bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM branches WHERE id = $1 AND owner_id = $2)`,
		branchID, userID,
	).Scan(&owned)
	if err != nil {
		return false, dbError("check branch owner", err)
	}
	return owned, nil
}

// SettingsRepo ajustes del restaurante por sucursal.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de ajustes.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve nil, nil si la sucursal aún no tiene ajustes.
func (r *SettingsRepo) Get(ctx context.Context, branchID string) (*entity.RestaurantSettings, error) {
	query := `
		SELECT branch_id, restaurant_name, phone, email, address, opening_hours, telegram_chat_id, updated_at
		FROM restaurant_settings WHERE branch_id = $1`
	var s entity.RestaurantSettings
	err := r.q.QueryRow(ctx, query, branchID).Scan(
		&s.BranchID, &s.RestaurantName, &s.Phone, &s.Email, &s.Address, &s.OpeningHours, &s.TelegramChatID, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get settings", err)
	}
	return &s, nil
}

// Upsert inserta o reemplaza los ajustes de la sucursal.
func (r *SettingsRepo) Upsert(ctx context.Context, s *entity.RestaurantSettings) error {
	query := `
		INSERT INTO restaurant_settings (branch_id, restaurant_name, phone, email, address, opening_hours, telegram_chat_id, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8)
		ON CONFLICT (branch_id) DO UPDATE SET
			restaurant_name = EXCLUDED.restaurant_name,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			opening_hours = EXCLUDED.opening_hours,
			telegram_chat_id = EXCLUDED.telegram_chat_id,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		s.BranchID, s.RestaurantName, s.Phone, s.Email, s.Address, string(s.OpeningHours), s.TelegramChatID, s.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return dbError("upsert settings", err)
	}
	return nil
}
