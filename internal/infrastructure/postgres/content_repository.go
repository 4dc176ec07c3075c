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
	_ repository.FAQRepository     = (*FAQRepo)(nil)
	_ repository.GalleryRepository = (*GalleryRepo)(nil)
)

// FAQRepo preguntas frecuentes.
type FAQRepo struct {
	q Querier
}

// NewFAQRepository construye el adaptador de FAQs.
func NewFAQRepository(q Querier) *FAQRepo {
	return &FAQRepo{q: q}
}

const faqColumns = `id, branch_id, question, answer, order_index, created_at, updated_at`

func scanFAQ(row pgx.Row) (*entity.FAQ, error) {
	var f entity.FAQ
	if err := row.Scan(&f.ID, &f.BranchID, &f.Question, &f.Answer, &f.OrderIndex, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

// Create persiste una FAQ.
func (r *FAQRepo) Create(ctx context.Context, f *entity.FAQ) error {
	_, err := r.q.Exec(ctx, `INSERT INTO faqs (`+faqColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.ID, f.BranchID, f.Question, f.Answer, f.OrderIndex, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return dbError("insert faq", err)
	}
	return nil
}

// GetByID obtiene una FAQ de la sucursal.
func (r *FAQRepo) GetByID(ctx context.Context, branchID, id string) (*entity.FAQ, error) {
	f, err := scanFAQ(r.q.QueryRow(ctx, `SELECT `+faqColumns+` FROM faqs WHERE id = $1 AND branch_id = $2`, id, branchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get faq", err)
	}
	return f, nil
}

// ListByBranch lista por order_index.
func (r *FAQRepo) ListByBranch(ctx context.Context, branchID string) ([]*entity.FAQ, error) {
	rows, err := r.q.Query(ctx, `SELECT `+faqColumns+` FROM faqs WHERE branch_id = $1 ORDER BY order_index, created_at`, branchID)
	if err != nil {
		return nil, dbError("list faqs", err)
	}
	defer rows.Close()
	list := make([]*entity.FAQ, 0)
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, dbError("scan faq", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// Update modifica pregunta y respuesta.
func (r *FAQRepo) Update(ctx context.Context, f *entity.FAQ) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE faqs SET question = $3, answer = $4, updated_at = $5 WHERE id = $1 AND branch_id = $2`,
		f.ID, f.BranchID, f.Question, f.Answer, f.UpdatedAt)
	if err != nil {
		return dbError("update faq", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra una FAQ.
func (r *FAQRepo) Delete(ctx context.Context, branchID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM faqs WHERE id = $1 AND branch_id = $2`, id, branchID)
	if err != nil {
		return dbError("delete faq", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateOrderIndex mueve una FAQ.
func (r *FAQRepo) UpdateOrderIndex(ctx context.Context, branchID, id string, orderIndex int) error {
	return updateOrderIndex(ctx, r.q, "faqs", branchID, id, orderIndex)
}

// NextOrderIndex posición para añadir al final.
func (r *FAQRepo) NextOrderIndex(ctx context.Context, branchID string) (int, error) {
	return nextOrderIndex(ctx, r.q, "faqs", branchID)
}

// GalleryRepo imágenes de la galería.
type GalleryRepo struct {
	q Querier
}

// NewGalleryRepository construye el adaptador de la galería.
func NewGalleryRepository(q Querier) *GalleryRepo {
	return &GalleryRepo{q: q}
}

// Create persiste una imagen ya subida al CDN.
func (r *GalleryRepo) Create(ctx context.Context, g *entity.GalleryItem) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO gallery_items (id, branch_id, image_url, public_id, caption, order_index, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		g.ID, g.BranchID, g.ImageURL, g.PublicID, g.Caption, g.OrderIndex, g.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return dbError("insert gallery item", err)
	}
	return nil
}

// ListByBranch lista por order_index.
func (r *GalleryRepo) ListByBranch(ctx context.Context, branchID string) ([]*entity.GalleryItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, branch_id, image_url, public_id, caption, order_index, created_at
		FROM gallery_items WHERE branch_id = $1 ORDER BY order_index, created_at`, branchID)
	if err != nil {
		return nil, dbError("list gallery", err)
	}
	defer rows.Close()
	list := make([]*entity.GalleryItem, 0)
	for rows.Next() {
		var g entity.GalleryItem
		if err := rows.Scan(&g.ID, &g.BranchID, &g.ImageURL, &g.PublicID, &g.Caption, &g.OrderIndex, &g.CreatedAt); err != nil {
			return nil, dbError("scan gallery item", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// UpdateCaption cambia el pie de foto.
func (r *GalleryRepo) UpdateCaption(ctx context.Context, branchID, id, caption string) error {
	tag, err := r.q.Exec(ctx, `UPDATE gallery_items SET caption = $3 WHERE id = $1 AND branch_id = $2`, id, branchID, caption)
	if err != nil {
		return dbError("update gallery caption", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra la imagen y devuelve su public_id.
func (r *GalleryRepo) Delete(ctx context.Context, branchID, id string) (string, error) {
	return deleteReturningPublicID(ctx, r.q, "gallery_items", branchID, id)
}

// UpdateOrderIndex mueve una imagen.
func (r *GalleryRepo) UpdateOrderIndex(ctx context.Context, branchID, id string, orderIndex int) error {
	return updateOrderIndex(ctx, r.q, "gallery_items", branchID, id, orderIndex)
}

// NextOrderIndex posición para añadir al final.
func (r *GalleryRepo) NextOrderIndex(ctx context.Context, branchID string) (int, error) {
	return nextOrderIndex(ctx, r.q, "gallery_items", branchID)
}

func updateOrderIndex(ctx context.Context, q Querier, table, branchID, id string, orderIndex int) error {
	tag, err := q.Exec(ctx, `UPDATE `+table+` SET order_index = $3 WHERE id = $1 AND branch_id = $2`, id, branchID, orderIndex)
	if err != nil {
		return dbError("reorder "+table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nextOrderIndex(ctx context.Context, q Querier, table, branchID string) (int, error) {
	var next int
	err := q.QueryRow(ctx, `SELECT COALESCE(MAX(order_index) + 1, 0) FROM `+table+` WHERE branch_id = $1`, branchID).Scan(&next)
	if err != nil {
		return 0, dbError("next order index "+table, err)
	}
	return next, nil
}
