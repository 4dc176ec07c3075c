package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

const menuColumns = `id, branch_id, name, description, price, category, image_url, public_id, is_available, created_at, updated_at`

// MenuItemRepo implementación de MenuItemRepository sobre PostgreSQL.
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository construye el adaptador de la carta.
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

func scanMenuItem(row pgx.Row) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := row.Scan(&m.ID, &m.BranchID, &m.Name, &m.Description, &m.Price, &m.Category,
		&m.ImageURL, &m.PublicID, &m.IsAvailable, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste un plato.
func (r *MenuItemRepo) Create(ctx context.Context, m *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (` + menuColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.BranchID, m.Name, m.Description, m.Price, m.Category,
		m.ImageURL, m.PublicID, m.IsAvailable, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return dbError("insert menu item", err)
	}
	return nil
}

// GetByID obtiene un plato de la sucursal (nil, nil si no existe).
func (r *MenuItemRepo) GetByID(ctx context.Context, branchID, id string) (*entity.MenuItem, error) {
	m, err := scanMenuItem(r.q.QueryRow(ctx,
		`SELECT `+menuColumns+` FROM menu_items WHERE id = $1 AND branch_id = $2`, id, branchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get menu item", err)
	}
	return m, nil
}

// ListByBranch lista la carta por categoría y nombre; category vacío = todas.
func (r *MenuItemRepo) ListByBranch(ctx context.Context, branchID, category string) ([]*entity.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items
		WHERE branch_id = $1 AND ($2::text IS NULL OR category = $2)
		ORDER BY category, name`
	rows, err := r.q.Query(ctx, query, branchID, nullIfEmpty(category))
	if err != nil {
		return nil, dbError("list menu items", err)
	}
	defer rows.Close()
	list := make([]*entity.MenuItem, 0)
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, dbError("scan menu item", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update reemplaza los campos editables del plato.
func (r *MenuItemRepo) Update(ctx context.Context, m *entity.MenuItem) error {
	query := `
		UPDATE menu_items SET name = $3, description = $4, price = $5, category = $6,
			image_url = $7, public_id = $8, is_available = $9, updated_at = $10
		WHERE id = $1 AND branch_id = $2`
	tag, err := r.q.Exec(ctx, query,
		m.ID, m.BranchID, m.Name, m.Description, m.Price, m.Category,
		m.ImageURL, m.PublicID, m.IsAvailable, m.UpdatedAt,
	)
	if err != nil {
		return dbError("update menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra el plato y devuelve el public_id de su imagen.
func (r *MenuItemRepo) Delete(ctx context.Context, branchID, id string) (string, error) {
	return deleteReturningPublicID(ctx, r.q, "menu_items", branchID, id)
}

// deleteReturningPublicID borra una fila con imagen y devuelve su public_id para limpiar el CDN.
// table es siempre un literal del paquete.
func deleteReturningPublicID(ctx context.Context, q Querier, table, branchID, id string) (string, error) {
	var publicID string
	err := q.QueryRow(ctx,
		`DELETE FROM `+table+` WHERE id = $1 AND branch_id = $2 RETURNING public_id`, id, branchID,
	).Scan(&publicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", dbError("delete "+table, err)
	}
	return publicID, nil
}
