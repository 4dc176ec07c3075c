package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
)

var _ repository.PrivateEventRepository = (*PrivateEventRepo)(nil)

const eventSelect = `SELECT id, branch_id, name, email, phone, to_char(event_date, 'YYYY-MM-DD'), guests,
	event_type, message, status, created_at, updated_at FROM private_events`

// PrivateEventRepo solicitudes de eventos privados.
type PrivateEventRepo struct {
	q Querier
}

// NewPrivateEventRepository construye el adaptador.
func NewPrivateEventRepository(q Querier) *PrivateEventRepo {
	return &PrivateEventRepo{q: q}
}

func scanEvent(row pgx.Row) (*entity.PrivateEvent, error) {
	var e entity.PrivateEvent
	err := row.Scan(&e.ID, &e.BranchID, &e.Name, &e.Email, &e.Phone, &e.EventDate, &e.Guests,
		&e.EventType, &e.Message, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste la solicitud.
func (r *PrivateEventRepo) Create(ctx context.Context, e *entity.PrivateEvent) error {
	query := `
		INSERT INTO private_events (id, branch_id, name, email, phone, event_date, guests, event_type, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.BranchID, e.Name, e.Email, e.Phone, e.EventDate, e.Guests,
		e.EventType, e.Message, e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return dbError("insert private event", err)
	}
	return nil
}

// GetByID obtiene una solicitud de la sucursal.
func (r *PrivateEventRepo) GetByID(ctx context.Context, branchID, id string) (*entity.PrivateEvent, error) {
	e, err := scanEvent(r.q.QueryRow(ctx, eventSelect+` WHERE id = $1 AND branch_id = $2`, id, branchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get private event", err)
	}
	return e, nil
}

// ListByBranch lista por fecha del evento; status vacío = todos.
func (r *PrivateEventRepo) ListByBranch(ctx context.Context, branchID, status string) ([]*entity.PrivateEvent, error) {
	rows, err := r.q.Query(ctx,
		eventSelect+` WHERE branch_id = $1 AND ($2::text IS NULL OR status = $2) ORDER BY event_date, created_at`,
		branchID, nullIfEmpty(status))
	if err != nil {
		return nil, dbError("list private events", err)
	}
	defer rows.Close()
	list := make([]*entity.PrivateEvent, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, dbError("scan private event", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update modifica la solicitud.
func (r *PrivateEventRepo) Update(ctx context.Context, e *entity.PrivateEvent) error {
	query := `
		UPDATE private_events SET name = $3, email = $4, phone = $5, event_date = $6::date, guests = $7,
			event_type = $8, message = $9, status = $10, updated_at = $11
		WHERE id = $1 AND branch_id = $2`
	tag, err := r.q.Exec(ctx, query,
		e.ID, e.BranchID, e.Name, e.Email, e.Phone, e.EventDate, e.Guests,
		e.EventType, e.Message, e.Status, e.UpdatedAt,
	)
	if err != nil {
		return dbError("update private event", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra la solicitud.
func (r *PrivateEventRepo) Delete(ctx context.Context, branchID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM private_events WHERE id = $1 AND branch_id = $2`, id, branchID)
	if err != nil {
		return dbError("delete private event", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
