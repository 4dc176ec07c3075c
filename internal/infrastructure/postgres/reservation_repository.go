package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// date se lee como texto YYYY-MM-DD, igual que lo envía el formulario.
const reservationSelect = `SELECT id, branch_id, user_id, name, email, phone, to_char(date, 'YYYY-MM-DD'), time,
	guests, status, notes, created_at, updated_at FROM reservations`

// ReservationRepo implementación de ReservationRepository sobre PostgreSQL.
type ReservationRepo struct {
	q Querier
}

// NewReservationRepository construye el adaptador de reservas.
func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var r entity.Reservation
	err := row.Scan(&r.ID, &r.BranchID, &r.UserID, &r.Name, &r.Email, &r.Phone, &r.Date, &r.Time,
		&r.Guests, &r.Status, &r.Notes, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create persiste una reserva.
func (r *ReservationRepo) Create(ctx context.Context, res *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, branch_id, user_id, name, email, phone, date, time, guests, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		res.ID, res.BranchID, res.UserID, res.Name, res.Email, res.Phone, res.Date, res.Time,
		res.Guests, res.Status, res.Notes, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return dbError("insert reservation", err)
	}
	return nil
}

// GetByID obtiene una reserva de la sucursal.
func (r *ReservationRepo) GetByID(ctx context.Context, branchID, id string) (*entity.Reservation, error) {
	res, err := scanReservation(r.q.QueryRow(ctx, reservationSelect+` WHERE id = $1 AND branch_id = $2`, id, branchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get reservation", err)
	}
	return res, nil
}

// ListByBranch lista por fecha y hora; phone vacío = sin filtro.
func (r *ReservationRepo) ListByBranch(ctx context.Context, branchID, phone string) ([]*entity.Reservation, error) {
	rows, err := r.q.Query(ctx,
		reservationSelect+` WHERE branch_id = $1 AND ($2::text IS NULL OR phone = $2) ORDER BY date DESC, time DESC`,
		branchID, nullIfEmpty(phone))
	if err != nil {
		return nil, dbError("list reservations", err)
	}
	defer rows.Close()
	list := make([]*entity.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, dbError("scan reservation", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// Update modifica la reserva; exige que sea del usuario que la creó.
func (r *ReservationRepo) Update(ctx context.Context, res *entity.Reservation) error {
	query := `
		UPDATE reservations SET name = $4, email = $5, phone = $6, date = $7::date, time = $8,
			guests = $9, status = $10, notes = $11, updated_at = $12
		WHERE id = $1 AND branch_id = $2 AND user_id = $3`
	tag, err := r.q.Exec(ctx, query,
		res.ID, res.BranchID, res.UserID, res.Name, res.Email, res.Phone, res.Date, res.Time,
		res.Guests, res.Status, res.Notes, res.UpdatedAt,
	)
	if err != nil {
		return dbError("update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia el estado; cualquier miembro del personal de la sucursal puede hacerlo.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, branchID, id, status string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE reservations SET status = $3, updated_at = now() WHERE id = $1 AND branch_id = $2`,
		id, branchID, status)
	if err != nil {
		return dbError("update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra la reserva del usuario.
func (r *ReservationRepo) Delete(ctx context.Context, branchID, userID, id string) error {
	tag, err := r.q.Exec(ctx,
		`DELETE FROM reservations WHERE id = $1 AND branch_id = $2 AND user_id = $3`, id, branchID, userID)
	if err != nil {
		return dbError("delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
