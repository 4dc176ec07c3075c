package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const (
	paymentSelect = `SELECT id, branch_id, order_id, phone, amount, status, created_at, user_id FROM payments`
	orderSelect   = `SELECT id, branch_id, items, total, status, payment_method, pickup_time, created_at, user_id, name, phone FROM orders`
)

// TransactionRepo lecturas de pagos y pedidos.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	if err := row.Scan(&p.ID, &p.BranchID, &p.OrderID, &p.Phone, &p.Amount, &p.Status, &p.CreatedAt, &p.UserID); err != nil {
		return nil, err
	}
	return &p, nil
}

// items es jsonb: pgx lo decodifica directamente en []entity.OrderItem.
func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.BranchID, &o.Items, &o.Total, &o.Status, &o.PaymentMethod, &o.PickupTime,
		&o.CreatedAt, &o.UserID, &o.Name, &o.Phone)
	if err != nil {
		return nil, err
	}
	if o.Items == nil {
		o.Items = []entity.OrderItem{}
	}
	return &o, nil
}

// sinceArg convierte el zero value en NULL (= sin límite inferior).
func sinceArg(since time.Time) *time.Time {
	if since.IsZero() {
		return nil
	}
	return &since
}

// ListPayments pagos de la sucursal desde since.
func (r *TransactionRepo) ListPayments(ctx context.Context, branchID string, since time.Time) ([]*entity.Payment, error) {
	rows, err := r.q.Query(ctx,
		paymentSelect+` WHERE branch_id = $1 AND ($2::timestamptz IS NULL OR created_at >= $2) ORDER BY created_at, id`,
		branchID, sinceArg(since))
	if err != nil {
		return nil, dbError("list payments", err)
	}
	return collect(rows, scanPayment, "payment")
}

// ListOrders pedidos de la sucursal desde since.
func (r *TransactionRepo) ListOrders(ctx context.Context, branchID string, since time.Time) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx,
		orderSelect+` WHERE branch_id = $1 AND ($2::timestamptz IS NULL OR created_at >= $2) ORDER BY created_at, id`,
		branchID, sinceArg(since))
	if err != nil {
		return nil, dbError("list orders", err)
	}
	return collect(rows, scanOrder, "order")
}

// PagePayments página de pagos (más recientes primero) y total; status vacío = todos.
func (r *TransactionRepo) PagePayments(ctx context.Context, branchID, status string, limit, offset int) ([]*entity.Payment, int, error) {
	where := ` WHERE branch_id = $1 AND ($2::text IS NULL OR status = $2)`
	total, err := r.count(ctx, `SELECT COUNT(*) FROM payments`+where, branchID, nullIfEmpty(status))
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.q.Query(ctx, paymentSelect+where+` ORDER BY created_at DESC, id DESC LIMIT $3 OFFSET $4`,
		branchID, nullIfEmpty(status), limit, offset)
	if err != nil {
		return nil, 0, dbError("page payments", err)
	}
	list, err := collect(rows, scanPayment, "payment")
	return list, total, err
}

// PageOrders página de pedidos (más recientes primero) y total; status vacío = todos.
func (r *TransactionRepo) PageOrders(ctx context.Context, branchID, status string, limit, offset int) ([]*entity.Order, int, error) {
	where := ` WHERE branch_id = $1 AND ($2::text IS NULL OR status = $2)`
	total, err := r.count(ctx, `SELECT COUNT(*) FROM orders`+where, branchID, nullIfEmpty(status))
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.q.Query(ctx, orderSelect+where+` ORDER BY created_at DESC, id DESC LIMIT $3 OFFSET $4`,
		branchID, nullIfEmpty(status), limit, offset)
	if err != nil {
		return nil, 0, dbError("page orders", err)
	}
	list, err := collect(rows, scanOrder, "order")
	return list, total, err
}

func (r *TransactionRepo) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, dbError("count", err)
	}
	return n, nil
}

func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error), what string) ([]*T, error) {
	defer rows.Close()
	list := make([]*T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, dbError("scan "+what, err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("iterate "+what, err)
	}
	return list, nil
}
