package repository

import (
	"context"
	"time"

	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
)

// TransactionRepository lecturas de pagos y pedidos (read-only; los escribe la pasarela/web de pedidos).
type TransactionRepository interface {
	// ListPayments devuelve los pagos de la sucursal creados desde since (zero = todos).
	ListPayments(ctx context.Context, branchID string, since time.Time) ([]*entity.Payment, error)
	// ListOrders devuelve los pedidos de la sucursal creados desde since (zero = todos).
	ListOrders(ctx context.Context, branchID string, since time.Time) ([]*entity.Order, error)

	PagePayments(ctx context.Context, branchID, status string, limit, offset int) ([]*entity.Payment, int, error)
	PageOrders(ctx context.Context, branchID, status string, limit, offset int) ([]*entity.Order, int, error)
}
