package usecase

import (
	"context"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/session"
)

// TransactionUseCase listados paginados de pagos y pedidos (solo lectura).
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// Payments lista los pagos de la sucursal, más recientes primero.
func (uc *TransactionUseCase) Payments(ctx context.Context, scope session.Scope, q dto.TransactionListQuery) (*dto.PaymentListResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	if err := validateInput(q); err != nil {
		return nil, err
	}
	q.DefaultPage()
	list, total, err := uc.repo.PagePayments(ctx, scope.BranchID, q.Status, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.PaymentResponse{
			ID:        p.ID,
			OrderID:   p.OrderID,
			Phone:     p.Phone,
			Amount:    p.Amount,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
		})
	}
	return &dto.PaymentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}

// Orders lista los pedidos de la sucursal, más recientes primero.
func (uc *TransactionUseCase) Orders(ctx context.Context, scope session.Scope, q dto.TransactionListQuery) (*dto.OrderListResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	if err := validateInput(q); err != nil {
		return nil, err
	}
	q.DefaultPage()
	list, total, err := uc.repo.PageOrders(ctx, scope.BranchID, q.Status, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, dto.OrderResponse{
			ID:            o.ID,
			Items:         o.Items,
			Total:         o.Total,
			Status:        o.Status,
			PaymentMethod: o.PaymentMethod,
			PickupTime:    o.PickupTime,
			Name:          o.Name,
			Phone:         o.Phone,
			CreatedAt:     o.CreatedAt,
		})
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}
