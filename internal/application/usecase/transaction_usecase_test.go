package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/session"
)

// fakeTxRepo guarda los argumentos de la última página pedida.
type fakeTxRepo struct {
	payments []*entity.Payment
	orders   []*entity.Order
	err      error

	gotBranch, gotStatus string
	gotLimit, gotOffset  int
}

func (f *fakeTxRepo) ListPayments(context.Context, string, time.Time) ([]*entity.Payment, error) {
	return f.payments, f.err
}

func (f *fakeTxRepo) ListOrders(context.Context, string, time.Time) ([]*entity.Order, error) {
	return f.orders, f.err
}

func (f *fakeTxRepo) PagePayments(_ context.Context, branchID, status string, limit, offset int) ([]*entity.Payment, int, error) {
	f.gotBranch, f.gotStatus, f.gotLimit, f.gotOffset = branchID, status, limit, offset
	if f.err != nil {
		return nil, 0, f.err
	}
	return page(f.payments, limit, offset), len(f.payments), nil
}

func (f *fakeTxRepo) PageOrders(_ context.Context, branchID, status string, limit, offset int) ([]*entity.Order, int, error) {
	f.gotBranch, f.gotStatus, f.gotLimit, f.gotOffset = branchID, status, limit, offset
	if f.err != nil {
		return nil, 0, f.err
	}
	return page(f.orders, limit, offset), len(f.orders), nil
}

func page[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func TestTransactions_Payments_PaginaPorDefecto(t *testing.T) {
	repo := &fakeTxRepo{payments: []*entity.Payment{
		{ID: "p1", OrderID: "o1", Amount: decimal.RequireFromString("25000.50"), Status: "approved"},
		{ID: "p2", OrderID: "o2", Amount: decimal.NewFromInt(18000), Status: "pending"},
	}}
	uc := usecase.NewTransactionUseCase(repo)

	out, err := uc.Payments(context.Background(), scopeA, dto.TransactionListQuery{})

	require.NoError(t, err)
	assert.Equal(t, scopeA.BranchID, repo.gotBranch)
	assert.Equal(t, 20, repo.gotLimit)
	assert.Equal(t, 0, repo.gotOffset)
	assert.Equal(t, dto.PageResponse{Limit: 20, Offset: 0, Total: 2}, out.Page)
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].Amount.Equal(decimal.RequireFromString("25000.5")))
}

func TestTransactions_Orders_FiltroYOffset(t *testing.T) {
	repo := &fakeTxRepo{orders: []*entity.Order{
		{ID: "o1", Total: decimal.NewFromInt(10000)},
		{ID: "o2", Total: decimal.NewFromInt(12000)},
		{ID: "o3", Total: decimal.NewFromInt(9000), Items: []entity.OrderItem{{Name: "Bandeja paisa", Price: decimal.NewFromInt(9000)}}},
	}}
	uc := usecase.NewTransactionUseCase(repo)

	out, err := uc.Orders(context.Background(), scopeA, dto.TransactionListQuery{
		PageRequest: dto.PageRequest{Limit: 2, Offset: 2},
		Status:      "ready",
	})

	require.NoError(t, err)
	assert.Equal(t, "ready", repo.gotStatus)
	assert.Equal(t, 3, out.Page.Total)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "o3", out.Items[0].ID)
	require.Len(t, out.Items[0].Items, 1)
	assert.Equal(t, "Bandeja paisa", out.Items[0].Items[0].Name)
}

func TestTransactions_PaginaFueraDeRango(t *testing.T) {
	repo := &fakeTxRepo{}
	uc := usecase.NewTransactionUseCase(repo)

	_, err := uc.Payments(context.Background(), scopeA, dto.TransactionListQuery{PageRequest: dto.PageRequest{Limit: 500}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Orders(context.Background(), scopeA, dto.TransactionListQuery{PageRequest: dto.PageRequest{Offset: -1}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, repo.gotBranch)
}

func TestTransactions_ListaVaciaNoEsNil(t *testing.T) {
	uc := usecase.NewTransactionUseCase(&fakeTxRepo{})

	out, err := uc.Orders(context.Background(), scopeA, dto.TransactionListQuery{})

	require.NoError(t, err)
	assert.NotNil(t, out.Items)
	assert.Empty(t, out.Items)
}

func TestTransactions_ErroresDelRepositorio(t *testing.T) {
	uc := usecase.NewTransactionUseCase(&fakeTxRepo{err: errDB})

	_, err := uc.Payments(context.Background(), scopeA, dto.TransactionListQuery{})
	assert.ErrorIs(t, err, errDB)

	_, err = uc.Orders(context.Background(), session.Scope{UserID: "u1"}, dto.TransactionListQuery{})
	assert.ErrorIs(t, err, domain.ErrNoBranch)
}
