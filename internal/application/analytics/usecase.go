// Package analytics contiene el caso de uso del dashboard de analítica: carga pagos y pedidos
// de la sucursal y delega el cálculo en domain/analytics.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	domainanalytics "github.com/jhoicas/restaurante-admin-api/internal/domain/analytics"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/session"
	"github.com/jhoicas/restaurante-admin-api/pkg/validate"
)

// rollingDays ventana mínima a cargar para las métricas 24h/7d/30d.
const rollingDays = 30

// UseCase genera el snapshot de analítica y su versión PDF.
type UseCase struct {
	txRepo       repository.TransactionRepository
	branchRepo   repository.BranchRepository
	settingsRepo repository.SettingsRepository
	pdf          ports.AnalyticsPDFGenerator
	loc          *time.Location
	now          func() time.Time
}

// NewUseCase construye el caso de uso. loc es la zona para agrupar por día/hora (nil = UTC).
func NewUseCase(
	txRepo repository.TransactionRepository,
	branchRepo repository.BranchRepository,
	settingsRepo repository.SettingsRepository,
	pdf ports.AnalyticsPDFGenerator,
	loc *time.Location,
) *UseCase {
	return &UseCase{
		txRepo:       txRepo,
		branchRepo:   branchRepo,
		settingsRepo: settingsRepo,
		pdf:          pdf,
		loc:          loc,
		now:          time.Now,
	}
}

// WithClock sustituye el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Snapshot calcula las estadísticas de la sucursal activa.
//
// Pagos y pedidos se cargan en paralelo; el reloj se captura una sola vez por petición.
func (uc *UseCase) Snapshot(ctx context.Context, scope session.Scope, q dto.AnalyticsQuery) (domainanalytics.Snapshot, error) {
	if scope.UserID == "" {
		return domainanalytics.Snapshot{}, domain.ErrUnauthorized
	}
	if !scope.HasBranch() {
		return domainanalytics.Snapshot{}, domain.ErrNoBranch
	}
	if err := validate.Struct(q); err != nil || !domainanalytics.ValidDays(q.Days) {
		return domainanalytics.Snapshot{}, fmt.Errorf("%w: days debe ser 0, 3, 7, 14 o 30", domain.ErrInvalidInput)
	}

	now := uc.now()
	since := time.Time{}
	if q.Days > 0 {
		since = now.AddDate(0, 0, -max(q.Days, rollingDays))
	}

	type paymentsResult struct {
		rows []*entity.Payment
		err  error
	}
	type ordersResult struct {
		rows []*entity.Order
		err  error
	}
	paymentsCh := make(chan paymentsResult, 1)
	ordersCh := make(chan ordersResult, 1)

	go func() {
		rows, err := uc.txRepo.ListPayments(ctx, scope.BranchID, since)
		paymentsCh <- paymentsResult{rows, err}
	}()
	go func() {
		rows, err := uc.txRepo.ListOrders(ctx, scope.BranchID, since)
		ordersCh <- ordersResult{rows, err}
	}()

	payments := <-paymentsCh
	orders := <-ordersCh

	if payments.err != nil {
		return domainanalytics.Snapshot{}, fmt.Errorf("analytics: pagos: %w", payments.err)
	}
	if orders.err != nil {
		return domainanalytics.Snapshot{}, fmt.Errorf("analytics: pedidos: %w", orders.err)
	}

	return domainanalytics.Build(payments.rows, orders.rows, domainanalytics.Options{
		Now:      now,
		Days:     q.Days,
		TopN:     q.Top,
		Location: uc.loc,
	}), nil
}

// Report genera el PDF del snapshot con el nombre del restaurante y de la sucursal en la cabecera.
func (uc *UseCase) Report(ctx context.Context, scope session.Scope, q dto.AnalyticsQuery) ([]byte, error) {
	snap, err := uc.Snapshot(ctx, scope, q)
	if err != nil {
		return nil, err
	}
	header := ports.ReportHeader{}
	if b, err := uc.branchRepo.GetByID(ctx, scope.BranchID); err == nil && b != nil {
		header.BranchName = b.Name
	}
	if s, err := uc.settingsRepo.Get(ctx, scope.BranchID); err == nil && s != nil {
		header.RestaurantName = s.RestaurantName
	}
	if uc.pdf == nil {
		return nil, fmt.Errorf("%w: generador PDF no configurado", domain.ErrUpstream)
	}
	return uc.pdf.GenerateAnalyticsPDF(ctx, header, snap)
}
