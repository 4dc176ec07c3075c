package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/analytics"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/infrastructure/pdf"
)

func TestGenerateAnalyticsPDF(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)
	snap := analytics.Build(
		[]*entity.Payment{{Amount: decimal.NewFromInt(45000), Status: entity.PaymentSuccess, CreatedAt: now.Add(-time.Hour)}},
		[]*entity.Order{{
			Phone: "3001234567", Name: "Ana", Total: decimal.NewFromInt(45000), Status: "completed", CreatedAt: now.Add(-time.Hour),
			Items: []entity.OrderItem{{Name: "Bandeja paisa", Price: decimal.NewFromInt(32000), Quantity: 1, Category: "platos"}},
		}},
		analytics.Options{Now: now, Days: 7},
	)

	out, err := pdf.NewMarotoPDFGenerator().GenerateAnalyticsPDF(context.Background(),
		ports.ReportHeader{RestaurantName: "La Fonda", BranchName: "Centro"}, snap)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateAnalyticsPDF_SnapshotVacio(t *testing.T) {
	snap := analytics.Build(nil, nil, analytics.Options{Now: time.Now()})

	out, err := pdf.NewMarotoPDFGenerator().GenerateAnalyticsPDF(context.Background(), ports.ReportHeader{}, snap)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$0", pdf.Money(decimal.Zero))
	assert.Equal(t, "$950", pdf.Money(decimal.NewFromInt(950)))
	assert.Equal(t, "$1.234.568", pdf.Money(decimal.RequireFromString("1234567.8")))
	assert.Equal(t, "-$25.000", pdf.Money(decimal.NewFromInt(-25000)))
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "Todo el histórico", pdf.PeriodLabel(0))
	assert.Equal(t, "Últimos 14 días", pdf.PeriodLabel(14))
}
