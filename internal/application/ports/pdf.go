package ports

import (
	"context"

	"github.com/jhoicas/restaurante-admin-api/internal/domain/analytics"
)

// ReportHeader datos de cabecera del informe PDF.
type ReportHeader struct {
	RestaurantName string
	BranchName     string
}

// AnalyticsPDFGenerator renderiza un snapshot de analítica como PDF.
type AnalyticsPDFGenerator interface {
	GenerateAnalyticsPDF(ctx context.Context, header ReportHeader, snap analytics.Snapshot) ([]byte, error)
}
