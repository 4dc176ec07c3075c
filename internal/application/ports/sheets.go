package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// MenuSheetRow fila de carta leída de una hoja de cálculo.
type MenuSheetRow struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	ImageURL    string
	IsAvailable bool
}

// MenuSheetReader lee una carta desde Google Sheets.
type MenuSheetReader interface {
	ReadMenu(ctx context.Context, spreadsheetID, readRange string) ([]MenuSheetRow, error)
}
