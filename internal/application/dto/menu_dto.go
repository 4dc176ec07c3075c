package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMenuItemRequest entrada para crear un plato (JSON o multipart con imagen opcional en "image").
type CreateMenuItemRequest struct {
	Name        string          `json:"name" form:"name" validate:"required,max=200"`
	Description string          `json:"description" form:"description"`
	Price       decimal.Decimal `json:"price" form:"price"`
	Category    string          `json:"category" form:"category" validate:"required,max=100"`
	IsAvailable *bool           `json:"is_available" form:"is_available"`
}

// UpdateMenuItemRequest campos opcionales a modificar.
type UpdateMenuItemRequest struct {
	Name        *string          `json:"name" form:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" form:"description"`
	Price       *decimal.Decimal `json:"price" form:"price"`
	Category    *string          `json:"category" form:"category" validate:"omitempty,min=1,max=100"`
	IsAvailable *bool            `json:"is_available" form:"is_available"`
}

// MenuItemResponse salida de un plato.
type MenuItemResponse struct {
	ID          string          `json:"id"`
	BranchID    string          `json:"branch_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url"`
	PublicID    string          `json:"public_id"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ImportMenuRequest importación de la carta desde Google Sheets.
type ImportMenuRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" validate:"required"`
	Range         string `json:"range"` // por defecto "A:F"
}

// ImportMenuResult resumen de la importación.
type ImportMenuResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
