package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem plato o bebida de la carta de una sucursal.
type MenuItem struct {
	ID          string
	BranchID    string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	ImageURL    string
	PublicID    string // public_id en Cloudinary (vacío si no hay imagen)
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
