package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago. Un pago solo transiciona pending -> success | failed.
const (
	PaymentPending = "pending"
	PaymentSuccess = "success"
	PaymentFailed  = "failed"
)

// Payment pago registrado por la pasarela. Inmutable salvo el estado.
type Payment struct {
	ID        string
	BranchID  string
	OrderID   string
	Phone     string
	Amount    decimal.Decimal
	Status    string
	CreatedAt time.Time
	UserID    string
}

// OrderItem línea de un pedido, en el orden en que se pidió.
type OrderItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Category string          `json:"category"`
}

// Order pedido para recoger en local.
type Order struct {
	ID            string
	BranchID      string
	Items         []OrderItem
	Total         decimal.Decimal
	Status        string
	PaymentMethod string
	PickupTime    string // HH:MM
	CreatedAt     time.Time
	UserID        string
	Name          string
	Phone         string
}
