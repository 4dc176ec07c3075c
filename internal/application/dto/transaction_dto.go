package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
)

// AnalyticsQuery parámetros del dashboard de analítica.
type AnalyticsQuery struct {
	Days int `query:"days" validate:"oneof=0 3 7 14 30"`
	Top  int `query:"top" validate:"min=0,max=100"`
}

// TransactionListQuery filtros de los listados paginados.
type TransactionListQuery struct {
	PageRequest
	Status string `query:"status"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	Phone     string          `json:"phone"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// PaymentListResponse lista paginada de pagos.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string             `json:"id"`
	Items         []entity.OrderItem `json:"items"`
	Total         decimal.Decimal    `json:"total"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method"`
	PickupTime    string             `json:"pickup_time"`
	Name          string             `json:"name"`
	Phone         string             `json:"phone"`
	CreatedAt     time.Time          `json:"created_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
