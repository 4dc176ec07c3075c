// Package analytics deriva las estadísticas del dashboard a partir de pagos y pedidos crudos.
//
// Build es una función pura: para la misma entrada y las mismas Options devuelve siempre el mismo
// Snapshot. El único reloj que usa es Options.Now; el llamador lo captura una vez por petición.
// El snapshot no se persiste ni se cachea.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTopN cantidad de ítems y clientes en los rankings si Options.TopN es 0.
const DefaultTopN = 10

// AllowedDays ventanas aceptadas por el dashboard (0 = todo el histórico).
var AllowedDays = []int{0, 3, 7, 14, 30}

// Options parámetros de la agregación.
type Options struct {
	Now      time.Time
	Days     int            // ventana en días hacia atrás desde Now; 0 = sin filtro
	TopN     int            // tamaño de los rankings
	Location *time.Location // zona para agrupar por día/hora; nil = UTC
}

// Snapshot resultado completo de la agregación.
type Snapshot struct {
	GeneratedAt    time.Time      `json:"generated_at"`
	Days           int            `json:"days"`
	Totals         Totals         `json:"totals"`
	Trends         Trends         `json:"trends"`
	TopItems       []ItemStat     `json:"top_items"`
	TopCustomers   []CustomerStat `json:"top_customers"`
	OrdersByStatus []StatusStat   `json:"orders_by_status"`
}

// Totals contadores y sumas de pagos y pedidos.
type Totals struct {
	PaymentCount      int             `json:"payment_count"`
	SuccessCount      int             `json:"success_count"`
	FailedCount       int             `json:"failed_count"`
	PendingCount      int             `json:"pending_count"`
	SuccessAmount     decimal.Decimal `json:"success_amount"`
	FailedAmount      decimal.Decimal `json:"failed_amount"`
	PendingAmount     decimal.Decimal `json:"pending_amount"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`       // suma de pagos success
	AverageOrderValue decimal.Decimal `json:"average_order_value"` // TotalRevenue / SuccessCount
	SuccessRate       decimal.Decimal `json:"success_rate"`        // %
	FailureRate       decimal.Decimal `json:"failure_rate"`        // %
	PendingRate       decimal.Decimal `json:"pending_rate"`        // %
	Revenue24h        decimal.Decimal `json:"revenue_24h"`
	Revenue7d         decimal.Decimal `json:"revenue_7d"`
	Revenue30d        decimal.Decimal `json:"revenue_30d"`
	OrderCount        int             `json:"order_count"`
	OrdersTotal       decimal.Decimal `json:"orders_total"` // suma de order.total
}

// Trends series temporales.
type Trends struct {
	Daily       []DailyStat  `json:"daily"`
	Hourly      []HourlyStat `json:"hourly"` // siempre 24 elementos (0..23)
	PickupSlots []SlotStat   `json:"pickup_slots"`
}

// DailyStat ingresos (pagos success) y número de pedidos de un día calendario.
type DailyStat struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// HourlyStat pedidos por hora local del día.
type HourlyStat struct {
	Hour   int `json:"hour"`
	Orders int `json:"orders"`
}

// SlotStat pedidos por franja de recogida (redondeada a 30 minutos).
type SlotStat struct {
	Slot   string `json:"slot"` // HH:MM
	Orders int    `json:"orders"`
}

// ItemStat ventas de un ítem de la carta.
type ItemStat struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// CustomerStat compras de un cliente identificado por teléfono.
type CustomerStat struct {
	Phone   string          `json:"phone"`
	Name    string          `json:"name"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// StatusStat pedidos por estado.
type StatusStat struct {
	Status     string          `json:"status"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}
