package entity

import "time"

// Branch es una sucursal del restaurante: el ámbito (tenant) de todos los recursos.
// Cada sucursal pertenece a exactamente una cuenta propietaria.
type Branch struct {
	ID        string
	OwnerID   string
	Name      string
	Location  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestaurantSettings datos públicos del restaurante por sucursal.
type RestaurantSettings struct {
	BranchID       string
	RestaurantName string
	Phone          string
	Email          string
	Address        string
	OpeningHours   []byte // JSON libre: {"mon": "12:00-22:00", ...}
	TelegramChatID *int64 // chat que recibe avisos de reservas/eventos
	UpdatedAt      time.Time
}
