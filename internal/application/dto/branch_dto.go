package dto

import (
	"encoding/json"
	"time"
)

// CreateBranchRequest entrada para crear una sucursal.
type CreateBranchRequest struct {
	Name     string  `json:"name" validate:"required,max=120"`
	Location *string `json:"location" validate:"omitempty,max=300"`
}

// UpdateBranchRequest campos opcionales a modificar.
type UpdateBranchRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=120"`
	Location *string `json:"location" validate:"omitempty,max=300"`
}

// SelectBranchRequest cambio de sucursal activa.
type SelectBranchRequest struct {
	BranchID string `json:"branch_id" validate:"required"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  *string   `json:"location"`
	Selected  bool      `json:"selected"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertSettingsRequest ajustes del restaurante para la sucursal activa.
type UpsertSettingsRequest struct {
	RestaurantName string          `json:"restaurant_name" validate:"required,max=200"`
	Phone          string          `json:"phone" validate:"max=30"`
	Email          string          `json:"email" validate:"omitempty,email"`
	Address        string          `json:"address" validate:"max=300"`
	OpeningHours   json.RawMessage `json:"opening_hours"`
	TelegramChatID *int64          `json:"telegram_chat_id"`
}

// SettingsResponse salida de los ajustes.
type SettingsResponse struct {
	BranchID       string          `json:"branch_id"`
	RestaurantName string          `json:"restaurant_name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Address        string          `json:"address"`
	OpeningHours   json.RawMessage `json:"opening_hours"`
	TelegramChatID *int64          `json:"telegram_chat_id"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// OnboardingRequest primera sucursal y datos del restaurante.
type OnboardingRequest struct {
	BranchName     string  `json:"branch_name" validate:"required,max=120"`
	Location       *string `json:"location" validate:"omitempty,max=300"`
	RestaurantName string  `json:"restaurant_name" validate:"required,max=200"`
	Phone          string  `json:"phone" validate:"max=30"`
	Email          string  `json:"email" validate:"omitempty,email"`
	Address        string  `json:"address" validate:"max=300"`
}

// OnboardingResponse sucursal creada (queda seleccionada).
type OnboardingResponse struct {
	Branch   BranchResponse   `json:"branch"`
	Settings SettingsResponse `json:"settings"`
}
