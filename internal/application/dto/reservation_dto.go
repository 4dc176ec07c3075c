package dto

import "time"

// CreateReservationRequest entrada para crear una reserva.
type CreateReservationRequest struct {
	Name   string `json:"name" validate:"required,max=120"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required,max=30"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"time" validate:"required,datetime=15:04"`
	Guests int    `json:"guests" validate:"required,min=1,max=500"`
	Notes  string `json:"notes"`
}

// UpdateReservationRequest campos opcionales a modificar.
type UpdateReservationRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=120"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Phone  *string `json:"phone" validate:"omitempty,min=1,max=30"`
	Date   *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time   *string `json:"time" validate:"omitempty,datetime=15:04"`
	Guests *int    `json:"guests" validate:"omitempty,min=1,max=500"`
	Status *string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes  *string `json:"notes"`
}

// UpdateStatusRequest cambio de estado hecho por el personal.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ReservationResponse salida de una reserva.
type ReservationResponse struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Guests    int       `json:"guests"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
