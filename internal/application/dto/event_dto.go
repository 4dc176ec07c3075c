package dto

import "time"

// CreatePrivateEventRequest solicitud de evento privado.
type CreatePrivateEventRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,max=30"`
	EventDate string `json:"event_date" validate:"required,datetime=2006-01-02"`
	Guests    int    `json:"guests" validate:"required,min=1"`
	EventType string `json:"event_type" validate:"max=100"`
	Message   string `json:"message"`
}

// UpdatePrivateEventRequest campos opcionales a modificar.
type UpdatePrivateEventRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=120"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,min=1,max=30"`
	EventDate *string `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	Guests    *int    `json:"guests" validate:"omitempty,min=1"`
	EventType *string `json:"event_type" validate:"omitempty,max=100"`
	Message   *string `json:"message"`
	Status    *string `json:"status" validate:"omitempty,oneof=new contacted confirmed declined"`
}

// PrivateEventResponse salida de un evento privado.
type PrivateEventResponse struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	EventDate string    `json:"event_date"`
	Guests    int       `json:"guests"`
	EventType string    `json:"event_type"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
