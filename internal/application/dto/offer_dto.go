package dto

import "time"

// CreateOfferRequest campos de formulario de una oferta; la imagen ("image") es obligatoria.
type CreateOfferRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=200"`
	Description string `json:"description" form:"description"`
	ValidFrom   string `json:"valid_from" form:"valid_from" validate:"omitempty,datetime=2006-01-02"`
	ValidUntil  string `json:"valid_until" form:"valid_until" validate:"omitempty,datetime=2006-01-02"`
	IsActive    *bool  `json:"is_active" form:"is_active"`
}

// UpdateOfferRequest campos opcionales; una imagen nueva reemplaza la anterior.
type UpdateOfferRequest struct {
	Title       *string `json:"title" form:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" form:"description"`
	ValidFrom   *string `json:"valid_from" form:"valid_from" validate:"omitempty,datetime=2006-01-02"`
	ValidUntil  *string `json:"valid_until" form:"valid_until" validate:"omitempty,datetime=2006-01-02"`
	IsActive    *bool   `json:"is_active" form:"is_active"`
}

// OfferResponse salida de una oferta.
type OfferResponse struct {
	ID          string     `json:"id"`
	BranchID    string     `json:"branch_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	PublicID    string     `json:"public_id"`
	ValidFrom   *time.Time `json:"valid_from"`
	ValidUntil  *time.Time `json:"valid_until"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
