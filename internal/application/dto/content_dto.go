package dto

import "time"

// CreateFAQRequest entrada para crear una pregunta frecuente.
type CreateFAQRequest struct {
	Question string `json:"question" validate:"required,max=500"`
	Answer   string `json:"answer" validate:"required"`
}

// UpdateFAQRequest campos opcionales a modificar.
type UpdateFAQRequest struct {
	Question *string `json:"question" validate:"omitempty,min=1,max=500"`
	Answer   *string `json:"answer" validate:"omitempty,min=1"`
}

// FAQResponse salida de una pregunta frecuente.
type FAQResponse struct {
	ID         string    `json:"id"`
	BranchID   string    `json:"branch_id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UpdateGalleryRequest solo el pie de foto es editable.
type UpdateGalleryRequest struct {
	Caption string `json:"caption" validate:"max=300"`
}

// GalleryItemResponse salida de una foto de la galería.
type GalleryItemResponse struct {
	ID         string    `json:"id"`
	BranchID   string    `json:"branch_id"`
	ImageURL   string    `json:"image_url"`
	PublicID   string    `json:"public_id"`
	Caption    string    `json:"caption"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
}
