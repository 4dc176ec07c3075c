package entity

import "time"

// FAQ pregunta frecuente; OrderIndex define el orden de presentación.
type FAQ struct {
	ID         string
	BranchID   string
	Question   string
	Answer     string
	OrderIndex int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// GalleryItem foto de la galería.
type GalleryItem struct {
	ID         string
	BranchID   string
	ImageURL   string
	PublicID   string
	Caption    string
	OrderIndex int
	CreatedAt  time.Time
}

// OrderIndexUpdate par (id, order_index) de una operación de reordenamiento.
type OrderIndexUpdate struct {
	ID         string
	OrderIndex int
}
