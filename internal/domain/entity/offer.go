package entity

import "time"

// Offer promoción con imagen obligatoria alojada en el CDN.
type Offer struct {
	ID          string
	BranchID    string
	Title       string
	Description string
	ImageURL    string
	PublicID    string
	ValidFrom   *time.Time
	ValidUntil  *time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
