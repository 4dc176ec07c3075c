package entity

import "time"

// Estados de una solicitud de evento privado.
const (
	EventNew       = "new"
	EventContacted = "contacted"
	EventConfirmed = "confirmed"
	EventDeclined  = "declined"
)

// PrivateEvent solicitud de evento privado (cumpleaños, empresa, etc.).
type PrivateEvent struct {
	ID        string
	BranchID  string
	Name      string
	Email     string
	Phone     string
	EventDate string // YYYY-MM-DD
	Guests    int
	EventType string
	Message   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
