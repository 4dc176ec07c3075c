package entity

import "time"

// Estados de una reserva.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
)

// Reservation reserva de mesa. UserID es quien la creó; solo ese usuario puede editarla.
type Reservation struct {
	ID        string
	BranchID  string
	UserID    string
	Name      string
	Email     string
	Phone     string
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	Guests    int
	Status    string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidReservationStatus informa si s es un estado conocido.
func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}
