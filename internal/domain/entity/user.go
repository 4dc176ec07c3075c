package entity

import "time"

// User cuenta de personal del dashboard.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile estado de onboarding del usuario (tabla profiles, 1:1 con users).
type Profile struct {
	UserID       string
	HasOnboarded bool
	UpdatedAt    time.Time
}

// InviteToken invitación de un solo uso para registrar personal.
type InviteToken struct {
	Token     string // 64 caracteres hex (256 bits)
	Email     string // opcional: restringe la invitación a un email
	CreatedBy string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired informa si la invitación ya no es válida en el instante now.
func (t *InviteToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
