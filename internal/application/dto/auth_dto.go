package dto

import "time"

// CreateInviteRequest invitación para un nuevo miembro del personal.
type CreateInviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// InviteResponse token emitido. El token solo se muestra una vez.
type InviteResponse struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	InviteURL string    `json:"invite_url"`
}

// InviteStatusResponse resultado de validar un token.
type InviteStatusResponse struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SignupRequest alta de usuario con un token de invitación.
type SignupRequest struct {
	Token    string `json:"token" validate:"required,len=64,hexadecimal"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,max=120"`
}

// LoginRequest credenciales.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token de sesión emitido.
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	ExpiresIn    int          `json:"expires_in"` // segundos
	User         UserResponse `json:"user"`
	HasOnboarded bool         `json:"has_onboarded"`
}

// MeResponse estado de la sesión actual.
type MeResponse struct {
	User         UserResponse `json:"user"`
	HasOnboarded bool         `json:"has_onboarded"`
	BranchID     string       `json:"branch_id"`
}
