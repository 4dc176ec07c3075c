package repository

import (
	"context"

	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// ProfileRepository estado de onboarding.
type ProfileRepository interface {
	// Get devuelve nil, nil si el usuario no tiene perfil (se trata como no onboarded).
	Get(ctx context.Context, userID string) (*entity.Profile, error)
	Upsert(ctx context.Context, p *entity.Profile) error
}

// InviteRepository tokens de invitación.
type InviteRepository interface {
	Create(ctx context.Context, t *entity.InviteToken) error
	// Get devuelve nil, nil si el token no existe.
	Get(ctx context.Context, token string) (*entity.InviteToken, error)
	Delete(ctx context.Context, token string) error
}

// PushSubscriptionRepository suscripciones Web Push persistidas por usuario.
type PushSubscriptionRepository interface {
	// Save inserta o actualiza las claves de (user_id, endpoint).
	Save(ctx context.Context, s *entity.PushSubscription) error
	Delete(ctx context.Context, userID, endpoint string) error
	DeleteByEndpoint(ctx context.Context, endpoint string) error
	ListByUser(ctx context.Context, userID string) ([]*entity.PushSubscription, error)
}
