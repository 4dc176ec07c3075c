package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
)

// PushUseCase suscripciones Web Push del usuario (una por navegador).
type PushUseCase struct {
	repo      repository.PushSubscriptionRepository
	publicKey string
}

// NewPushUseCase construye el caso de uso. publicKey es la clave VAPID pública.
func NewPushUseCase(repo repository.PushSubscriptionRepository, publicKey string) *PushUseCase {
	return &PushUseCase{repo: repo, publicKey: publicKey}
}

// PublicKey devuelve la clave VAPID para PushManager.subscribe.
func (uc *PushUseCase) PublicKey() dto.VAPIDKeyResponse {
	return dto.VAPIDKeyResponse{PublicKey: uc.publicKey}
}

// Subscribe guarda (o renueva) la suscripción del navegador.
func (uc *PushUseCase) Subscribe(ctx context.Context, userID string, in dto.SubscribePushRequest) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}
	if err := validateInput(in); err != nil {
		return err
	}
	return uc.repo.Save(ctx, &entity.PushSubscription{
		ID:        uuid.New().String(),
		UserID:    userID,
		Endpoint:  in.Endpoint,
		P256dh:    in.Keys.P256dh,
		Auth:      in.Keys.Auth,
		CreatedAt: time.Now(),
	})
}

// Unsubscribe borra la suscripción del navegador.
func (uc *PushUseCase) Unsubscribe(ctx context.Context, userID string, in dto.UnsubscribePushRequest) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}
	if err := validateInput(in); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, userID, in.Endpoint)
}
