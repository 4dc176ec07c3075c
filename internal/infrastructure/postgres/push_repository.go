package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
)

var _ repository.PushSubscriptionRepository = (*PushSubscriptionRepo)(nil)

// PushSubscriptionRepo suscripciones Web Push por usuario.
type PushSubscriptionRepo struct {
	q Querier
}

// NewPushSubscriptionRepository construye el adaptador.
func NewPushSubscriptionRepository(q Querier) *PushSubscriptionRepo {
	return &PushSubscriptionRepo{q: q}
}

// Save inserta o actualiza las claves de (user_id, endpoint).
func (r *PushSubscriptionRepo) Save(ctx context.Context, s *entity.PushSubscription) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	query := `
		INSERT INTO push_subscriptions (id, user_id, endpoint, p256dh, auth, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, endpoint) DO UPDATE SET p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth`
	if _, err := r.q.Exec(ctx, query, s.ID, s.UserID, s.Endpoint, s.P256dh, s.Auth, s.CreatedAt); err != nil {
		return dbError("save push subscription", err)
	}
	return nil
}

// Delete quita la suscripción del usuario (sin error si no existía).
func (r *PushSubscriptionRepo) Delete(ctx context.Context, userID, endpoint string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM push_subscriptions WHERE user_id::text = $1 AND endpoint = $2`, userID, endpoint)
	if err != nil {
		return dbError("delete push subscription", err)
	}
	return nil
}

// DeleteByEndpoint borra un endpoint dado de baja por el navegador, sea de quien sea.
func (r *PushSubscriptionRepo) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM push_subscriptions WHERE endpoint = $1`, endpoint); err != nil {
		return dbError("delete push endpoint", err)
	}
	return nil
}

// ListByUser lista las suscripciones del usuario.
func (r *PushSubscriptionRepo) ListByUser(ctx context.Context, userID string) ([]*entity.PushSubscription, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, user_id, endpoint, p256dh, auth, created_at
		FROM push_subscriptions WHERE user_id::text = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, dbError("list push subscriptions", err)
	}
	defer rows.Close()
	list := make([]*entity.PushSubscription, 0)
	for rows.Next() {
		var s entity.PushSubscription
		if err := rows.Scan(&s.ID, &s.UserID, &s.Endpoint, &s.P256dh, &s.Auth, &s.CreatedAt); err != nil {
			return nil, dbError("scan push subscription", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
