package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
)

// fakePushRepo guarda una suscripción por (user_id, endpoint), como el upsert de postgres.
type fakePushRepo struct {
	rows []*entity.PushSubscription
}

func (f *fakePushRepo) Save(_ context.Context, s *entity.PushSubscription) error {
	for i, cur := range f.rows {
		if cur.UserID == s.UserID && cur.Endpoint == s.Endpoint {
			f.rows[i] = s
			return nil
		}
	}
	f.rows = append(f.rows, s)
	return nil
}

func (f *fakePushRepo) Delete(_ context.Context, userID, endpoint string) error {
	for i, cur := range f.rows {
		if cur.UserID == userID && cur.Endpoint == endpoint {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakePushRepo) DeleteByEndpoint(_ context.Context, endpoint string) error {
	out := f.rows[:0]
	for _, cur := range f.rows {
		if cur.Endpoint != endpoint {
			out = append(out, cur)
		}
	}
	f.rows = out
	return nil
}

func (f *fakePushRepo) ListByUser(_ context.Context, userID string) ([]*entity.PushSubscription, error) {
	var out []*entity.PushSubscription
	for _, cur := range f.rows {
		if cur.UserID == userID {
			out = append(out, cur)
		}
	}
	return out, nil
}

const pushEndpoint = "https://fcm.googleapis.com/fcm/send/abc123"

func subscription(auth string) dto.SubscribePushRequest {
	return dto.SubscribePushRequest{
		Endpoint: pushEndpoint,
		Keys:     dto.PushKeys{P256dh: "BNc...", Auth: auth},
	}
}

func TestPush_PublicKey(t *testing.T) {
	uc := usecase.NewPushUseCase(&fakePushRepo{}, "BPub")

	assert.Equal(t, "BPub", uc.PublicKey().PublicKey)
}

func TestPush_Subscribe_RenuevaMismoNavegador(t *testing.T) {
	repo := &fakePushRepo{}
	uc := usecase.NewPushUseCase(repo, "BPub")

	require.NoError(t, uc.Subscribe(context.Background(), "u1", subscription("a1")))
	require.NoError(t, uc.Subscribe(context.Background(), "u1", subscription("a2")))

	require.Len(t, repo.rows, 1)
	assert.Equal(t, "u1", repo.rows[0].UserID)
	assert.Equal(t, "a2", repo.rows[0].Auth)
}

func TestPush_Subscribe_PorUsuario(t *testing.T) {
	repo := &fakePushRepo{}
	uc := usecase.NewPushUseCase(repo, "BPub")
	require.NoError(t, uc.Subscribe(context.Background(), "u1", subscription("a1")))
	require.NoError(t, uc.Subscribe(context.Background(), "u2", subscription("a1")))

	require.NoError(t, uc.Unsubscribe(context.Background(), "u1", dto.UnsubscribePushRequest{Endpoint: pushEndpoint}))

	require.Len(t, repo.rows, 1)
	assert.Equal(t, "u2", repo.rows[0].UserID)
}

func TestPush_Subscribe_Invalida(t *testing.T) {
	repo := &fakePushRepo{}
	uc := usecase.NewPushUseCase(repo, "BPub")

	err := uc.Subscribe(context.Background(), "u1", dto.SubscribePushRequest{Endpoint: pushEndpoint})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in := subscription("a1")
	in.Endpoint = "no es una url"
	err = uc.Subscribe(context.Background(), "u1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, repo.rows)
}

func TestPush_SinUsuario(t *testing.T) {
	repo := &fakePushRepo{}
	uc := usecase.NewPushUseCase(repo, "BPub")

	assert.ErrorIs(t, uc.Subscribe(context.Background(), "", subscription("a1")), domain.ErrUnauthorized)
	assert.ErrorIs(t, uc.Unsubscribe(context.Background(), "", dto.UnsubscribePushRequest{Endpoint: pushEndpoint}), domain.ErrUnauthorized)
	assert.Empty(t, repo.rows)
}
