package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/session"
)

type fakeSettingsRepo struct {
	rows    map[string]*entity.RestaurantSettings
	upserts int
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{rows: map[string]*entity.RestaurantSettings{}}
}

func (f *fakeSettingsRepo) Get(_ context.Context, branchID string) (*entity.RestaurantSettings, error) {
	s, ok := f.rows[branchID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, s *entity.RestaurantSettings) error {
	f.upserts++
	f.rows[s.BranchID] = s
	return nil
}

func TestSettings_Get_SinAjustesDevuelveVacios(t *testing.T) {
	uc := usecase.NewSettingsUseCase(newFakeSettingsRepo())

	out, err := uc.Get(context.Background(), scopeA)

	require.NoError(t, err)
	assert.Equal(t, scopeA.BranchID, out.BranchID)
	assert.Empty(t, out.RestaurantName)
	assert.JSONEq(t, `{}`, string(out.OpeningHours))
}

func TestSettings_Upsert_GuardaHorario(t *testing.T) {
	repo := newFakeSettingsRepo()
	uc := usecase.NewSettingsUseCase(repo)
	chat := int64(-100123)

	_, err := uc.Upsert(context.Background(), scopeA, dto.UpsertSettingsRequest{
		RestaurantName: "La Fonda",
		OpeningHours:   json.RawMessage(`{"mon":"12:00-22:00"}`),
		TelegramChatID: &chat,
	})
	require.NoError(t, err)

	out, err := uc.Get(context.Background(), scopeA)
	require.NoError(t, err)
	assert.Equal(t, "La Fonda", out.RestaurantName)
	assert.JSONEq(t, `{"mon":"12:00-22:00"}`, string(out.OpeningHours))
	require.NotNil(t, out.TelegramChatID)
	assert.Equal(t, chat, *out.TelegramChatID)
}

func TestSettings_Upsert_HorarioVacioONulo(t *testing.T) {
	for _, raw := range []string{"", "null"} {
		repo := newFakeSettingsRepo()
		uc := usecase.NewSettingsUseCase(repo)

		out, err := uc.Upsert(context.Background(), scopeA, dto.UpsertSettingsRequest{
			RestaurantName: "La Fonda",
			OpeningHours:   json.RawMessage(raw),
		})

		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(out.OpeningHours))
		assert.Equal(t, "{}", string(repo.rows[scopeA.BranchID].OpeningHours))
	}
}

func TestSettings_Upsert_HorarioNoObjeto(t *testing.T) {
	repo := newFakeSettingsRepo()
	uc := usecase.NewSettingsUseCase(repo)

	for _, raw := range []string{`["12:00-22:00"]`, `"todos los días"`, `{`} {
		_, err := uc.Upsert(context.Background(), scopeA, dto.UpsertSettingsRequest{
			RestaurantName: "La Fonda",
			OpeningHours:   json.RawMessage(raw),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, raw)
	}
	assert.Zero(t, repo.upserts)
}

func TestSettings_Upsert_NombreObligatorio(t *testing.T) {
	repo := newFakeSettingsRepo()
	uc := usecase.NewSettingsUseCase(repo)

	_, err := uc.Upsert(context.Background(), scopeA, dto.UpsertSettingsRequest{Email: "no-es-correo"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, repo.upserts)
}

func TestSettings_PorSucursal(t *testing.T) {
	uc := usecase.NewSettingsUseCase(newFakeSettingsRepo())
	_, err := uc.Upsert(context.Background(), scopeA, dto.UpsertSettingsRequest{RestaurantName: "Sede Norte"})
	require.NoError(t, err)

	out, err := uc.Get(context.Background(), scopeB)

	require.NoError(t, err)
	assert.Empty(t, out.RestaurantName)

	_, err = uc.Get(context.Background(), session.Scope{UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrNoBranch)
}
