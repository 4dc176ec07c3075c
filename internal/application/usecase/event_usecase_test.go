package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
	"github.com/jhoicas/restaurante-admin-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/session"
)

type fakeEventRepo struct {
	rows map[string]*entity.PrivateEvent
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{rows: map[string]*entity.PrivateEvent{}}
}

func (f *fakeEventRepo) Create(_ context.Context, e *entity.PrivateEvent) error {
	f.rows[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, branchID, id string) (*entity.PrivateEvent, error) {
	e, ok := f.rows[id]
	if !ok || e.BranchID != branchID {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) ListByBranch(_ context.Context, branchID, status string) ([]*entity.PrivateEvent, error) {
	var out []*entity.PrivateEvent
	for _, e := range f.rows {
		if e.BranchID == branchID && (status == "" || e.Status == status) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(_ context.Context, e *entity.PrivateEvent) error {
	cur, ok := f.rows[e.ID]
	if !ok || cur.BranchID != e.BranchID {
		return domain.ErrNotFound
	}
	f.rows[e.ID] = e
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, branchID, id string) error {
	e, ok := f.rows[id]
	if !ok || e.BranchID != branchID {
		return domain.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func validEvent() dto.CreatePrivateEventRequest {
	return dto.CreatePrivateEventRequest{
		Name: " Empresa XYZ ", Email: "eventos@xyz.test", Phone: "3009876543",
		EventDate: "2026-12-12", Guests: 30, EventType: "Cena de fin de año",
	}
}

func TestEvent_Create_NuevoYAvisa(t *testing.T) {
	notifier := &fakeNotifier{}
	uc := usecase.NewPrivateEventUseCase(newFakeEventRepo(), notifier)

	out, err := uc.Create(context.Background(), scopeA, validEvent())

	require.NoError(t, err)
	assert.Equal(t, entity.EventNew, out.Status)
	assert.Equal(t, "Empresa XYZ", out.Name)
	assert.Equal(t, scopeA.BranchID, out.BranchID)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, ports.EventPrivateEventCreated, notifier.events[0].Kind)
	assert.Equal(t, scopeA.BranchID, notifier.events[0].BranchID)
	assert.Contains(t, notifier.events[0].Body, "30 personas")
}

func TestEvent_Create_CamposInvalidos(t *testing.T) {
	notifier := &fakeNotifier{}
	repo := newFakeEventRepo()
	uc := usecase.NewPrivateEventUseCase(repo, notifier)

	in := validEvent()
	in.EventDate = "12/12/2026"
	_, err := uc.Create(context.Background(), scopeA, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validEvent()
	in.Guests = 0
	_, err = uc.Create(context.Background(), scopeA, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validEvent()
	in.Email = "no-es-correo"
	_, err = uc.Create(context.Background(), scopeA, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, repo.rows)
	assert.Empty(t, notifier.events)
}

func TestEvent_Update_CambiaEstadoYFiltra(t *testing.T) {
	repo := newFakeEventRepo()
	uc := usecase.NewPrivateEventUseCase(repo, nil)
	created, err := uc.Create(context.Background(), scopeA, validEvent())
	require.NoError(t, err)

	status := entity.EventConfirmed
	out, err := uc.Update(context.Background(), scopeA, created.ID, dto.UpdatePrivateEventRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.EventConfirmed, out.Status)
	assert.Equal(t, "Empresa XYZ", out.Name)

	nuevos, err := uc.List(context.Background(), scopeA, entity.EventNew)
	require.NoError(t, err)
	assert.Empty(t, nuevos)
	confirmados, err := uc.List(context.Background(), scopeA, entity.EventConfirmed)
	require.NoError(t, err)
	assert.Len(t, confirmados, 1)
}

func TestEvent_Update_EstadoDesconocido(t *testing.T) {
	repo := newFakeEventRepo()
	uc := usecase.NewPrivateEventUseCase(repo, nil)
	created, err := uc.Create(context.Background(), scopeA, validEvent())
	require.NoError(t, err)

	status := "archivado"
	_, err = uc.Update(context.Background(), scopeA, created.ID, dto.UpdatePrivateEventRequest{Status: &status})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.EventNew, repo.rows[created.ID].Status)
}

func TestEvent_OtraSucursal_NoEncontrado(t *testing.T) {
	uc := usecase.NewPrivateEventUseCase(newFakeEventRepo(), nil)
	created, err := uc.Create(context.Background(), scopeA, validEvent())
	require.NoError(t, err)

	_, err = uc.Get(context.Background(), scopeB, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	guests := 50
	_, err = uc.Update(context.Background(), scopeB, created.ID, dto.UpdatePrivateEventRequest{Guests: &guests})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(context.Background(), scopeB, created.ID), domain.ErrNotFound)

	list, err := uc.List(context.Background(), scopeB, "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEvent_Delete(t *testing.T) {
	repo := newFakeEventRepo()
	uc := usecase.NewPrivateEventUseCase(repo, nil)
	created, err := uc.Create(context.Background(), scopeA, validEvent())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), scopeA, created.ID))

	assert.Empty(t, repo.rows)
	assert.ErrorIs(t, uc.Delete(context.Background(), scopeA, created.ID), domain.ErrNotFound)
}

func TestEvent_SinSucursal(t *testing.T) {
	uc := usecase.NewPrivateEventUseCase(newFakeEventRepo(), nil)

	_, err := uc.Create(context.Background(), session.Scope{UserID: "u1"}, validEvent())

	assert.ErrorIs(t, err, domain.ErrNoBranch)
}
