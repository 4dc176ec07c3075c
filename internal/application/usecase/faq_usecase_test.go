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

func TestFAQ_Reorder_InvierteOrden(t *testing.T) {
	repo := newFakeFAQRepo(
		&entity.FAQ{ID: "1", BranchID: scopeA.BranchID, Question: "¿Horario?", OrderIndex: 1},
		&entity.FAQ{ID: "2", BranchID: scopeA.BranchID, Question: "¿Parqueadero?", OrderIndex: 2},
	)
	uc := usecase.NewFAQUseCase(repo)

	res, err := uc.Reorder(context.Background(), scopeA, []dto.ReorderItem{
		{ID: "1", OrderIndex: 2},
		{ID: "2", OrderIndex: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Updated)
	assert.Empty(t, res.Failed)

	list, err := uc.List(context.Background(), scopeA)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2", list[0].ID)
	assert.Equal(t, "1", list[1].ID)
}

func TestFAQ_Reorder_FalloParcial_SinRollback(t *testing.T) {
	repo := newFakeFAQRepo(
		&entity.FAQ{ID: "1", BranchID: scopeA.BranchID, OrderIndex: 0},
		&entity.FAQ{ID: "ajena", BranchID: scopeB.BranchID, OrderIndex: 0},
	)
	uc := usecase.NewFAQUseCase(repo)

	res, err := uc.Reorder(context.Background(), scopeA, []dto.ReorderItem{
		{ID: "1", OrderIndex: 5},
		{ID: "ajena", OrderIndex: 9},
		{ID: "no-existe", OrderIndex: 3},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, []string{"ajena", "no-existe"}, res.Failed)
	assert.Equal(t, 5, repo.rows["1"].OrderIndex, "el par aplicado no se revierte")
	assert.Equal(t, 0, repo.rows["ajena"].OrderIndex)
}

func TestFAQ_Reorder_LoteVacio(t *testing.T) {
	uc := usecase.NewFAQUseCase(newFakeFAQRepo())

	_, err := uc.Reorder(context.Background(), scopeA, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFAQ_Reorder_IDRepetido_Rechazado(t *testing.T) {
	repo := newFakeFAQRepo(&entity.FAQ{ID: "1", BranchID: scopeA.BranchID, OrderIndex: 0})
	uc := usecase.NewFAQUseCase(repo)

	res, err := uc.Reorder(context.Background(), scopeA, []dto.ReorderItem{
		{ID: "1", OrderIndex: 1},
		{ID: "1", OrderIndex: 7},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, res)
	assert.Equal(t, 0, repo.rows["1"].OrderIndex, "no se aplica ningún par")
}

func TestFAQ_Create_AlFinal(t *testing.T) {
	repo := newFakeFAQRepo(&entity.FAQ{ID: "1", BranchID: scopeA.BranchID, OrderIndex: 4})
	uc := usecase.NewFAQUseCase(repo)

	out, err := uc.Create(context.Background(), scopeA, dto.CreateFAQRequest{Question: "¿Mascotas?", Answer: "Sí, en terraza"})

	require.NoError(t, err)
	assert.Equal(t, 5, out.OrderIndex)
}

func TestFAQ_Update_NoExiste(t *testing.T) {
	uc := usecase.NewFAQUseCase(newFakeFAQRepo())
	q := "x"

	_, err := uc.Update(context.Background(), scopeA, "nada", dto.UpdateFAQRequest{Question: &q})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
