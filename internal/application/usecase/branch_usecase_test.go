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

func TestBranch_Select(t *testing.T) {
	repo := newFakeBranchRepo(
		&entity.Branch{ID: "A", OwnerID: "u1", Name: "Centro"},
		&entity.Branch{ID: "B", OwnerID: "u1", Name: "Norte"},
		&entity.Branch{ID: "X", OwnerID: "u2", Name: "Ajena"},
	)
	uc := usecase.NewBranchUseCase(repo)

	out, err := uc.Select(context.Background(), "u1", dto.SelectBranchRequest{BranchID: "B"})
	require.NoError(t, err)
	assert.Equal(t, "B", out.ID)
	assert.True(t, out.Selected)

	_, err = uc.Select(context.Background(), "u1", dto.SelectBranchRequest{BranchID: "X"})
	assert.ErrorIs(t, err, domain.ErrBranchNotOwned)

	_, err = uc.Select(context.Background(), "u1", dto.SelectBranchRequest{BranchID: "borrada"})
	assert.ErrorIs(t, err, domain.ErrBranchNotOwned)
}

func TestBranch_List_MarcaSeleccionada(t *testing.T) {
	repo := newFakeBranchRepo(
		&entity.Branch{ID: "A", OwnerID: "u1", Name: "Centro"},
		&entity.Branch{ID: "B", OwnerID: "u1", Name: "Norte"},
		&entity.Branch{ID: "X", OwnerID: "u2", Name: "Ajena"},
	)
	uc := usecase.NewBranchUseCase(repo)

	list, err := uc.List(context.Background(), "u1", "B")

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[0].Selected)
	assert.True(t, list[1].Selected)
}

func TestBranch_UpdateAjena_NotFound(t *testing.T) {
	repo := newFakeBranchRepo(&entity.Branch{ID: "X", OwnerID: "u2", Name: "Ajena"})
	uc := usecase.NewBranchUseCase(repo)
	name := "Mía"

	_, err := uc.Update(context.Background(), "u1", "X", dto.UpdateBranchRequest{Name: &name})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Ajena", repo.rows["X"].Name)
}
