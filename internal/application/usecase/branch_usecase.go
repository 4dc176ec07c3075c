package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
)

// BranchUseCase sucursales del usuario. Cada sucursal tiene un único propietario.
type BranchUseCase struct {
	repo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo}
}

// List devuelve las sucursales del usuario, marcando la seleccionada.
func (uc *BranchUseCase) List(ctx context.Context, userID, selectedID string) ([]dto.BranchResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		out = append(out, ToBranchResponse(b, selectedID))
	}
	return out, nil
}

// Create crea una sucursal propiedad del usuario.
func (uc *BranchUseCase) Create(ctx context.Context, userID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	now := time.Now()
	b := &entity.Branch{
		ID:        uuid.New().String(),
		OwnerID:   userID,
		Name:      strings.TrimSpace(in.Name),
		Location:  in.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	out := ToBranchResponse(b, "")
	return &out, nil
}

// Update modifica una sucursal del usuario.
func (uc *BranchUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	b, err := uc.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		b.Name = strings.TrimSpace(*in.Name)
	}
	if in.Location != nil {
		b.Location = in.Location
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	out := ToBranchResponse(b, "")
	return &out, nil
}

// Delete borra una sucursal del usuario (en cascada con sus recursos).
func (uc *BranchUseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.repo.Delete(ctx, userID, id)
}

// Select verifica que la sucursal sea del usuario antes de fijarla en la cookie.
func (uc *BranchUseCase) Select(ctx context.Context, userID string, in dto.SelectBranchRequest) (*dto.BranchResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	b, err := uc.repo.GetByID(ctx, in.BranchID)
	if err != nil {
		return nil, err
	}
	if b == nil || b.OwnerID != userID {
		return nil, domain.ErrBranchNotOwned
	}
	out := ToBranchResponse(b, b.ID)
	return &out, nil
}

func (uc *BranchUseCase) owned(ctx context.Context, userID, id string) (*entity.Branch, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get branch: %w", err)
	}
	if b == nil || b.OwnerID != userID {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

// ToBranchResponse convierte la entidad al DTO de salida.
func ToBranchResponse(b *entity.Branch, selectedID string) dto.BranchResponse {
	return dto.BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		Location:  b.Location,
		Selected:  selectedID != "" && b.ID == selectedID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
