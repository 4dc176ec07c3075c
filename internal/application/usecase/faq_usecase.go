package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/session"
)

// FAQUseCase preguntas frecuentes, ordenadas por order_index.
type FAQUseCase struct {
	repo repository.FAQRepository
}

// NewFAQUseCase construye el caso de uso.
func NewFAQUseCase(repo repository.FAQRepository) *FAQUseCase {
	return &FAQUseCase{repo: repo}
}

// List devuelve las FAQs por order_index ascendente.
func (uc *FAQUseCase) List(ctx context.Context, scope session.Scope) ([]dto.FAQResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByBranch(ctx, scope.BranchID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FAQResponse, 0, len(list))
	for _, f := range list {
		out = append(out, *toFAQResponse(f))
	}
	return out, nil
}

// Create añade la pregunta al final de la lista.
func (uc *FAQUseCase) Create(ctx context.Context, scope session.Scope, in dto.CreateFAQRequest) (*dto.FAQResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	next, err := uc.repo.NextOrderIndex(ctx, scope.BranchID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	f := &entity.FAQ{
		ID:         uuid.New().String(),
		BranchID:   scope.BranchID,
		Question:   strings.TrimSpace(in.Question),
		Answer:     in.Answer,
		OrderIndex: next,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return toFAQResponse(f), nil
}

// Update modifica pregunta y/o respuesta.
func (uc *FAQUseCase) Update(ctx context.Context, scope session.Scope, id string, in dto.UpdateFAQRequest) (*dto.FAQResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	current, err := uc.repo.GetByID(ctx, scope.BranchID, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if in.Question != nil {
		current.Question = strings.TrimSpace(*in.Question)
	}
	if in.Answer != nil {
		current.Answer = *in.Answer
	}
	current.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return toFAQResponse(current), nil
}

// Delete borra una FAQ.
func (uc *FAQUseCase) Delete(ctx context.Context, scope session.Scope, id string) error {
	if err := requireBranch(scope); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, scope.BranchID, id)
}

// Reorder aplica las nuevas posiciones en paralelo; ver applyReorder.
func (uc *FAQUseCase) Reorder(ctx context.Context, scope session.Scope, items []dto.ReorderItem) (*dto.ReorderResult, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	return applyReorder(ctx, items, func(ctx context.Context, id string, idx int) error {
		return uc.repo.UpdateOrderIndex(ctx, scope.BranchID, id, idx)
	})
}

func toFAQResponse(f *entity.FAQ) *dto.FAQResponse {
	return &dto.FAQResponse{
		ID:         f.ID,
		BranchID:   f.BranchID,
		Question:   f.Question,
		Answer:     f.Answer,
		OrderIndex: f.OrderIndex,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}
