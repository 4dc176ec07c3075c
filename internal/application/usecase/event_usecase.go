package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/session"
)

// PrivateEventUseCase solicitudes de eventos privados.
type PrivateEventUseCase struct {
	repo     repository.PrivateEventRepository
	notifier ports.Notifier
}

// NewPrivateEventUseCase construye el caso de uso.
func NewPrivateEventUseCase(repo repository.PrivateEventRepository, notifier ports.Notifier) *PrivateEventUseCase {
	return &PrivateEventUseCase{repo: repo, notifier: notifier}
}

// List lista las solicitudes; status filtra por estado.
func (uc *PrivateEventUseCase) List(ctx context.Context, scope session.Scope, status string) ([]dto.PrivateEventResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByBranch(ctx, scope.BranchID, status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PrivateEventResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toPrivateEventResponse(e))
	}
	return out, nil
}

// Get obtiene una solicitud.
func (uc *PrivateEventUseCase) Get(ctx context.Context, scope session.Scope, id string) (*dto.PrivateEventResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	e, err := uc.repo.GetByID(ctx, scope.BranchID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toPrivateEventResponse(e), nil
}

// Create registra la solicitud en estado new y avisa al personal.
func (uc *PrivateEventUseCase) Create(ctx context.Context, scope session.Scope, in dto.CreatePrivateEventRequest) (*dto.PrivateEventResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	now := time.Now()
	e := &entity.PrivateEvent{
		ID:        uuid.New().String(),
		BranchID:  scope.BranchID,
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		EventDate: in.EventDate,
		Guests:    in.Guests,
		EventType: in.EventType,
		Message:   in.Message,
		Status:    entity.EventNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	if uc.notifier != nil {
		uc.notifier.Notify(ctx, ports.StaffEvent{
			Kind:       ports.EventPrivateEventCreated,
			BranchID:   e.BranchID,
			Title:      "Nueva solicitud de evento",
			Body:       fmt.Sprintf("%s: %s, %d personas, %s", e.Name, e.EventType, e.Guests, e.EventDate),
			URL:        "/dashboard/events",
			OccurredAt: now,
		})
	}
	return toPrivateEventResponse(e), nil
}

// Update modifica la solicitud (incluido el estado).
func (uc *PrivateEventUseCase) Update(ctx context.Context, scope session.Scope, id string, in dto.UpdatePrivateEventRequest) (*dto.PrivateEventResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	e, err := uc.repo.GetByID(ctx, scope.BranchID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		e.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		e.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		e.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.EventDate != nil {
		e.EventDate = *in.EventDate
	}
	if in.Guests != nil {
		e.Guests = *in.Guests
	}
	if in.EventType != nil {
		e.EventType = *in.EventType
	}
	if in.Message != nil {
		e.Message = *in.Message
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toPrivateEventResponse(e), nil
}

// Delete borra una solicitud.
func (uc *PrivateEventUseCase) Delete(ctx context.Context, scope session.Scope, id string) error {
	if err := requireBranch(scope); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, scope.BranchID, id)
}

func toPrivateEventResponse(e *entity.PrivateEvent) *dto.PrivateEventResponse {
	return &dto.PrivateEventResponse{
		ID:        e.ID,
		BranchID:  e.BranchID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		EventDate: e.EventDate,
		Guests:    e.Guests,
		EventType: e.EventType,
		Message:   e.Message,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
