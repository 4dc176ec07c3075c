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

// ReservationUseCase reservas de la sucursal activa.
// Editar o borrar una reserva exige además ser quien la creó; el cambio de estado no.
type ReservationUseCase struct {
	repo     repository.ReservationRepository
	notifier ports.Notifier
}

// NewReservationUseCase construye el caso de uso.
func NewReservationUseCase(repo repository.ReservationRepository, notifier ports.Notifier) *ReservationUseCase {
	return &ReservationUseCase{repo: repo, notifier: notifier}
}

// List lista las reservas; phone filtra por teléfono exacto.
func (uc *ReservationUseCase) List(ctx context.Context, scope session.Scope, phone string) ([]dto.ReservationResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByBranch(ctx, scope.BranchID, strings.TrimSpace(phone))
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toReservationResponse(r))
	}
	return out, nil
}

// Get obtiene una reserva de la sucursal.
func (uc *ReservationUseCase) Get(ctx context.Context, scope session.Scope, id string) (*dto.ReservationResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	r, err := uc.repo.GetByID(ctx, scope.BranchID, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return toReservationResponse(r), nil
}

// Create registra una reserva pendiente y avisa al personal.
func (uc *ReservationUseCase) Create(ctx context.Context, scope session.Scope, in dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	now := time.Now()
	r := &entity.Reservation{
		ID:        uuid.New().String(),
		BranchID:  scope.BranchID,
		UserID:    scope.UserID,
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Date:      in.Date,
		Time:      in.Time,
		Guests:    in.Guests,
		Status:    entity.ReservationPending,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	if uc.notifier != nil {
		uc.notifier.Notify(ctx, ports.StaffEvent{
			Kind:       ports.EventReservationCreated,
			BranchID:   r.BranchID,
			Title:      "Nueva reserva",
			Body:       fmt.Sprintf("%s, %d personas, %s %s", r.Name, r.Guests, r.Date, r.Time),
			URL:        "/dashboard/reservations",
			OccurredAt: now,
		})
	}
	return toReservationResponse(r), nil
}

// Update modifica una reserva propia. Si la reserva es de otro usuario se responde ErrNotFound.
func (uc *ReservationUseCase) Update(ctx context.Context, scope session.Scope, id string, in dto.UpdateReservationRequest) (*dto.ReservationResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	r, err := uc.repo.GetByID(ctx, scope.BranchID, id)
	if err != nil {
		return nil, err
	}
	if r == nil || r.UserID != scope.UserID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		r.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		r.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		r.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Date != nil {
		r.Date = *in.Date
	}
	if in.Time != nil {
		r.Time = *in.Time
	}
	if in.Guests != nil {
		r.Guests = *in.Guests
	}
	if in.Status != nil {
		r.Status = *in.Status
	}
	if in.Notes != nil {
		r.Notes = *in.Notes
	}
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return toReservationResponse(r), nil
}

// UpdateStatus cambia el estado de cualquier reserva de la sucursal.
func (uc *ReservationUseCase) UpdateStatus(ctx context.Context, scope session.Scope, id string, in dto.UpdateStatusRequest) error {
	if err := requireBranch(scope); err != nil {
		return err
	}
	if !entity.ValidReservationStatus(in.Status) {
		return fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, in.Status)
	}
	return uc.repo.UpdateStatus(ctx, scope.BranchID, id, in.Status)
}

// Delete borra una reserva propia.
func (uc *ReservationUseCase) Delete(ctx context.Context, scope session.Scope, id string) error {
	if err := requireBranch(scope); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, scope.BranchID, scope.UserID, id)
}

func toReservationResponse(r *entity.Reservation) *dto.ReservationResponse {
	return &dto.ReservationResponse{
		ID:        r.ID,
		BranchID:  r.BranchID,
		UserID:    r.UserID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Date:      r.Date,
		Time:      r.Time,
		Guests:    r.Guests,
		Status:    r.Status,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
