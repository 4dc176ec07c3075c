package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/session"
)

// SettingsUseCase ajustes del restaurante de la sucursal activa.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve los ajustes; si aún no existen devuelve unos vacíos.
func (uc *SettingsUseCase) Get(ctx context.Context, scope session.Scope) (*dto.SettingsResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	s, err := uc.repo.Get(ctx, scope.BranchID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = &entity.RestaurantSettings{BranchID: scope.BranchID}
	}
	return ToSettingsResponse(s), nil
}

// Upsert crea o reemplaza los ajustes.
func (uc *SettingsUseCase) Upsert(ctx context.Context, scope session.Scope, in dto.UpsertSettingsRequest) (*dto.SettingsResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	hours, err := normalizeHours(in.OpeningHours)
	if err != nil {
		return nil, err
	}
	s := &entity.RestaurantSettings{
		BranchID:       scope.BranchID,
		RestaurantName: in.RestaurantName,
		Phone:          in.Phone,
		Email:          in.Email,
		Address:        in.Address,
		OpeningHours:   hours,
		TelegramChatID: in.TelegramChatID,
		UpdatedAt:      time.Now(),
	}
	if err := uc.repo.Upsert(ctx, s); err != nil {
		return nil, err
	}
	return ToSettingsResponse(s), nil
}

// normalizeHours exige un objeto JSON; vacío se guarda como {}.
func normalizeHours(raw json.RawMessage) ([]byte, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []byte("{}"), nil
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: opening_hours debe ser un objeto JSON", domain.ErrInvalidInput)
	}
	return raw, nil
}

// ToSettingsResponse convierte la entidad al DTO de salida.
func ToSettingsResponse(s *entity.RestaurantSettings) *dto.SettingsResponse {
	hours := json.RawMessage(s.OpeningHours)
	if len(hours) == 0 {
		hours = json.RawMessage("{}")
	}
	return &dto.SettingsResponse{
		BranchID:       s.BranchID,
		RestaurantName: s.RestaurantName,
		Phone:          s.Phone,
		Email:          s.Email,
		Address:        s.Address,
		OpeningHours:   hours,
		TelegramChatID: s.TelegramChatID,
		UpdatedAt:      s.UpdatedAt,
	}
}
