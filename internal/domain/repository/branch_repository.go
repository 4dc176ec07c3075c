package repository

import (
	"context"

	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
)

// BranchRepository define el puerto de persistencia para Branch (DIP).
// Update y Delete filtran por propietario y devuelven domain.ErrNotFound si no hay fila.
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, id string) (*entity.Branch, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Branch, error)
	Update(ctx context.Context, branch *entity.Branch) error
	Delete(ctx context.Context, ownerID, id string) error
	// IsOwnedBy informa si la sucursal existe y pertenece al usuario.
	IsOwnedBy(ctx context.Context, branchID, userID string) (bool, error)
}

// SettingsRepository ajustes del restaurante por sucursal.
type SettingsRepository interface {
	// Get devuelve nil, nil si la sucursal aún no tiene ajustes.
	Get(ctx context.Context, branchID string) (*entity.RestaurantSettings, error)
	Upsert(ctx context.Context, s *entity.RestaurantSettings) error
}
