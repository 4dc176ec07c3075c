package repository

import (
	"context"

	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
)

// MenuItemRepository puerto de persistencia para la carta. Todas las operaciones van filtradas por sucursal.
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, branchID, id string) (*entity.MenuItem, error)
	ListByBranch(ctx context.Context, branchID, category string) ([]*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	// Delete borra la fila y devuelve el public_id de su imagen (vacío si no tenía).
	Delete(ctx context.Context, branchID, id string) (publicID string, err error)
}

// OfferRepository puerto de persistencia para ofertas.
type OfferRepository interface {
	Create(ctx context.Context, offer *entity.Offer) error
	GetByID(ctx context.Context, branchID, id string) (*entity.Offer, error)
	ListByBranch(ctx context.Context, branchID string, activeOnly bool) ([]*entity.Offer, error)
	Update(ctx context.Context, offer *entity.Offer) error
	Delete(ctx context.Context, branchID, id string) (publicID string, err error)
}
