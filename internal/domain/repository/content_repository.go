package repository

import (
	"context"

	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
)

// FAQRepository puerto de persistencia para preguntas frecuentes (ordenadas por order_index).
type FAQRepository interface {
	Create(ctx context.Context, faq *entity.FAQ) error
	GetByID(ctx context.Context, branchID, id string) (*entity.FAQ, error)
	ListByBranch(ctx context.Context, branchID string) ([]*entity.FAQ, error)
	Update(ctx context.Context, faq *entity.FAQ) error
	Delete(ctx context.Context, branchID, id string) error
	UpdateOrderIndex(ctx context.Context, branchID, id string, orderIndex int) error
	NextOrderIndex(ctx context.Context, branchID string) (int, error)
}

// GalleryRepository puerto de persistencia para la galería.
type GalleryRepository interface {
	Create(ctx context.Context, item *entity.GalleryItem) error
	ListByBranch(ctx context.Context, branchID string) ([]*entity.GalleryItem, error)
	UpdateCaption(ctx context.Context, branchID, id, caption string) error
	Delete(ctx context.Context, branchID, id string) (publicID string, err error)
	UpdateOrderIndex(ctx context.Context, branchID, id string, orderIndex int) error
	NextOrderIndex(ctx context.Context, branchID string) (int, error)
}

// ReservationRepository puerto de persistencia para reservas.
// Update y Delete exigen además que la reserva sea del usuario (user_id).
type ReservationRepository interface {
	Create(ctx context.Context, r *entity.Reservation) error
	GetByID(ctx context.Context, branchID, id string) (*entity.Reservation, error)
	ListByBranch(ctx context.Context, branchID, phone string) ([]*entity.Reservation, error)
	Update(ctx context.Context, r *entity.Reservation) error
	UpdateStatus(ctx context.Context, branchID, id, status string) error
	Delete(ctx context.Context, branchID, userID, id string) error
}

// PrivateEventRepository puerto de persistencia para eventos privados.
type PrivateEventRepository interface {
	Create(ctx context.Context, e *entity.PrivateEvent) error
	GetByID(ctx context.Context, branchID, id string) (*entity.PrivateEvent, error)
	ListByBranch(ctx context.Context, branchID, status string) ([]*entity.PrivateEvent, error)
	Update(ctx context.Context, e *entity.PrivateEvent) error
	Delete(ctx context.Context, branchID, id string) error
}
