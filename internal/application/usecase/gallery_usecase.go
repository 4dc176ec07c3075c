package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/media"
	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/session"
)

const galleryFolder = "gallery"

// GalleryUseCase fotos de la galería.
type GalleryUseCase struct {
	repo  repository.GalleryRepository
	media *media.Service
}

// NewGalleryUseCase construye el caso de uso.
func NewGalleryUseCase(repo repository.GalleryRepository, mediaSvc *media.Service) *GalleryUseCase {
	return &GalleryUseCase{repo: repo, media: mediaSvc}
}

// List devuelve las fotos por order_index ascendente.
func (uc *GalleryUseCase) List(ctx context.Context, scope session.Scope) ([]dto.GalleryItemResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByBranch(ctx, scope.BranchID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GalleryItemResponse, 0, len(list))
	for _, g := range list {
		out = append(out, *toGalleryResponse(g))
	}
	return out, nil
}

// Upload sube la foto y la añade al final de la galería (rollback de la imagen si falla el INSERT).
func (uc *GalleryUseCase) Upload(ctx context.Context, scope session.Scope, caption string, img *media.File) (*dto.GalleryItemResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("%w: image es obligatoria", domain.ErrInvalidInput)
	}
	if err := validateInput(dto.UpdateGalleryRequest{Caption: caption}); err != nil {
		return nil, err
	}
	next, err := uc.repo.NextOrderIndex(ctx, scope.BranchID)
	if err != nil {
		return nil, err
	}
	item := &entity.GalleryItem{
		ID:         uuid.New().String(),
		BranchID:   scope.BranchID,
		Caption:    caption,
		OrderIndex: next,
		CreatedAt:  time.Now(),
	}
	_, err = uc.media.UploadAndPersist(ctx, *img, uc.media.Folder(scope.BranchID, galleryFolder), func(a ports.MediaAsset) error {
		item.ImageURL, item.PublicID = a.SecureURL, a.PublicID
		return uc.repo.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return toGalleryResponse(item), nil
}

// UpdateCaption cambia el pie de foto.
func (uc *GalleryUseCase) UpdateCaption(ctx context.Context, scope session.Scope, id string, in dto.UpdateGalleryRequest) error {
	if err := requireBranch(scope); err != nil {
		return err
	}
	if err := validateInput(in); err != nil {
		return err
	}
	return uc.repo.UpdateCaption(ctx, scope.BranchID, id, in.Caption)
}

// Delete borra la fila y después la imagen (best-effort).
func (uc *GalleryUseCase) Delete(ctx context.Context, scope session.Scope, id string) error {
	if err := requireBranch(scope); err != nil {
		return err
	}
	publicID, err := uc.repo.Delete(ctx, scope.BranchID, id)
	if err != nil {
		return err
	}
	uc.media.RemoveAfterDelete(ctx, publicID)
	return nil
}

// Reorder aplica las nuevas posiciones en paralelo; ver applyReorder.
func (uc *GalleryUseCase) Reorder(ctx context.Context, scope session.Scope, items []dto.ReorderItem) (*dto.ReorderResult, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	return applyReorder(ctx, items, func(ctx context.Context, id string, idx int) error {
		return uc.repo.UpdateOrderIndex(ctx, scope.BranchID, id, idx)
	})
}

func toGalleryResponse(g *entity.GalleryItem) *dto.GalleryItemResponse {
	return &dto.GalleryItemResponse{
		ID:         g.ID,
		BranchID:   g.BranchID,
		ImageURL:   g.ImageURL,
		PublicID:   g.PublicID,
		Caption:    g.Caption,
		OrderIndex: g.OrderIndex,
		CreatedAt:  g.CreatedAt,
	}
}
