package usecase

import (
	"context"
	"fmt"
	"strings"
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

const offerFolder = "offers"

// OfferUseCase ofertas con imagen obligatoria.
type OfferUseCase struct {
	repo  repository.OfferRepository
	media *media.Service
}

// NewOfferUseCase construye el caso de uso.
func NewOfferUseCase(repo repository.OfferRepository, mediaSvc *media.Service) *OfferUseCase {
	return &OfferUseCase{repo: repo, media: mediaSvc}
}

// List lista las ofertas; activeOnly deja solo las activas.
func (uc *OfferUseCase) List(ctx context.Context, scope session.Scope, activeOnly bool) ([]dto.OfferResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByBranch(ctx, scope.BranchID, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OfferResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOfferResponse(o))
	}
	return out, nil
}

// Create sube la imagen y después inserta la oferta. Si el INSERT falla la imagen se borra
// y se devuelve ErrUpstream.
func (uc *OfferUseCase) Create(ctx context.Context, scope session.Scope, in dto.CreateOfferRequest, img *media.File) (*dto.OfferResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("%w: image es obligatoria", domain.ErrInvalidInput)
	}
	from, err := parseDate(in.ValidFrom)
	if err != nil {
		return nil, err
	}
	until, err := parseDate(in.ValidUntil)
	if err != nil {
		return nil, err
	}
	if err := checkValidity(from, until); err != nil {
		return nil, err
	}
	now := time.Now()
	offer := &entity.Offer{
		ID:          uuid.New().String(),
		BranchID:    scope.BranchID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		ValidFrom:   from,
		ValidUntil:  until,
		IsActive:    in.IsActive == nil || *in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err = uc.media.UploadAndPersist(ctx, *img, uc.media.Folder(scope.BranchID, offerFolder), func(a ports.MediaAsset) error {
		offer.ImageURL, offer.PublicID = a.SecureURL, a.PublicID
		return uc.repo.Create(ctx, offer)
	})
	if err != nil {
		return nil, err
	}
	return toOfferResponse(offer), nil
}

// Update modifica una oferta; con img reemplaza la imagen y borra la anterior tras el UPDATE.
func (uc *OfferUseCase) Update(ctx context.Context, scope session.Scope, id string, in dto.UpdateOfferRequest, img *media.File) (*dto.OfferResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	offer, err := uc.repo.GetByID(ctx, scope.BranchID, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		offer.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		offer.Description = *in.Description
	}
	if in.ValidFrom != nil {
		if offer.ValidFrom, err = parseDate(*in.ValidFrom); err != nil {
			return nil, err
		}
	}
	if in.ValidUntil != nil {
		if offer.ValidUntil, err = parseDate(*in.ValidUntil); err != nil {
			return nil, err
		}
	}
	if err := checkValidity(offer.ValidFrom, offer.ValidUntil); err != nil {
		return nil, err
	}
	if in.IsActive != nil {
		offer.IsActive = *in.IsActive
	}
	offer.UpdatedAt = time.Now()

	if img == nil {
		if err := uc.repo.Update(ctx, offer); err != nil {
			return nil, err
		}
		return toOfferResponse(offer), nil
	}
	oldPublicID := offer.PublicID
	_, err = uc.media.UploadAndPersist(ctx, *img, uc.media.Folder(scope.BranchID, offerFolder), func(a ports.MediaAsset) error {
		offer.ImageURL, offer.PublicID = a.SecureURL, a.PublicID
		return uc.repo.Update(ctx, offer)
	})
	if err != nil {
		return nil, err
	}
	uc.media.RemoveAfterDelete(ctx, oldPublicID)
	return toOfferResponse(offer), nil
}

// Delete borra la fila y, solo si eso funcionó, su imagen en el CDN (una única llamada).
func (uc *OfferUseCase) Delete(ctx context.Context, scope session.Scope, id string) error {
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

func checkValidity(from, until *time.Time) error {
	if from != nil && until != nil && until.Before(*from) {
		return fmt.Errorf("%w: valid_until anterior a valid_from", domain.ErrInvalidInput)
	}
	return nil
}

func toOfferResponse(o *entity.Offer) *dto.OfferResponse {
	return &dto.OfferResponse{
		ID:          o.ID,
		BranchID:    o.BranchID,
		Title:       o.Title,
		Description: o.Description,
		ImageURL:    o.ImageURL,
		PublicID:    o.PublicID,
		ValidFrom:   o.ValidFrom,
		ValidUntil:  o.ValidUntil,
		IsActive:    o.IsActive,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
