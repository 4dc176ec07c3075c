package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/media"
	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/session"
)

const (
	menuFolder        = "menu"
	defaultSheetRange = "A:F"
)

// MenuUseCase carta de la sucursal activa. La imagen del plato es opcional.
type MenuUseCase struct {
	repo   repository.MenuItemRepository
	media  *media.Service
	sheets ports.MenuSheetReader // nil = importación desactivada
	log    zerolog.Logger
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(repo repository.MenuItemRepository, mediaSvc *media.Service, sheets ports.MenuSheetReader, log zerolog.Logger) *MenuUseCase {
	return &MenuUseCase{repo: repo, media: mediaSvc, sheets: sheets, log: log}
}

// List lista la carta, opcionalmente filtrada por categoría.
func (uc *MenuUseCase) List(ctx context.Context, scope session.Scope, category string) ([]dto.MenuItemResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByBranch(ctx, scope.BranchID, category)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MenuItemResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMenuItemResponse(m))
	}
	return out, nil
}

// Get obtiene un plato.
func (uc *MenuUseCase) Get(ctx context.Context, scope session.Scope, id string) (*dto.MenuItemResponse, error) {
	item, err := uc.get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// Create crea un plato; si img no es nil la sube primero y la borra si falla el INSERT.
func (uc *MenuUseCase) Create(ctx context.Context, scope session.Scope, in dto.CreateMenuItemRequest, img *media.File) (*dto.MenuItemResponse, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	now := time.Now()
	item := &entity.MenuItem{
		ID:          uuid.New().String(),
		BranchID:    scope.BranchID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		IsAvailable: in.IsAvailable == nil || *in.IsAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if img == nil {
		if err := uc.repo.Create(ctx, item); err != nil {
			return nil, err
		}
		return toMenuItemResponse(item), nil
	}
	_, err := uc.media.UploadAndPersist(ctx, *img, uc.media.Folder(scope.BranchID, menuFolder), func(a ports.MediaAsset) error {
		item.ImageURL, item.PublicID = a.SecureURL, a.PublicID
		return uc.repo.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// Update modifica un plato. Una imagen nueva reemplaza a la anterior, que se borra después del UPDATE.
func (uc *MenuUseCase) Update(ctx context.Context, scope session.Scope, id string, in dto.UpdateMenuItemRequest, img *media.File) (*dto.MenuItemResponse, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	item, err := uc.get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
		}
		item.Price = *in.Price
	}
	if in.Category != nil {
		item.Category = strings.TrimSpace(*in.Category)
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	item.UpdatedAt = time.Now()

	if img == nil {
		if err := uc.repo.Update(ctx, item); err != nil {
			return nil, err
		}
		return toMenuItemResponse(item), nil
	}
	oldPublicID := item.PublicID
	_, err = uc.media.UploadAndPersist(ctx, *img, uc.media.Folder(scope.BranchID, menuFolder), func(a ports.MediaAsset) error {
		item.ImageURL, item.PublicID = a.SecureURL, a.PublicID
		return uc.repo.Update(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	uc.media.RemoveAfterDelete(ctx, oldPublicID)
	return toMenuItemResponse(item), nil
}

// Delete borra el plato y después su imagen (best-effort).
func (uc *MenuUseCase) Delete(ctx context.Context, scope session.Scope, id string) error {
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

// Import crea platos a partir de una hoja de Google Sheets. Las filas sin nombre o sin
// categoría se omiten; un fallo de persistencia detiene la importación.
func (uc *MenuUseCase) Import(ctx context.Context, scope session.Scope, in dto.ImportMenuRequest) (*dto.ImportMenuResult, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if uc.sheets == nil {
		return nil, fmt.Errorf("%w: importación desde Google Sheets no configurada", domain.ErrUpstream)
	}
	readRange := in.Range
	if readRange == "" {
		readRange = defaultSheetRange
	}
	rows, err := uc.sheets.ReadMenu(ctx, in.SpreadsheetID, readRange)
	if err != nil {
		return nil, fmt.Errorf("%w: leer hoja: %w", domain.ErrUpstream, err)
	}

	res := &dto.ImportMenuResult{}
	now := time.Now()
	for _, r := range rows {
		name, category := strings.TrimSpace(r.Name), strings.TrimSpace(r.Category)
		if name == "" || category == "" || r.Price.IsNegative() {
			res.Skipped++
			continue
		}
		item := &entity.MenuItem{
			ID:          uuid.New().String(),
			BranchID:    scope.BranchID,
			Name:        name,
			Description: r.Description,
			Price:       r.Price,
			Category:    category,
			ImageURL:    r.ImageURL,
			IsAvailable: r.IsAvailable,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uc.repo.Create(ctx, item); err != nil {
			return res, fmt.Errorf("importar %q: %w", name, err)
		}
		res.Imported++
	}
	uc.log.Info().Str("branch_id", scope.BranchID).Int("imported", res.Imported).Int("skipped", res.Skipped).Msg("carta importada")
	return res, nil
}

func (uc *MenuUseCase) get(ctx context.Context, scope session.Scope, id string) (*entity.MenuItem, error) {
	if err := requireBranch(scope); err != nil {
		return nil, err
	}
	item, err := uc.repo.GetByID(ctx, scope.BranchID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func toMenuItemResponse(m *entity.MenuItem) *dto.MenuItemResponse {
	return &dto.MenuItemResponse{
		ID:          m.ID,
		BranchID:    m.BranchID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		PublicID:    m.PublicID,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
