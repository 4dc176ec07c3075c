package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/session"
	"github.com/jhoicas/restaurante-admin-api/pkg/validate"
)

const dateLayout = "2006-01-02"

// requireBranch exige sucursal seleccionada (y ya verificada por el middleware).
func requireBranch(s session.Scope) error {
	if s.UserID == "" {
		return domain.ErrUnauthorized
	}
	if !s.HasBranch() {
		return domain.ErrNoBranch
	}
	return nil
}

// validateInput ejecuta las etiquetas validate y traduce a ErrInvalidInput.
func validateInput(in any) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	return nil
}

// parseDate convierte "YYYY-MM-DD" (vacío = nil).
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, s)
	}
	return &t, nil
}

// applyReorder lanza un UPDATE independiente por cada par (id, order_index) y espera a todos.
// No hay rollback: los pares aplicados quedan aplicados. Los fallos se agregan en un único error.
func applyReorder(ctx context.Context, items []dto.ReorderItem, update func(ctx context.Context, id string, orderIndex int) error) (*dto.ReorderResult, error) {
	if err := validateInput(dto.ReorderRequest{Items: items}); err != nil {
		return nil, err
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed = make(map[string]error)
	)
	for _, it := range items {
		wg.Add(1)
		go func(it dto.ReorderItem) {
			defer wg.Done()
			if err := update(ctx, it.ID, it.OrderIndex); err != nil {
				mu.Lock()
				failed[it.ID] = err
				mu.Unlock()
			}
		}(it)
	}
	wg.Wait()

	res := &dto.ReorderResult{Updated: len(items) - len(failed), Failed: make([]string, 0, len(failed))}
	for id := range failed {
		res.Failed = append(res.Failed, id)
	}
	if len(failed) == 0 {
		return res, nil
	}
	sort.Strings(res.Failed)
	errs := make([]error, 0, len(failed))
	for _, id := range res.Failed {
		errs = append(errs, fmt.Errorf("id %s: %w", id, failed[id]))
	}
	return res, fmt.Errorf("reordenar: %d de %d fallaron: %w", len(failed), len(items), errors.Join(errs...))
}
