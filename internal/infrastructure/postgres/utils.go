package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/restaurante-admin-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, "23505")
}

// isForeignKeyViolation 23503: la fila referenciada no existe (p. ej. sucursal borrada).
func isForeignKeyViolation(err error) bool {
	return hasCode(err, "23503")
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// dbError marca un fallo de PostgreSQL como ErrUpstream conservando la causa.
func dbError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrUpstream, op, err)
}

// nullIfEmpty guarda NULL en columnas opcionales cuando el valor está vacío.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
