package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La capa HTTP los traduce a códigos de estado en un único lugar.
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrUpstream       = errors.New("fallo en servicio externo")
	ErrFileTooLarge   = errors.New("archivo demasiado grande")
	ErrBranchNotOwned = errors.New("la sucursal no pertenece al usuario")
	ErrNoBranch       = errors.New("no hay sucursal seleccionada")
	ErrInviteInvalid  = errors.New("invitación inválida")
	ErrInviteExpired  = errors.New("invitación vencida")
	ErrNotOnboarded   = errors.New("el usuario no ha completado el onboarding")
)
