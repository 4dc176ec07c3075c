package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
)

// ErrorStatus traduce un error de dominio a código HTTP y código de error del sobre.
// Es el único punto donde se decide el status de un error.
func ErrorStatus(err error) (int, string) {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code, fiberErrorCode(fe.Code)
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrInviteInvalid):
		return fiber.StatusBadRequest, "INVITE_INVALID"
	case errors.Is(err, domain.ErrInviteExpired):
		return fiber.StatusGone, "INVITE_EXPIRED"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrBranchNotOwned):
		return fiber.StatusForbidden, "BRANCH_NOT_OWNED"
	case errors.Is(err, domain.ErrNoBranch):
		return fiber.StatusForbidden, "NO_BRANCH"
	case errors.Is(err, domain.ErrNotOnboarded):
		return fiber.StatusForbidden, "NOT_ONBOARDED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"
	case errors.Is(err, domain.ErrUpstream):
		return fiber.StatusBadGateway, "UPSTREAM"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

func fiberErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "FILE_TOO_LARGE"
	case fiber.StatusBadRequest:
		return "INVALID_BODY"
	default:
		return "HTTP_ERROR"
	}
}

// ErrorHandler manejador de errores de Fiber: cualquier error que llegue hasta aquí sale con el sobre estándar.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return fail(c, err)
}

func ok(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(dto.Response{Success: true, Message: message, Data: data})
}

func created(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Success: true, Message: message, Data: data})
}

// localError error original de una respuesta 5xx, para el access log.
const localError = "error"

// fail responde con el sobre de error. Los 5xx no exponen el detalle interno: queda en el access log.
func fail(c *fiber.Ctx, err error) error {
	return failWithData(c, err, nil)
}

func failWithData(c *fiber.Ctx, err error, data any) error {
	status, code := ErrorStatus(err)
	msg := err.Error()
	switch status {
	case fiber.StatusInternalServerError:
		msg = "error interno"
	case fiber.StatusBadGateway:
		msg = domain.ErrUpstream.Error()
	}
	if status >= fiber.StatusInternalServerError {
		c.Locals(localError, err)
	}
	return c.Status(status).JSON(dto.Response{Success: false, Message: msg, Code: code, Data: data})
}

// badBody error de parseo del cuerpo o de la query.
func badBody(err error) error {
	return fmt.Errorf("%w: cuerpo inválido: %s", domain.ErrInvalidInput, err.Error())
}

// paramID lee :id y exige que sea un UUID; cualquier otro valor no puede existir (404).
func paramID(c *fiber.Ctx) (string, error) {
	id := strings.TrimSpace(c.Params("id"))
	if err := uuid.Validate(id); err != nil {
		return "", fmt.Errorf("%w: id %q", domain.ErrNotFound, id)
	}
	return id, nil
}
