package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/usecase"
)

// PrivateEventHandler solicitudes de eventos privados.
type PrivateEventHandler struct {
	uc *usecase.PrivateEventUseCase
}

// NewPrivateEventHandler construye el handler.
func NewPrivateEventHandler(uc *usecase.PrivateEventUseCase) *PrivateEventHandler {
	return &PrivateEventHandler{uc: uc}
}

// List godoc
// @Summary      Listar eventos privados
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "new, contacted, confirmed, declined"
// @Success      200     {object}  dto.Response{data=[]dto.PrivateEventResponse}
// @Router       /api/events [get]
func (h *PrivateEventHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetScope(c), c.Query("status"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// GetByID godoc
// @Summary      Obtener evento privado
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {object}  dto.Response{data=dto.PrivateEventResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/events/{id} [get]
func (h *PrivateEventHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), GetScope(c), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// Create godoc
// @Summary      Registrar evento privado
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePrivateEventRequest  true  "Datos del evento"
// @Success      201   {object}  dto.Response{data=dto.PrivateEventResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/events [post]
func (h *PrivateEventHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePrivateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	out, err := h.uc.Create(c.UserContext(), GetScope(c), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "evento registrado", out)
}

// Update godoc
// @Summary      Actualizar evento privado
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID del evento"
// @Param        body  body  dto.UpdatePrivateEventRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.Response{data=dto.PrivateEventResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/events/{id} [put]
func (h *PrivateEventHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdatePrivateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	out, err := h.uc.Update(c.UserContext(), GetScope(c), id, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "evento actualizado", out)
}

// Delete godoc
// @Summary      Eliminar evento privado
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del evento"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/events/{id} [delete]
func (h *PrivateEventHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetScope(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, "evento eliminado", nil)
}
