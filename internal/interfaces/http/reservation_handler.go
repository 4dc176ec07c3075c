package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/usecase"
)

// ReservationHandler reservas de la sucursal activa.
type ReservationHandler struct {
	uc *usecase.ReservationUseCase
}

// NewReservationHandler construye el handler.
func NewReservationHandler(uc *usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{uc: uc}
}

// List godoc
// @Summary      Listar reservas
// @Tags         reservations
// @Security     Bearer
// @Produce      json
// @Param        phone  query  string  false  "Filtrar por teléfono"
// @Success      200    {object}  dto.Response{data=[]dto.ReservationResponse}
// @Router       /api/reservations [get]
func (h *ReservationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetScope(c), c.Query("phone"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// GetByID godoc
// @Summary      Obtener reserva
// @Tags         reservations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.Response{data=dto.ReservationResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/reservations/{id} [get]
func (h *ReservationHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Crear reserva
// @Description  Avisa al personal de la sucursal (push y Telegram).
// @Tags         reservations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReservationRequest  true  "Datos de la reserva"
// @Success      201   {object}  dto.Response{data=dto.ReservationResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/reservations [post]
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReservationRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	out, err := h.uc.Create(c.UserContext(), GetScope(c), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "reserva creada", out)
}

// Update godoc
// @Summary      Actualizar reserva
// @Description  Solo el usuario que creó la reserva puede modificarla.
// @Tags         reservations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la reserva"
// @Param        body  body  dto.UpdateReservationRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.Response{data=dto.ReservationResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/reservations/{id} [put]
func (h *ReservationHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateReservationRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	out, err := h.uc.Update(c.UserContext(), GetScope(c), id, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "reserva actualizada", out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una reserva
// @Description  Cualquier miembro del personal de la sucursal.
// @Tags         reservations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la reserva"
// @Param        body  body  dto.UpdateStatusRequest  true  "pending, confirmed, cancelled, completed"
// @Success      200   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/reservations/{id}/status [patch]
func (h *ReservationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	if err := h.uc.UpdateStatus(c.UserContext(), GetScope(c), id, in); err != nil {
		return fail(c, err)
	}
	return ok(c, "estado actualizado", nil)
}

// Delete godoc
// @Summary      Eliminar reserva
// @Tags         reservations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetScope(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, "reserva eliminada", nil)
}
