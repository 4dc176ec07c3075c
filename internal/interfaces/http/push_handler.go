package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/usecase"
)

// PushHandler suscripciones Web Push del usuario.
type PushHandler struct {
	uc *usecase.PushUseCase
}

// NewPushHandler construye el handler.
func NewPushHandler(uc *usecase.PushUseCase) *PushHandler {
	return &PushHandler{uc: uc}
}

// VAPIDKey godoc
// @Summary      Clave pública VAPID
// @Tags         push
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.VAPIDKeyResponse}
// @Router       /api/push/vapid-key [get]
func (h *PushHandler) VAPIDKey(c *fiber.Ctx) error {
	return ok(c, "", h.uc.PublicKey())
}

// Subscribe godoc
// @Summary      Registrar suscripción push
// @Tags         push
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubscribePushRequest  true  "PushSubscription.toJSON()"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /api/push/subscriptions [post]
func (h *PushHandler) Subscribe(c *fiber.Ctx) error {
	var in dto.SubscribePushRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	if err := h.uc.Subscribe(c.UserContext(), GetScope(c).UserID, in); err != nil {
		return fail(c, err)
	}
	return created(c, "suscripción registrada", nil)
}

// Unsubscribe godoc
// @Summary      Eliminar suscripción push
// @Tags         push
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UnsubscribePushRequest  true  "endpoint"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/push/subscriptions [delete]
func (h *PushHandler) Unsubscribe(c *fiber.Ctx) error {
	var in dto.UnsubscribePushRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	if err := h.uc.Unsubscribe(c.UserContext(), GetScope(c).UserID, in); err != nil {
		return fail(c, err)
	}
	return ok(c, "suscripción eliminada", nil)
}
