package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/usecase"
)

// OfferHandler ofertas con imagen obligatoria.
type OfferHandler struct {
	uc *usecase.OfferUseCase
}

// NewOfferHandler construye el handler.
func NewOfferHandler(uc *usecase.OfferUseCase) *OfferHandler {
	return &OfferHandler{uc: uc}
}

// List godoc
// @Summary      Listar ofertas
// @Tags         offers
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "Solo ofertas activas"
// @Success      200     {object}  dto.Response{data=[]dto.OfferResponse}
// @Router       /api/offers [get]
func (h *OfferHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetScope(c), c.QueryBool("active", false))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// Create godoc
// @Summary      Crear oferta
// @Description  multipart/form-data con la imagen en "image" (máx. 9 MB). Si falla el INSERT la imagen se borra del CDN.
// @Tags         offers
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        title        formData  string  true   "Título"
// @Param        description  formData  string  false  "Descripción"
// @Param        valid_from   formData  string  false  "YYYY-MM-DD"
// @Param        valid_until  formData  string  false  "YYYY-MM-DD"
// @Param        is_active    formData  bool    false  "Activa"
// @Param        image        formData  file    true   "Imagen"
// @Success      201  {object}  dto.Response{data=dto.OfferResponse}
// @Failure      400  {object}  dto.Response
// @Failure      413  {object}  dto.Response
// @Failure      502  {object}  dto.Response
// @Router       /api/offers [post]
func (h *OfferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	img, release, err := formImage(c)
	if err != nil {
		return fail(c, err)
	}
	defer release()
	out, err := h.uc.Create(c.UserContext(), GetScope(c), in, img)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "oferta creada", out)
}

// Update godoc
// @Summary      Actualizar oferta
// @Tags         offers
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        id     path      string                  true   "ID de la oferta"
// @Param        body   body      dto.UpdateOfferRequest  true   "Campos a modificar"
// @Param        image  formData  file                    false  "Imagen nueva"
// @Success      200    {object}  dto.Response{data=dto.OfferResponse}
// @Failure      404    {object}  dto.Response
// @Router       /api/offers/{id} [put]
func (h *OfferHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	img, release, err := formImage(c)
	if err != nil {
		return fail(c, err)
	}
	defer release()
	out, err := h.uc.Update(c.UserContext(), GetScope(c), id, in, img)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "oferta actualizada", out)
}

// Delete godoc
// @Summary      Eliminar oferta
// @Description  Borra la fila y después la imagen; un fallo del CDN no revierte el borrado.
// @Tags         offers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la oferta"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/offers/{id} [delete]
func (h *OfferHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetScope(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, "oferta eliminada", nil)
}
