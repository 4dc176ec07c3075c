package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/usecase"
)

// FAQHandler preguntas frecuentes.
type FAQHandler struct {
	uc *usecase.FAQUseCase
}

// NewFAQHandler construye el handler.
func NewFAQHandler(uc *usecase.FAQUseCase) *FAQHandler {
	return &FAQHandler{uc: uc}
}

// List godoc
// @Summary      Listar preguntas frecuentes
// @Tags         faqs
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.FAQResponse}
// @Router       /api/faqs [get]
func (h *FAQHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetScope(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// Create godoc
// @Summary      Crear pregunta frecuente
// @Description  Se añade al final (order_index = máximo + 1).
// @Tags         faqs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFAQRequest  true  "Pregunta y respuesta"
// @Success      201   {object}  dto.Response{data=dto.FAQResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/faqs [post]
func (h *FAQHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFAQRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	out, err := h.uc.Create(c.UserContext(), GetScope(c), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "pregunta creada", out)
}

// Update godoc
// @Summary      Actualizar pregunta frecuente
// @Tags         faqs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID de la pregunta"
// @Param        body  body  dto.UpdateFAQRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.Response{data=dto.FAQResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/faqs/{id} [put]
func (h *FAQHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateFAQRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	out, err := h.uc.Update(c.UserContext(), GetScope(c), id, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "pregunta actualizada", out)
}

// Delete godoc
// @Summary      Eliminar pregunta frecuente
// @Tags         faqs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la pregunta"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/faqs/{id} [delete]
func (h *FAQHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetScope(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, "pregunta eliminada", nil)
}

// Reorder godoc
// @Summary      Reordenar preguntas frecuentes
// @Description  Cada par se aplica por separado y sin rollback. Si alguno falla la respuesta es un error
// @Description  cuyo data trae cuántos se aplicaron y qué ids fallaron.
// @Tags         faqs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReorderRequest  true  "Pares id, order_index"
// @Success      200   {object}  dto.Response{data=dto.ReorderResult}
// @Failure      400   {object}  dto.Response
// @Router       /api/faqs/reorder [put]
func (h *FAQHandler) Reorder(c *fiber.Ctx) error {
	var in dto.ReorderRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	res, err := h.uc.Reorder(c.UserContext(), GetScope(c), in.Items)
	return reorderResponse(c, res, err)
}

// GalleryHandler galería de fotos.
type GalleryHandler struct {
	uc *usecase.GalleryUseCase
}

// NewGalleryHandler construye el handler.
func NewGalleryHandler(uc *usecase.GalleryUseCase) *GalleryHandler {
	return &GalleryHandler{uc: uc}
}

// List godoc
// @Summary      Listar galería
// @Tags         gallery
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.GalleryItemResponse}
// @Router       /api/gallery [get]
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetScope(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// Upload godoc
// @Summary      Subir foto
// @Tags         gallery
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        caption  formData  string  false  "Pie de foto"
// @Param        image    formData  file    true   "Imagen"
// @Success      201  {object}  dto.Response{data=dto.GalleryItemResponse}
// @Failure      400  {object}  dto.Response
// @Failure      413  {object}  dto.Response
// @Failure      502  {object}  dto.Response
// @Router       /api/gallery [post]
func (h *GalleryHandler) Upload(c *fiber.Ctx) error {
	img, release, err := formImage(c)
	if err != nil {
		return fail(c, err)
	}
	defer release()
	out, err := h.uc.Upload(c.UserContext(), GetScope(c), c.FormValue("caption"), img)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "foto subida", out)
}

// UpdateCaption godoc
// @Summary      Cambiar pie de foto
// @Tags         gallery
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la foto"
// @Param        body  body  dto.UpdateGalleryRequest  true  "caption"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/gallery/{id} [put]
func (h *GalleryHandler) UpdateCaption(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateGalleryRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	if err := h.uc.UpdateCaption(c.UserContext(), GetScope(c), id, in); err != nil {
		return fail(c, err)
	}
	return ok(c, "foto actualizada", nil)
}

// Delete godoc
// @Summary      Eliminar foto
// @Tags         gallery
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la foto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetScope(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, "foto eliminada", nil)
}

// Reorder godoc
// @Summary      Reordenar galería
// @Tags         gallery
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReorderRequest  true  "Pares id, order_index"
// @Success      200   {object}  dto.Response{data=dto.ReorderResult}
// @Failure      400   {object}  dto.Response
// @Router       /api/gallery/reorder [put]
func (h *GalleryHandler) Reorder(c *fiber.Ctx) error {
	var in dto.ReorderRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	res, err := h.uc.Reorder(c.UserContext(), GetScope(c), in.Items)
	return reorderResponse(c, res, err)
}

// reorderResponse con fallo parcial devuelve el error junto al resultado.
func reorderResponse(c *fiber.Ctx, res *dto.ReorderResult, err error) error {
	if err != nil {
		if res != nil {
			return failWithData(c, err, res)
		}
		return fail(c, err)
	}
	return ok(c, "orden actualizado", res)
}
