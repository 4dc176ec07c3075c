package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/usecase"
)

// MenuHandler carta de la sucursal activa.
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// List godoc
// @Summary      Listar platos
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría"
// @Success      200       {object}  dto.Response{data=[]dto.MenuItemResponse}
// @Failure      403       {object}  dto.Response
// @Router       /api/menu [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetScope(c), c.Query("category"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// GetByID godoc
// @Summary      Obtener plato
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del plato"
// @Success      200  {object}  dto.Response{data=dto.MenuItemResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/menu/{id} [get]
func (h *MenuHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Crear plato
// @Description  JSON o multipart/form-data; en multipart la imagen opcional va en el campo "image".
// @Tags         menu
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        body   body      dto.CreateMenuItemRequest  true   "Datos del plato"
// @Param        image  formData  file                       false  "Imagen"
// @Success      201    {object}  dto.Response{data=dto.MenuItemResponse}
// @Failure      400    {object}  dto.Response
// @Failure      413    {object}  dto.Response
// @Failure      502    {object}  dto.Response
// @Router       /api/menu [post]
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMenuItemRequest
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
	return created(c, "plato creado", out)
}

// Update godoc
// @Summary      Actualizar plato
// @Description  Una imagen nueva reemplaza a la anterior, que se borra del CDN tras guardar.
// @Tags         menu
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        id     path      string                     true   "ID del plato"
// @Param        body   body      dto.UpdateMenuItemRequest  true   "Campos a modificar"
// @Param        image  formData  file                       false  "Imagen nueva"
// @Success      200    {object}  dto.Response{data=dto.MenuItemResponse}
// @Failure      404    {object}  dto.Response
// @Router       /api/menu/{id} [put]
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateMenuItemRequest
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
	return ok(c, "plato actualizado", out)
}

// Delete godoc
// @Summary      Eliminar plato
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del plato"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/menu/{id} [delete]
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), GetScope(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, "plato eliminado", nil)
}

// Import godoc
// @Summary      Importar carta desde Google Sheets
// @Description  Columnas: nombre, descripción, precio, categoría, imagen, disponible.
// @Tags         menu
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportMenuRequest  true  "Hoja de cálculo"
// @Success      200   {object}  dto.Response{data=dto.ImportMenuResult}
// @Failure      502   {object}  dto.Response
// @Router       /api/menu/import [post]
func (h *MenuHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportMenuRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	out, err := h.uc.Import(c.UserContext(), GetScope(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "carta importada", out)
}
