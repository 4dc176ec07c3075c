package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
)

// BranchHandler sucursales del usuario y ajustes de la sucursal activa.
type BranchHandler struct {
	uc       *usecase.BranchUseCase
	settings *usecase.SettingsUseCase
	cookies  CookieOptions
}

// NewBranchHandler construye el handler.
func NewBranchHandler(uc *usecase.BranchUseCase, settings *usecase.SettingsUseCase, cookies CookieOptions) *BranchHandler {
	return &BranchHandler{uc: uc, settings: settings, cookies: cookies}
}

// List godoc
// @Summary      Listar sucursales propias
// @Tags         branches
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.BranchResponse}
// @Router       /api/branches [get]
func (h *BranchHandler) List(c *fiber.Ctx) error {
	scope := GetScope(c)
	out, err := h.uc.List(c.UserContext(), scope.UserID, scope.BranchID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// Create godoc
// @Summary      Crear sucursal
// @Tags         branches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBranchRequest  true  "Datos de la sucursal"
// @Success      201   {object}  dto.Response{data=dto.BranchResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/branches [post]
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	out, err := h.uc.Create(c.UserContext(), GetScope(c).UserID, in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "sucursal creada", out)
}

// Update godoc
// @Summary      Actualizar sucursal
// @Tags         branches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sucursal"
// @Param        body  body  dto.UpdateBranchRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.Response{data=dto.BranchResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/branches/{id} [put]
func (h *BranchHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	out, err := h.uc.Update(c.UserContext(), GetScope(c).UserID, id, in)
	if err != nil {
		return fail(c, err)
	}
	out.Selected = id == GetScope(c).BranchID
	return ok(c, "sucursal actualizada", out)
}

// Delete godoc
// @Summary      Eliminar sucursal
// @Description  Si era la sucursal activa se borra también la cookie de sucursal.
// @Tags         branches
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sucursal"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/branches/{id} [delete]
func (h *BranchHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, err)
	}
	scope := GetScope(c)
	if err := h.uc.Delete(c.UserContext(), scope.UserID, id); err != nil {
		return fail(c, err)
	}
	if scope.BranchID == id {
		h.cookies.clear(c, CookieBranch)
	}
	return ok(c, "sucursal eliminada", nil)
}

// Select godoc
// @Summary      Seleccionar sucursal activa
// @Description  Verifica que la sucursal sea del usuario y la guarda en la cookie app_branch.
// @Tags         branches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectBranchRequest  true  "branch_id"
// @Success      200   {object}  dto.Response{data=dto.BranchResponse}
// @Failure      403   {object}  dto.Response
// @Router       /api/branches/select [post]
func (h *BranchHandler) Select(c *fiber.Ctx) error {
	var in dto.SelectBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	if in.BranchID != "" && uuid.Validate(in.BranchID) != nil {
		return fail(c, domain.ErrBranchNotOwned)
	}
	out, err := h.uc.Select(c.UserContext(), GetScope(c).UserID, in)
	if err != nil {
		return fail(c, err)
	}
	h.cookies.setBranch(c, out.ID)
	return ok(c, "sucursal seleccionada", out)
}

// GetSettings godoc
// @Summary      Ajustes del restaurante
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.SettingsResponse}
// @Failure      403  {object}  dto.Response
// @Router       /api/settings [get]
func (h *BranchHandler) GetSettings(c *fiber.Ctx) error {
	out, err := h.settings.Get(c.UserContext(), GetScope(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// UpsertSettings godoc
// @Summary      Guardar ajustes del restaurante
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertSettingsRequest  true  "Ajustes"
// @Success      200   {object}  dto.Response{data=dto.SettingsResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/settings [put]
func (h *BranchHandler) UpsertSettings(c *fiber.Ctx) error {
	var in dto.UpsertSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	out, err := h.settings.Upsert(c.UserContext(), GetScope(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "ajustes guardados", out)
}
