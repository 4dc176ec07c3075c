package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-admin-api/internal/application/auth"
	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
)

// AuthHandler login, logout, alta por invitación y onboarding.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	cookies CookieOptions
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookies CookieOptions) *AuthHandler {
	return &AuthHandler{uc: uc, cookies: cookies}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Emite el token de sesión y lo deja en la cookie sb-access-token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Response{data=dto.LoginResponse}
// @Failure      400   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	h.cookies.setSession(c, out.AccessToken, time.Duration(out.ExpiresIn)*time.Second)
	return ok(c, "sesión iniciada", out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Borra la cookie de sesión y la de sucursal.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.cookies.clear(c, CookieSession)
	h.cookies.clear(c, CookieBranch)
	return ok(c, "sesión cerrada", nil)
}

// Signup godoc
// @Summary      Alta con invitación
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "token, email, password, name"
// @Success      201   {object}  dto.Response{data=dto.UserResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Failure      410   {object}  dto.Response
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	out, err := h.uc.Signup(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "usuario creado", out)
}

// Me godoc
// @Summary      Sesión actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.MeResponse}
// @Failure      401  {object}  dto.Response
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	scope, err := requireUser(c)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Me(c.UserContext(), scope)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// CreateInvite godoc
// @Summary      Invitar a un miembro del personal
// @Description  El token (64 hex) vence a las 24 horas y solo se muestra en esta respuesta.
// @Tags         invites
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInviteRequest  true  "email"
// @Success      201   {object}  dto.Response{data=dto.InviteResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/invites [post]
func (h *AuthHandler) CreateInvite(c *fiber.Ctx) error {
	// /api/invites/ comparte prefijo con la validación pública
	scope, err := requireUser(c)
	if err != nil {
		return fail(c, err)
	}
	var in dto.CreateInviteRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	out, err := h.uc.CreateInvite(c.UserContext(), scope.UserID, in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "invitación creada", out)
}

// ValidateInvite godoc
// @Summary      Validar token de invitación
// @Tags         invites
// @Produce      json
// @Param        token  path  string  true  "Token de invitación"
// @Success      200    {object}  dto.Response{data=dto.InviteStatusResponse}
// @Failure      400    {object}  dto.Response
// @Failure      410    {object}  dto.Response
// @Router       /api/invites/{token} [get]
func (h *AuthHandler) ValidateInvite(c *fiber.Ctx) error {
	out, err := h.uc.ValidateInvite(c.UserContext(), c.Params("token"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "invitación válida", out)
}

// Onboard godoc
// @Summary      Completar onboarding
// @Description  Crea la primera sucursal con sus ajustes y la deja seleccionada.
// @Tags         onboarding
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OnboardingRequest  true  "Sucursal y restaurante"
// @Success      201   {object}  dto.Response{data=dto.OnboardingResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/onboarding [post]
func (h *AuthHandler) Onboard(c *fiber.Ctx) error {
	var in dto.OnboardingRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, badBody(err))
	}
	out, err := h.uc.Onboard(c.UserContext(), GetScope(c).UserID, in)
	if err != nil {
		return fail(c, err)
	}
	h.cookies.setBranch(c, out.Branch.ID)
	return created(c, "onboarding completado", out)
}
