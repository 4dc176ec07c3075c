package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-admin-api/internal/application/auth"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/session"
)

// Cookies de la sesión.
const (
	CookieSession = "sb-access-token"
	CookieBranch  = "app_branch"

	branchCookieTTL = 7 * 24 * time.Hour
)

// Locals keys cargadas por SessionMiddleware.
const (
	LocalScope = "scope"
	LocalEmail = "email"
)

// SessionResolver resuelve token y sucursal de una petición.
type SessionResolver interface {
	Resolve(ctx context.Context, accessToken, branchID string) (auth.Resolution, error)
}

// CookieOptions atributos comunes de las cookies emitidas.
type CookieOptions struct {
	Secure bool
}

func (o CookieOptions) setSession(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieSession,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HTTPOnly: true,
		Secure:   o.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (o CookieOptions) setBranch(c *fiber.Ctx, branchID string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieBranch,
		Value:    branchID,
		Path:     "/",
		MaxAge:   int(branchCookieTTL.Seconds()),
		HTTPOnly: true,
		Secure:   o.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (o CookieOptions) clear(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   o.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// SessionMiddleware resuelve la sesión una sola vez por petición y aplica las reglas de redirección.
// El Scope que deja en Locals ya trae la sucursal verificada contra el usuario; una cookie
// de sucursal ajena o borrada se limpia y la petición sigue como "sin sucursal".
// En la API no hay redirecciones: sin sesión se responde 401.
func SessionMiddleware(resolver SessionResolver, cookies CookieOptions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := resolver.Resolve(c.UserContext(), accessToken(c), c.Cookies(CookieBranch))
		if err != nil {
			return fail(c, err)
		}
		if res.StaleBranch {
			cookies.clear(c, CookieBranch)
		}
		c.Locals(LocalScope, res.Scope)
		c.Locals(LocalEmail, res.Email)

		d := session.Decide(c.Path(), res.Visitor)
		switch d.Action {
		case session.Reject:
			return fail(c, domain.ErrUnauthorized)
		case session.Redirect:
			return c.Redirect(d.Location, fiber.StatusFound)
		}
		return c.Next()
	}
}

// accessToken Authorization: Bearer tiene prioridad sobre la cookie de sesión.
func accessToken(c *fiber.Ctx) string {
	if h := c.Get(fiber.HeaderAuthorization); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return c.Cookies(CookieSession)
}

// GetScope devuelve el ámbito verificado de la petición (después de SessionMiddleware).
func GetScope(c *fiber.Ctx) session.Scope {
	s, _ := c.Locals(LocalScope).(session.Scope)
	return s
}

// GetEmail devuelve el email del token de sesión.
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}

// requireUser exige sesión en rutas que Decide deja pasar sin ella (/api/auth/*).
func requireUser(c *fiber.Ctx) (session.Scope, error) {
	s := GetScope(c)
	if s.UserID == "" {
		return s, domain.ErrUnauthorized
	}
	return s, nil
}
