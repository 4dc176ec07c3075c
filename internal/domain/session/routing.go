// Package session decide a dónde debe ir cada petición según el estado de la sesión.
// No toca persistencia: recibe el estado ya resuelto (autenticado, onboarded, sucursal) y
// devuelve Continue o Redirect.
package session

import "strings"

// Páginas de entrada del dashboard.
const (
	PathLogin      = "/login"
	PathDashboard  = "/dashboard"
	PathOnboarding = "/onboarding"
	PathBranches   = "/branches"
)

// Action resultado de Decide.
type Action int

const (
	Continue Action = iota
	Redirect
	// Reject la petición es de API y no hay sesión: se responde 401 en vez de redirigir.
	Reject
)

// Visitor estado de sesión ya resuelto para la petición.
type Visitor struct {
	Authenticated bool
	Onboarded     bool
	HasBranch     bool
}

// Decision qué hacer con la petición.
type Decision struct {
	Action   Action
	Location string // solo si Action == Redirect
}

// publicPrefixes rutas accesibles sin sesión.
var publicPrefixes = []string{
	"/auth/",
	"/api/auth/",
	"/api/invites/",
	"/docs",
}

var publicExact = map[string]bool{
	PathLogin:      true,
	"/auth":        true,
	"/invite-user": true,
	"/health":      true,
	"/api/auth":    true,
}

// IsPublic informa si path está en la lista de acceso sin sesión.
func IsPublic(path string) bool {
	if publicExact[path] {
		return true
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// IsAPI informa si path pertenece a la API JSON.
func IsAPI(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

func under(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// Decide aplica, en orden:
//  1. sin sesión y ruta no pública -> /login (401 si es API)
//  2. con sesión visitando /login -> /dashboard
//  3. sin onboarding, fuera de /onboarding y de la API -> /onboarding
//  4. onboarded sin sucursal, fuera de /branches y de la API -> /branches
func Decide(path string, v Visitor) Decision {
	if !v.Authenticated {
		if IsPublic(path) {
			return Decision{Action: Continue}
		}
		if IsAPI(path) {
			return Decision{Action: Reject}
		}
		return Decision{Action: Redirect, Location: PathLogin}
	}
	if path == PathLogin {
		return Decision{Action: Redirect, Location: PathDashboard}
	}
	if IsAPI(path) {
		return Decision{Action: Continue}
	}
	if !v.Onboarded {
		if under(path, PathOnboarding) {
			return Decision{Action: Continue}
		}
		return Decision{Action: Redirect, Location: PathOnboarding}
	}
	if !v.HasBranch && !under(path, PathBranches) {
		return Decision{Action: Redirect, Location: PathBranches}
	}
	return Decision{Action: Continue}
}
