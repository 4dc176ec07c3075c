package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/restaurante-admin-api/internal/domain/session"
)

func TestDecide(t *testing.T) {
	anon := session.Visitor{}
	nuevo := session.Visitor{Authenticated: true}
	sinSucursal := session.Visitor{Authenticated: true, Onboarded: true}
	completo := session.Visitor{Authenticated: true, Onboarded: true, HasBranch: true}

	tests := []struct {
		name   string
		path   string
		v      session.Visitor
		action session.Action
		loc    string
	}{
		{"anónimo en página privada va a login", "/dashboard", anon, session.Redirect, session.PathLogin},
		{"anónimo en login continúa", "/login", anon, session.Continue, ""},
		{"anónimo en callback de auth continúa", "/auth/callback", anon, session.Continue, ""},
		{"anónimo en invite-user continúa", "/invite-user", anon, session.Continue, ""},
		{"anónimo en API pública continúa", "/api/auth/login", anon, session.Continue, ""},
		{"anónimo en API privada es rechazado", "/api/reservations", anon, session.Reject, ""},
		{"con sesión en login va a dashboard", "/login", completo, session.Redirect, session.PathDashboard},
		{"sin onboarding va a onboarding", "/dashboard", nuevo, session.Redirect, session.PathOnboarding},
		{"sin onboarding en onboarding continúa", "/onboarding", nuevo, session.Continue, ""},
		{"sin onboarding en API continúa", "/api/onboarding", nuevo, session.Continue, ""},
		{"sin sucursal va a branches", "/dashboard", sinSucursal, session.Redirect, session.PathBranches},
		{"sin sucursal en branches continúa", "/branches/nueva", sinSucursal, session.Continue, ""},
		{"sin sucursal en API continúa", "/api/branches", sinSucursal, session.Continue, ""},
		{"branchesx no es branches", "/branchesx", sinSucursal, session.Redirect, session.PathBranches},
		{"completo continúa", "/dashboard/menu", completo, session.Continue, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := session.Decide(tt.path, tt.v)
			assert.Equal(t, tt.action, got.Action)
			assert.Equal(t, tt.loc, got.Location)
		})
	}
}
