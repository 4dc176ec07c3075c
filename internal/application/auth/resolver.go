package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/session"
	"github.com/jhoicas/restaurante-admin-api/pkg/jwt"
)

// Resolution estado de sesión de una petición.
type Resolution struct {
	Visitor session.Visitor
	Scope   session.Scope
	Email   string
	// StaleBranch la cookie de sucursal apunta a una sucursal ajena o borrada y debe limpiarse.
	StaleBranch bool
}

// SessionResolver obtiene usuario y sucursal de una petición y verifica que la sucursal sea del usuario.
type SessionResolver struct {
	secret      string
	profileRepo repository.ProfileRepository
	branchRepo  repository.BranchRepository
}

// NewSessionResolver construye el resolver. secret es el JWT secret con el que se firman las sesiones.
func NewSessionResolver(secret string, profileRepo repository.ProfileRepository, branchRepo repository.BranchRepository) *SessionResolver {
	return &SessionResolver{secret: secret, profileRepo: profileRepo, branchRepo: branchRepo}
}

// Resolve interpreta el token de acceso y el id de sucursal de la cookie.
// Un token ausente o inválido no es error: produce un visitante sin sesión.
// Solo devuelve error si falla la base de datos.
func (r *SessionResolver) Resolve(ctx context.Context, accessToken, branchID string) (Resolution, error) {
	var res Resolution
	if accessToken == "" {
		return res, nil
	}
	userID, email, err := jwt.Parse(r.secret, accessToken)
	if err != nil {
		return res, nil
	}
	res.Visitor.Authenticated = true
	res.Scope.UserID = userID
	res.Email = email

	profile, err := r.profileRepo.Get(ctx, userID)
	if err != nil {
		return res, fmt.Errorf("resolver sesión: perfil: %w", err)
	}
	res.Visitor.Onboarded = profile != nil && profile.HasOnboarded

	if branchID == "" {
		return res, nil
	}
	if uuid.Validate(branchID) != nil {
		res.StaleBranch = true
		return res, nil
	}
	owned, err := r.branchRepo.IsOwnedBy(ctx, branchID, userID)
	if err != nil {
		return res, fmt.Errorf("resolver sesión: sucursal: %w", err)
	}
	if !owned {
		res.StaleBranch = true
		return res, nil
	}
	res.Scope.BranchID = branchID
	res.Visitor.HasBranch = true
	return res, nil
}
