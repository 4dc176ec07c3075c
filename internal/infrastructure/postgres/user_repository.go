package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
)

var (
	_ repository.UserRepository    = (*UserRepo)(nil)
	_ repository.ProfileRepository = (*ProfileRepo)(nil)
	_ repository.InviteRepository  = (*InviteRepo)(nil)
)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return dbError("insert user", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, `WHERE id::text = $1`, id)
}

// FindByEmail obtiene un usuario por email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, `WHERE email = $1 LIMIT 1`, email)
}

func (r *UserRepo) findOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	query := `SELECT id, email, password_hash, name, created_at, updated_at FROM users ` + where
	var u entity.User
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get user", err)
	}
	return &u, nil
}

// ProfileRepo estado de onboarding por usuario.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador de perfiles.
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Get devuelve nil, nil si el usuario no tiene perfil.
func (r *ProfileRepo) Get(ctx context.Context, userID string) (*entity.Profile, error) {
	var p entity.Profile
	err := r.q.QueryRow(ctx,
		`SELECT user_id, has_onboarded, updated_at FROM profiles WHERE user_id::text = $1`, userID,
	).Scan(&p.UserID, &p.HasOnboarded, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get profile", err)
	}
	return &p, nil
}

// Upsert crea o actualiza el perfil.
func (r *ProfileRepo) Upsert(ctx context.Context, p *entity.Profile) error {
	query := `
		INSERT INTO profiles (user_id, has_onboarded, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET has_onboarded = EXCLUDED.has_onboarded, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, p.UserID, p.HasOnboarded, p.UpdatedAt); err != nil {
		return dbError("upsert profile", err)
	}
	return nil
}

// InviteRepo tokens de invitación.
type InviteRepo struct {
	q Querier
}

// NewInviteRepository construye el adaptador de invitaciones.
func NewInviteRepository(q Querier) *InviteRepo {
	return &InviteRepo{q: q}
}

// Create persiste el token.
func (r *InviteRepo) Create(ctx context.Context, t *entity.InviteToken) error {
	query := `
		INSERT INTO invite_tokens (token, email, created_by, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.Exec(ctx, query, t.Token, t.Email, t.CreatedBy, t.ExpiresAt, t.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return dbError("insert invite", err)
	}
	return nil
}

// Get devuelve nil, nil si el token no existe.
func (r *InviteRepo) Get(ctx context.Context, token string) (*entity.InviteToken, error) {
	var t entity.InviteToken
	err := r.q.QueryRow(ctx,
		`SELECT token, email, created_by, expires_at, created_at FROM invite_tokens WHERE token = $1`, token,
	).Scan(&t.Token, &t.Email, &t.CreatedBy, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get invite", err)
	}
	return &t, nil
}

// Delete consume el token.
func (r *InviteRepo) Delete(ctx context.Context, token string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM invite_tokens WHERE token = $1`, token); err != nil {
		return dbError("delete invite", err)
	}
	return nil
}
