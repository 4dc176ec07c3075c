// Package auth contiene los casos de uso de acceso: invitaciones, alta, login, onboarding y la
// resolución de la sesión (usuario + sucursal) de cada petición.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
	"github.com/jhoicas/restaurante-admin-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/session"
	"github.com/jhoicas/restaurante-admin-api/pkg/jwt"
	"github.com/jhoicas/restaurante-admin-api/pkg/validate"
)

// inviteTokenBytes 256 bits -> 64 caracteres hex.
const inviteTokenBytes = 32

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	inviteRepo  repository.InviteRepository
	tx          ports.TxRunner
	jwtCfg      JWTConfig
	inviteTTL   time.Duration
	now         func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	inviteRepo repository.InviteRepository,
	tx ports.TxRunner,
	jwtCfg JWTConfig,
	inviteTTL time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		inviteRepo:  inviteRepo,
		tx:          tx,
		jwtCfg:      jwtCfg,
		inviteTTL:   inviteTTL,
		now:         time.Now,
	}
}

// WithClock sustituye el reloj (tests).
func (uc *AuthUseCase) WithClock(now func() time.Time) *AuthUseCase {
	uc.now = now
	return uc
}

// CreateInvite emite un token aleatorio de 256 bits con vigencia inviteTTL.
func (uc *AuthUseCase) CreateInvite(ctx context.Context, createdBy string, in dto.CreateInviteRequest) (*dto.InviteResponse, error) {
	in.Email = normalizeEmail(in.Email)
	if err := check(in); err != nil {
		return nil, err
	}
	buf := make([]byte, inviteTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	now := uc.now()
	t := &entity.InviteToken{
		Token:     hex.EncodeToString(buf),
		Email:     in.Email,
		CreatedBy: createdBy,
		ExpiresAt: now.Add(uc.inviteTTL),
		CreatedAt: now,
	}
	if err := uc.inviteRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return &dto.InviteResponse{
		Token:     t.Token,
		Email:     t.Email,
		ExpiresAt: t.ExpiresAt,
		InviteURL: "/invite-user?token=" + t.Token,
	}, nil
}

// ValidateInvite comprueba que el token exista y no haya vencido.
func (uc *AuthUseCase) ValidateInvite(ctx context.Context, token string) (*dto.InviteStatusResponse, error) {
	t, err := uc.lookupInvite(ctx, uc.inviteRepo, token)
	if err != nil {
		return nil, err
	}
	return &dto.InviteStatusResponse{Email: t.Email, ExpiresAt: t.ExpiresAt}, nil
}

// Signup da de alta al usuario invitado y consume el token, todo en una transacción.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.UserResponse, error) {
	in.Email = normalizeEmail(in.Email)
	if err := check(in); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	email := in.Email
	var created *entity.User
	err = uc.tx.Run(ctx, func(r ports.TxRepos) error {
		t, err := uc.lookupInvite(ctx, r.Invites, in.Token)
		if err != nil {
			return err
		}
		if t.Email != "" && t.Email != email {
			return fmt.Errorf("%w: el correo no coincide con la invitación", domain.ErrInviteInvalid)
		}
		existing, err := r.Users.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		now := uc.now()
		created = &entity.User{
			ID:           uuid.New().String(),
			Email:        email,
			PasswordHash: string(hash),
			Name:         strings.TrimSpace(in.Name),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := r.Users.Create(ctx, created); err != nil {
			return err
		}
		if err := r.Profiles.Upsert(ctx, &entity.Profile{UserID: created.ID, UpdatedAt: now}); err != nil {
			return err
		}
		return r.Invites.Delete(ctx, t.Token)
	})
	if err != nil {
		return nil, err
	}
	out := toUserResponse(created)
	return &out, nil
}

// Login verifica email/password y emite el token de sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = normalizeEmail(in.Email)
	if err := check(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	profile, err := uc.profileRepo.Get(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  token,
		ExpiresIn:    uc.jwtCfg.ExpMinutes * 60,
		User:         toUserResponse(user),
		HasOnboarded: profile != nil && profile.HasOnboarded,
	}, nil
}

// Me devuelve el usuario de la sesión.
func (uc *AuthUseCase) Me(ctx context.Context, scope session.Scope) (*dto.MeResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, scope.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	profile, err := uc.profileRepo.Get(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.MeResponse{
		User:         toUserResponse(user),
		HasOnboarded: profile != nil && profile.HasOnboarded,
		BranchID:     scope.BranchID,
	}, nil
}

// Onboard crea la primera sucursal con sus ajustes y marca el perfil como onboarded, en una transacción.
func (uc *AuthUseCase) Onboard(ctx context.Context, userID string, in dto.OnboardingRequest) (*dto.OnboardingResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := check(in); err != nil {
		return nil, err
	}
	now := uc.now()
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		OwnerID:   userID,
		Name:      strings.TrimSpace(in.BranchName),
		Location:  in.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	settings := &entity.RestaurantSettings{
		BranchID:       branch.ID,
		RestaurantName: strings.TrimSpace(in.RestaurantName),
		Phone:          in.Phone,
		Email:          in.Email,
		Address:        in.Address,
		OpeningHours:   []byte("{}"),
		UpdatedAt:      now,
	}
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		profile, err := r.Profiles.Get(ctx, userID)
		if err != nil {
			return err
		}
		if profile != nil && profile.HasOnboarded {
			return fmt.Errorf("%w: onboarding ya completado", domain.ErrDuplicate)
		}
		if err := r.Branches.Create(ctx, branch); err != nil {
			return err
		}
		if err := r.Settings.Upsert(ctx, settings); err != nil {
			return err
		}
		return r.Profiles.Upsert(ctx, &entity.Profile{UserID: userID, HasOnboarded: true, UpdatedAt: now})
	})
	if err != nil {
		return nil, err
	}
	return &dto.OnboardingResponse{
		Branch:   usecase.ToBranchResponse(branch, branch.ID),
		Settings: *usecase.ToSettingsResponse(settings),
	}, nil
}

func (uc *AuthUseCase) lookupInvite(ctx context.Context, repo repository.InviteRepository, token string) (*entity.InviteToken, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrInviteInvalid
	}
	t, err := repo.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrInviteInvalid
	}
	if t.Expired(uc.now()) {
		return nil, domain.ErrInviteExpired
	}
	return t, nil
}

func check(in any) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	return nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
