package ports

import (
	"context"

	"github.com/jhoicas/restaurante-admin-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Users    repository.UserRepository
	Profiles repository.ProfileRepository
	Invites  repository.InviteRepository
	Branches repository.BranchRepository
	Settings repository.SettingsRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback si no.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
