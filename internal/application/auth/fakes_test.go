package auth_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
)

var errDB = errors.New("db caída")

type fakeUsers struct {
	mu   sync.Mutex
	rows map[string]*entity.User
}

func newFakeUsers() *fakeUsers { return &fakeUsers{rows: map[string]*entity.User{}} }

func (f *fakeUsers) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *u
	f.rows[u.ID] = &cp
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.rows[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.rows {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeProfiles struct {
	rows   map[string]*entity.Profile
	getErr error
}

func newFakeProfiles() *fakeProfiles { return &fakeProfiles{rows: map[string]*entity.Profile{}} }

func (f *fakeProfiles) Get(_ context.Context, userID string) (*entity.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if p, ok := f.rows[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProfiles) Upsert(_ context.Context, p *entity.Profile) error {
	cp := *p
	f.rows[p.UserID] = &cp
	return nil
}

type fakeInvites struct {
	rows map[string]*entity.InviteToken
}

func newFakeInvites() *fakeInvites { return &fakeInvites{rows: map[string]*entity.InviteToken{}} }

func (f *fakeInvites) Create(_ context.Context, t *entity.InviteToken) error {
	cp := *t
	f.rows[t.Token] = &cp
	return nil
}

func (f *fakeInvites) Get(_ context.Context, token string) (*entity.InviteToken, error) {
	if t, ok := f.rows[token]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeInvites) Delete(_ context.Context, token string) error {
	delete(f.rows, token)
	return nil
}

type fakeBranches struct {
	rows       map[string]*entity.Branch
	createErr  error
	ownedCalls int
}

func newFakeBranches() *fakeBranches { return &fakeBranches{rows: map[string]*entity.Branch{}} }

func (f *fakeBranches) Create(_ context.Context, b *entity.Branch) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *b
	f.rows[b.ID] = &cp
	return nil
}

func (f *fakeBranches) GetByID(_ context.Context, id string) (*entity.Branch, error) {
	if b, ok := f.rows[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeBranches) ListByOwner(_ context.Context, ownerID string) ([]*entity.Branch, error) {
	var out []*entity.Branch
	for _, b := range f.rows {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBranches) Update(_ context.Context, b *entity.Branch) error {
	if _, ok := f.rows[b.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *b
	f.rows[b.ID] = &cp
	return nil
}

func (f *fakeBranches) Delete(_ context.Context, ownerID, id string) error {
	b, ok := f.rows[id]
	if !ok || b.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeBranches) IsOwnedBy(_ context.Context, branchID, userID string) (bool, error) {
	f.ownedCalls++
	b, ok := f.rows[branchID]
	return ok && b.OwnerID == userID, nil
}

type fakeSettings struct {
	rows map[string]*entity.RestaurantSettings
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{rows: map[string]*entity.RestaurantSettings{}}
}

func (f *fakeSettings) Get(_ context.Context, branchID string) (*entity.RestaurantSettings, error) {
	if s, ok := f.rows[branchID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeSettings) Upsert(_ context.Context, s *entity.RestaurantSettings) error {
	cp := *s
	f.rows[s.BranchID] = &cp
	return nil
}

// fakeTx ejecuta fn sobre los mismos repos en memoria; cuenta las ejecuciones.
type fakeTx struct {
	repos ports.TxRepos
	runs  int
}

func (f *fakeTx) Run(_ context.Context, fn func(r ports.TxRepos) error) error {
	f.runs++
	return fn(f.repos)
}

type env struct {
	users    *fakeUsers
	profiles *fakeProfiles
	invites  *fakeInvites
	branches *fakeBranches
	settings *fakeSettings
	tx       *fakeTx
}

func newEnv() *env {
	e := &env{
		users:    newFakeUsers(),
		profiles: newFakeProfiles(),
		invites:  newFakeInvites(),
		branches: newFakeBranches(),
		settings: newFakeSettings(),
	}
	e.tx = &fakeTx{repos: ports.TxRepos{
		Users:    e.users,
		Profiles: e.profiles,
		Invites:  e.invites,
		Branches: e.branches,
		Settings: e.settings,
	}}
	return e
}
