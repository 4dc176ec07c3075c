package usecase_test

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/jhoicas/restaurante-admin-api/internal/application/ports"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
)

var errDB = errors.New("db: conexión perdida")

// ── CDN ──────────────────────────────────────────────────────────────────────

type fakeStorage struct {
	mu      sync.Mutex
	uploads int
	deletes []string
}

func (f *fakeStorage) Upload(_ context.Context, r io.Reader, in ports.UploadInput) (ports.MediaAsset, error) {
	_, _ = io.ReadAll(r)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads++
	return ports.MediaAsset{SecureURL: "https://cdn.test/" + in.Folder + "/new.png", PublicID: in.Folder + "/new"}, nil
}

func (f *fakeStorage) Delete(_ context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, publicID)
	return nil
}

// ── Notificaciones ───────────────────────────────────────────────────────────

type fakeNotifier struct {
	events []ports.StaffEvent
}

func (f *fakeNotifier) Notify(_ context.Context, ev ports.StaffEvent) {
	f.events = append(f.events, ev)
}

// ── Ofertas ──────────────────────────────────────────────────────────────────

type fakeOfferRepo struct {
	rows      map[string]*entity.Offer
	createErr error
	deleteErr error
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{rows: map[string]*entity.Offer{}}
}

func (f *fakeOfferRepo) Create(_ context.Context, o *entity.Offer) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.rows[o.ID] = o
	return nil
}

func (f *fakeOfferRepo) GetByID(_ context.Context, branchID, id string) (*entity.Offer, error) {
	o, ok := f.rows[id]
	if !ok || o.BranchID != branchID {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOfferRepo) ListByBranch(_ context.Context, branchID string, activeOnly bool) ([]*entity.Offer, error) {
	var out []*entity.Offer
	for _, o := range f.rows {
		if o.BranchID == branchID && (!activeOnly || o.IsActive) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOfferRepo) Update(_ context.Context, o *entity.Offer) error {
	if _, ok := f.rows[o.ID]; !ok {
		return domain.ErrNotFound
	}
	f.rows[o.ID] = o
	return nil
}

func (f *fakeOfferRepo) Delete(_ context.Context, branchID, id string) (string, error) {
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	o, ok := f.rows[id]
	if !ok || o.BranchID != branchID {
		return "", domain.ErrNotFound
	}
	delete(f.rows, id)
	return o.PublicID, nil
}

// ── FAQs ─────────────────────────────────────────────────────────────────────

type fakeFAQRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.FAQ
}

func newFakeFAQRepo(faqs ...*entity.FAQ) *fakeFAQRepo {
	f := &fakeFAQRepo{rows: map[string]*entity.FAQ{}}
	for _, q := range faqs {
		f.rows[q.ID] = q
	}
	return f
}

func (f *fakeFAQRepo) Create(_ context.Context, q *entity.FAQ) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[q.ID] = q
	return nil
}

func (f *fakeFAQRepo) GetByID(_ context.Context, branchID, id string) (*entity.FAQ, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.rows[id]
	if !ok || q.BranchID != branchID {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (f *fakeFAQRepo) ListByBranch(_ context.Context, branchID string) ([]*entity.FAQ, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.FAQ
	for _, q := range f.rows {
		if q.BranchID == branchID {
			cp := *q
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (f *fakeFAQRepo) Update(_ context.Context, q *entity.FAQ) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[q.ID]; !ok {
		return domain.ErrNotFound
	}
	f.rows[q.ID] = q
	return nil
}

func (f *fakeFAQRepo) Delete(_ context.Context, branchID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.rows[id]
	if !ok || q.BranchID != branchID {
		return domain.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeFAQRepo) UpdateOrderIndex(_ context.Context, branchID, id string, orderIndex int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.rows[id]
	if !ok || q.BranchID != branchID {
		return domain.ErrNotFound
	}
	q.OrderIndex = orderIndex
	return nil
}

func (f *fakeFAQRepo) NextOrderIndex(_ context.Context, branchID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := 0
	for _, q := range f.rows {
		if q.BranchID == branchID && q.OrderIndex >= next {
			next = q.OrderIndex + 1
		}
	}
	return next, nil
}

// ── Reservas ─────────────────────────────────────────────────────────────────

type fakeReservationRepo struct {
	rows []*entity.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, r *entity.Reservation) error {
	f.rows = append(f.rows, r)
	return nil
}

func (f *fakeReservationRepo) find(branchID, id string) *entity.Reservation {
	for _, r := range f.rows {
		if r.ID == id && r.BranchID == branchID {
			return r
		}
	}
	return nil
}

func (f *fakeReservationRepo) GetByID(_ context.Context, branchID, id string) (*entity.Reservation, error) {
	r := f.find(branchID, id)
	if r == nil {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReservationRepo) ListByBranch(_ context.Context, branchID, phone string) ([]*entity.Reservation, error) {
	var out []*entity.Reservation
	for _, r := range f.rows {
		if r.BranchID == branchID && (phone == "" || r.Phone == phone) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, r *entity.Reservation) error {
	cur := f.find(r.BranchID, r.ID)
	if cur == nil || cur.UserID != r.UserID {
		return domain.ErrNotFound
	}
	*cur = *r
	return nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, branchID, id, status string) error {
	cur := f.find(branchID, id)
	if cur == nil {
		return domain.ErrNotFound
	}
	cur.Status = status
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, branchID, userID, id string) error {
	for i, r := range f.rows {
		if r.ID == id && r.BranchID == branchID && r.UserID == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Sucursales ───────────────────────────────────────────────────────────────

type fakeBranchRepo struct {
	rows map[string]*entity.Branch
}

func newFakeBranchRepo(branches ...*entity.Branch) *fakeBranchRepo {
	f := &fakeBranchRepo{rows: map[string]*entity.Branch{}}
	for _, b := range branches {
		f.rows[b.ID] = b
	}
	return f
}

func (f *fakeBranchRepo) Create(_ context.Context, b *entity.Branch) error {
	f.rows[b.ID] = b
	return nil
}

func (f *fakeBranchRepo) GetByID(_ context.Context, id string) (*entity.Branch, error) {
	b, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBranchRepo) ListByOwner(_ context.Context, ownerID string) ([]*entity.Branch, error) {
	var out []*entity.Branch
	for _, b := range f.rows {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeBranchRepo) Update(_ context.Context, b *entity.Branch) error {
	cur, ok := f.rows[b.ID]
	if !ok || cur.OwnerID != b.OwnerID {
		return domain.ErrNotFound
	}
	f.rows[b.ID] = b
	return nil
}

func (f *fakeBranchRepo) Delete(_ context.Context, ownerID, id string) error {
	cur, ok := f.rows[id]
	if !ok || cur.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeBranchRepo) IsOwnedBy(_ context.Context, branchID, userID string) (bool, error) {
	b, ok := f.rows[branchID]
	return ok && b.OwnerID == userID, nil
}

// ── Carta ────────────────────────────────────────────────────────────────────

type fakeMenuRepo struct {
	rows []*entity.MenuItem
}

func (f *fakeMenuRepo) Create(_ context.Context, m *entity.MenuItem) error {
	f.rows = append(f.rows, m)
	return nil
}

func (f *fakeMenuRepo) GetByID(_ context.Context, branchID, id string) (*entity.MenuItem, error) {
	for _, m := range f.rows {
		if m.ID == id && m.BranchID == branchID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMenuRepo) ListByBranch(_ context.Context, branchID, category string) ([]*entity.MenuItem, error) {
	var out []*entity.MenuItem
	for _, m := range f.rows {
		if m.BranchID == branchID && (category == "" || m.Category == category) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMenuRepo) Update(_ context.Context, m *entity.MenuItem) error {
	for i, cur := range f.rows {
		if cur.ID == m.ID && cur.BranchID == m.BranchID {
			f.rows[i] = m
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeMenuRepo) Delete(_ context.Context, branchID, id string) (string, error) {
	for i, m := range f.rows {
		if m.ID == id && m.BranchID == branchID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return m.PublicID, nil
		}
	}
	return "", domain.ErrNotFound
}

type fakeSheets struct {
	rows []ports.MenuSheetRow
}

func (f *fakeSheets) ReadMenu(context.Context, string, string) ([]ports.MenuSheetRow, error) {
	return f.rows, nil
}
