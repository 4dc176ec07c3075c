package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-admin-api/internal/application/auth"
	"github.com/jhoicas/restaurante-admin-api/internal/application/dto"
	"github.com/jhoicas/restaurante-admin-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-admin-api/internal/domain"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-admin-api/internal/domain/session"
	apphttp "github.com/jhoicas/restaurante-admin-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID   = "00000000-0000-0000-0000-000000000001"
	testBranchID = "00000000-0000-0000-0000-0000000000b1"
	faqA         = "00000000-0000-0000-0000-00000000000a"
	faqMissing   = "00000000-0000-0000-0000-0000000000ff"
)

type fakeResolver struct {
	res       auth.Resolution
	err       error
	gotToken  string
	gotBranch string
}

func (f *fakeResolver) Resolve(_ context.Context, token, branchID string) (auth.Resolution, error) {
	f.gotToken, f.gotBranch = token, branchID
	return f.res, f.err
}

func signedIn(branchID string) auth.Resolution {
	return auth.Resolution{
		Visitor: session.Visitor{Authenticated: true, Onboarded: true, HasBranch: branchID != ""},
		Scope:   session.Scope{UserID: testUserID, BranchID: branchID},
	}
}

type fakeFAQs struct {
	mu      sync.Mutex
	rows    map[string]*entity.FAQ
	listErr error
}

func newFakeFAQs(faqs ...*entity.FAQ) *fakeFAQs {
	f := &fakeFAQs{rows: make(map[string]*entity.FAQ)}
	for _, q := range faqs {
		f.rows[q.ID] = q
	}
	return f
}

func (f *fakeFAQs) Create(_ context.Context, q *entity.FAQ) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[q.ID] = q
	return nil
}

func (f *fakeFAQs) GetByID(_ context.Context, branchID, id string) (*entity.FAQ, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.rows[id]
	if !ok || q.BranchID != branchID {
		return nil, nil
	}
	return q, nil
}

func (f *fakeFAQs) ListByBranch(_ context.Context, branchID string) ([]*entity.FAQ, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*entity.FAQ
	for _, q := range f.rows {
		if q.BranchID == branchID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (f *fakeFAQs) Update(_ context.Context, q *entity.FAQ) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[q.ID]; !ok {
		return domain.ErrNotFound
	}
	f.rows[q.ID] = q
	return nil
}

func (f *fakeFAQs) Delete(_ context.Context, branchID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.rows[id]
	if !ok || q.BranchID != branchID {
		return domain.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeFAQs) UpdateOrderIndex(_ context.Context, branchID, id string, orderIndex int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.rows[id]
	if !ok || q.BranchID != branchID {
		return domain.ErrNotFound
	}
	q.OrderIndex = orderIndex
	return nil
}

func (f *fakeFAQs) NextOrderIndex(_ context.Context, branchID string) (int, error) {
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

// buildTestApp monta la aplicación completa con el resolver y las FAQs falsas.
func buildTestApp(resolver *fakeResolver, faqs *fakeFAQs) *fiber.App {
	app := apphttp.NewApp(apphttp.AppOptions{Name: "test", Log: zerolog.Nop()})
	apphttp.Router(app, apphttp.RouterDeps{
		Resolver:    resolver,
		FAQUC:       usecase.NewFAQUseCase(faqs),
		OfferUC:     usecase.NewOfferUseCase(nil, nil),
		ServiceName: "test",
	})
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	if strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(body, &env), string(body))
	}
	return resp, env
}

func jsonRequest(method, target string, body any) *http.Request {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión y redirecciones
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_APIAnonima_Devuelve401(t *testing.T) {
	app := buildTestApp(&fakeResolver{}, newFakeFAQs())

	resp, env := do(t, app, httptest.NewRequest(http.MethodGet, "/api/faqs", nil))

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "UNAUTHORIZED", env.Code)
	assert.Equal(t, "null", string(env.Data))
}

func TestSession_PaginaAnonima_RedirigeALogin(t *testing.T) {
	app := buildTestApp(&fakeResolver{}, newFakeFAQs())

	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, session.PathLogin, resp.Header.Get(fiber.HeaderLocation))
}

func TestSession_SinOnboarding_RedirigeAOnboarding(t *testing.T) {
	res := signedIn("")
	res.Visitor.Onboarded = false
	app := buildTestApp(&fakeResolver{res: res}, newFakeFAQs())

	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, session.PathOnboarding, resp.Header.Get(fiber.HeaderLocation))
}

func TestSession_BearerTienePrioridadSobreCookie(t *testing.T) {
	resolver := &fakeResolver{res: signedIn(testBranchID)}
	app := buildTestApp(resolver, newFakeFAQs())

	req := httptest.NewRequest(http.MethodGet, "/api/faqs", nil)
	req.Header.Set("Authorization", "Bearer desde-header")
	req.AddCookie(&http.Cookie{Name: apphttp.CookieSession, Value: "desde-cookie"})
	req.AddCookie(&http.Cookie{Name: apphttp.CookieBranch, Value: testBranchID})
	resp, _ := do(t, app, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "desde-header", resolver.gotToken)
	assert.Equal(t, testBranchID, resolver.gotBranch)
}

func TestSession_SucursalAjena_LimpiaCookieYResponde403(t *testing.T) {
	res := signedIn("")
	res.StaleBranch = true
	app := buildTestApp(&fakeResolver{res: res}, newFakeFAQs())

	req := httptest.NewRequest(http.MethodGet, "/api/faqs", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.CookieBranch, Value: "00000000-0000-0000-0000-0000000000b2"})
	resp, env := do(t, app, req)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "NO_BRANCH", env.Code)
	cleared := findCookie(resp, apphttp.CookieBranch)
	require.NotNil(t, cleared, "la cookie de sucursal debe limpiarse")
	assert.Empty(t, cleared.Value)
}

func TestSession_FalloDelResolver_Devuelve502(t *testing.T) {
	resolver := &fakeResolver{err: errors.Join(domain.ErrUpstream, errors.New("db caída"))}
	app := buildTestApp(resolver, newFakeFAQs())

	resp, env := do(t, app, httptest.NewRequest(http.MethodGet, "/api/faqs", nil))

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "UPSTREAM", env.Code)
}

func TestLogout_LimpiaAmbasCookies(t *testing.T) {
	app := buildTestApp(&fakeResolver{res: signedIn(testBranchID)}, newFakeFAQs())

	resp, env := do(t, app, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
	for _, name := range []string{apphttp.CookieSession, apphttp.CookieBranch} {
		c := findCookie(resp, name)
		require.NotNil(t, c, name)
		assert.Empty(t, c.Value, name)
	}
}

func TestMe_SinSesion_Devuelve401(t *testing.T) {
	app := buildTestApp(&fakeResolver{}, newFakeFAQs())

	resp, env := do(t, app, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", env.Code)
}

func TestInvites_CrearSinSesionConBarraFinal_Devuelve401(t *testing.T) {
	app := buildTestApp(&fakeResolver{}, newFakeFAQs())

	resp, env := do(t, app, jsonRequest(http.MethodPost, "/api/invites/", dto.CreateInviteRequest{Email: "nuevo@example.com"}))

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", env.Code)
}

func TestHealth(t *testing.T) {
	app := buildTestApp(&fakeResolver{}, newFakeFAQs())

	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Handlers
// ──────────────────────────────────────────────────────────────────────────────

func TestFAQs_CrearYListar(t *testing.T) {
	app := buildTestApp(&fakeResolver{res: signedIn(testBranchID)}, newFakeFAQs())

	resp, env := do(t, app, jsonRequest(http.MethodPost, "/api/faqs", dto.CreateFAQRequest{Question: "¿Abren domingos?", Answer: "Sí"}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)

	resp, env = do(t, app, httptest.NewRequest(http.MethodGet, "/api/faqs", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.FAQResponse
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "¿Abren domingos?", list[0].Question)
	assert.Equal(t, testBranchID, list[0].BranchID)
}

func TestFAQs_CuerpoInvalido_Devuelve400(t *testing.T) {
	app := buildTestApp(&fakeResolver{res: signedIn(testBranchID)}, newFakeFAQs())

	resp, env := do(t, app, jsonRequest(http.MethodPost, "/api/faqs", dto.CreateFAQRequest{Answer: "sin pregunta"}))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", env.Code)
}

func TestFAQs_IDNoUUID_Devuelve404(t *testing.T) {
	app := buildTestApp(&fakeResolver{res: signedIn(testBranchID)}, newFakeFAQs())

	resp, env := do(t, app, httptest.NewRequest(http.MethodDelete, "/api/faqs/123", nil))

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", env.Code)
}

func TestFAQs_BorrarInexistente_Devuelve404(t *testing.T) {
	app := buildTestApp(&fakeResolver{res: signedIn(testBranchID)}, newFakeFAQs())

	resp, env := do(t, app, httptest.NewRequest(http.MethodDelete, "/api/faqs/"+faqMissing, nil))

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", env.Code)
}

func TestFAQs_ReordenParcial_DevuelveErrorConResultado(t *testing.T) {
	faqs := newFakeFAQs(&entity.FAQ{ID: faqA, BranchID: testBranchID, Question: "q", Answer: "a"})
	app := buildTestApp(&fakeResolver{res: signedIn(testBranchID)}, faqs)

	resp, env := do(t, app, jsonRequest(http.MethodPut, "/api/faqs/reorder", dto.ReorderRequest{Items: []dto.ReorderItem{
		{ID: faqA, OrderIndex: 3},
		{ID: faqMissing, OrderIndex: 1},
	}}))

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
	var res dto.ReorderResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, []string{faqMissing}, res.Failed)
	// el par válido queda aplicado
	assert.Equal(t, 3, faqs.rows[faqA].OrderIndex)
}

func TestFAQs_FalloDeBaseDeDatos_Devuelve502SinDetalle(t *testing.T) {
	faqs := newFakeFAQs()
	faqs.listErr = fmt.Errorf("%w: list faqs: %w", domain.ErrUpstream, errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	app := buildTestApp(&fakeResolver{res: signedIn(testBranchID)}, faqs)

	resp, env := do(t, app, httptest.NewRequest(http.MethodGet, "/api/faqs", nil))

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "UPSTREAM", env.Code)
	assert.NotContains(t, env.Message, "10.0.0.5")
}

func TestOffers_SinImagen_Devuelve400(t *testing.T) {
	app := buildTestApp(&fakeResolver{res: signedIn(testBranchID)}, newFakeFAQs())

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("title", "2x1 en limonadas"))
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/offers", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())

	resp, env := do(t, app, req)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", env.Code)
	assert.Contains(t, env.Message, "image")
}

func TestAPI_RutaDesconocida_Devuelve404JSON(t *testing.T) {
	app := buildTestApp(&fakeResolver{res: signedIn(testBranchID)}, newFakeFAQs())

	resp, env := do(t, app, httptest.NewRequest(http.MethodGet, "/api/no-existe", nil))

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", env.Code)
}

func TestParser_PrecioDecimalEnFormulario(t *testing.T) {
	app := apphttp.NewApp(apphttp.AppOptions{Name: "test", Log: zerolog.Nop()})
	app.Post("/echo", func(c *fiber.Ctx) error {
		var in dto.CreateMenuItemRequest
		if err := c.BodyParser(&in); err != nil {
			return err
		}
		return c.SendString(in.Price.String())
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("name=Bandeja&price=32000.50&category=platos"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "32000.5", string(body))
}

// ──────────────────────────────────────────────────────────────────────────────
// Traducción de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrBranchNotOwned, http.StatusForbidden, "BRANCH_NOT_OWNED"},
		{domain.ErrNoBranch, http.StatusForbidden, "NO_BRANCH"},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{domain.ErrInviteInvalid, http.StatusBadRequest, "INVITE_INVALID"},
		{domain.ErrInviteExpired, http.StatusGone, "INVITE_EXPIRED"},
		{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{domain.ErrUpstream, http.StatusBadGateway, "UPSTREAM"},
		{fmt.Errorf("%w: update offer: %w", domain.ErrUpstream, errors.New("connection refused")), http.StatusBadGateway, "UPSTREAM"},
		{errors.New("otro"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, code := apphttp.ErrorStatus(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}
