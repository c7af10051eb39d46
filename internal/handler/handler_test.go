package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/cargohost/backend/internal/contextkeys"
	"github.com/cargohost/backend/internal/domain"
	"github.com/cargohost/backend/internal/service"
	"github.com/cargohost/backend/internal/session"
	"github.com/cargohost/backend/internal/view"
	"github.com/cargohost/backend/pkg/crypto"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPlans = []domain.Plan{
	{ID: 1, Name: "Starter", Slug: "starter", Price: "299.00", MaxPlayers: 10, RAMGB: 2, CPUCores: 1, StorageGB: 10, IsActive: true},
	{ID: 2, Name: "Premium", Slug: "premium", Price: "599.00", MaxPlayers: 30, RAMGB: 4, CPUCores: 2, StorageGB: 25, IsPopular: true, IsActive: true},
}

type fakeAuth struct {
	resp    *domain.AuthResponse
	err     error
	user    *domain.User
	lastReq interface{}
}

func (f *fakeAuth) Handle(_ context.Context, req *domain.AuthRequest) (*domain.AuthResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func (f *fakeAuth) Login(_ context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func (f *fakeAuth) Register(_ context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func (f *fakeAuth) GetUser(_ context.Context, id int64) (*domain.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, domain.ErrNotFound("user not found")
	}
	return f.user, nil
}

type fakeLister struct {
	plans []domain.Plan
	err   error
}

func (f fakeLister) ListActive(context.Context) ([]domain.Plan, error) {
	return f.plans, f.err
}

type fakeFetcher struct {
	plans []domain.Plan
	err   error
	block bool
}

func (f fakeFetcher) FetchPlans(ctx context.Context) ([]domain.Plan, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.plans, f.err
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func cookieStores(t *testing.T) *session.CookieStores {
	t.Helper()
	sealer, err := crypto.NewSealer("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	return session.NewCookieStores(sealer, false)
}

func TestPlansHandler_List(t *testing.T) {
	rec := httptest.NewRecorder()
	NewPlansHandler(fakeLister{plans: testPlans}).List(rec, httptest.NewRequest(http.MethodGet, "/api/plans", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"slug":"premium"`)
	assert.Contains(t, rec.Body.String(), `"price":"599.00"`)
}

func TestPlansHandler_ListFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	NewPlansHandler(fakeLister{err: errors.New("db down")}).List(rec, httptest.NewRequest(http.MethodGet, "/api/plans", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"plans":[]}`, rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	MethodNotAllowed(rec, httptest.NewRequest(http.MethodDelete, "/api/plans", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
}

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHealthHandler(fakePinger{}).Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NewHealthHandler(fakePinger{err: errors.New("refused")}).Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded","database":"error"}`, rec.Body.String())
}

func TestAuthHandler_Handle(t *testing.T) {
	ok := &domain.AuthResponse{Success: true, User: domain.User{ID: 1, Email: "a@b.c"}, Message: service.MsgRegistered, Token: "tok"}

	tests := []struct {
		name     string
		body     string
		auth     *fakeAuth
		wantCode int
		wantBody string
	}{
		{
			name:     "register created",
			body:     `{"action":"register","email":"a@b.c","password":"secret1"}`,
			auth:     &fakeAuth{resp: ok},
			wantCode: http.StatusCreated,
			wantBody: `"token":"tok"`,
		},
		{
			name:     "login ok",
			body:     `{"action":"login","email":"a@b.c","password":"secret1"}`,
			auth:     &fakeAuth{resp: ok},
			wantCode: http.StatusOK,
			wantBody: `"success":true`,
		},
		{
			name:     "bad credentials",
			body:     `{"action":"login","email":"a@b.c","password":"nope"}`,
			auth:     &fakeAuth{err: domain.ErrUnauthorized(service.MsgInvalidCredentials)},
			wantCode: http.StatusUnauthorized,
			wantBody: service.MsgInvalidCredentials,
		},
		{
			name:     "malformed body",
			body:     `{"action":`,
			auth:     &fakeAuth{},
			wantCode: http.StatusBadRequest,
			wantBody: "invalid JSON body",
		},
		{
			name:     "internal error hides details",
			body:     `{"action":"login","email":"a@b.c","password":"x"}`,
			auth:     &fakeAuth{err: errors.New("connection reset")},
			wantCode: http.StatusInternalServerError,
			wantBody: "internal server error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(tt.body))
			NewAuthHandler(tt.auth).Handle(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&fakeAuth{user: &domain.User{ID: 5, Email: "x@y.z"}})

	rec := httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextkeys.UserID, int64(5)))
	rec = httptest.NewRecorder()
	h.Me(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"x@y.z"`)
}

func TestPageHandler_IndexLoaded(t *testing.T) {
	h := NewPageHandler(fakeFetcher{plans: testPlans}, cookieStores(t), &fakeAuth{}, time.Second)

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/?plan=premium", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, `data-catalog="loaded"`)
	assert.Equal(t, 2, strings.Count(body, `data-plan="`))
	assert.Regexp(t, `data-plan="premium"[^>]*data-selected="true"`, body)
	assert.Contains(t, body, `data-account="logged-out"`)
	assert.NotContains(t, body, "<dialog")
}

func TestPageHandler_IndexFetchFailureShowsEmpty(t *testing.T) {
	h := NewPageHandler(fakeFetcher{err: errors.New("boom")}, cookieStores(t), &fakeAuth{}, time.Second)

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), view.EmptyText)
	assert.NotContains(t, rec.Body.String(), `data-plan="`)
}

func TestPageHandler_IndexSlowFetchShowsLoading(t *testing.T) {
	h := NewPageHandler(fakeFetcher{block: true}, cookieStores(t), &fakeAuth{}, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), view.LoadingText)
	assert.Contains(t, rec.Body.String(), `http-equiv="refresh"`)
}

func TestPageHandler_IndexOpensDialog(t *testing.T) {
	h := NewPageHandler(fakeFetcher{plans: testPlans}, cookieStores(t), &fakeAuth{}, time.Second)

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/?login=1&register=1", nil))

	assert.Contains(t, rec.Body.String(), `data-dialog="/register"`)
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestPageHandler_LoginFlow(t *testing.T) {
	stores := cookieStores(t)
	user := domain.User{ID: 9, Email: "alex@example.com", FullName: "Alex"}
	auth := &fakeAuth{resp: &domain.AuthResponse{Success: true, User: user}}
	h := NewPageHandler(fakeFetcher{plans: testPlans}, stores, auth, time.Second)

	rec := httptest.NewRecorder()
	h.Login(rec, postForm("/login", url.Values{"email": {"alex@example.com"}, "password": {"secret1"}}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, &domain.LoginRequest{Email: "alex@example.com", Password: "secret1"}, auth.lastReq)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	// the next page load restores the user from the cookie
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	page := httptest.NewRecorder()
	h.Index(page, req)
	assert.Contains(t, page.Body.String(), `data-account="logged-in"`)
	assert.Contains(t, page.Body.String(), "alex@example.com")

	// logout expires the cookie and redirects home
	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookies[0])
	out := httptest.NewRecorder()
	h.Logout(out, req)
	assert.Equal(t, http.StatusSeeOther, out.Code)
	require.Len(t, out.Result().Cookies(), 1)
	assert.Equal(t, -1, out.Result().Cookies()[0].MaxAge)
}

func TestPageHandler_LoginRejected(t *testing.T) {
	auth := &fakeAuth{err: domain.ErrUnauthorized(service.MsgInvalidCredentials)}
	h := NewPageHandler(fakeFetcher{plans: testPlans}, cookieStores(t), auth, time.Second)

	rec := httptest.NewRecorder()
	h.Login(rec, postForm("/login", url.Values{"email": {"alex@example.com"}, "password": {"wrong"}}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), service.MsgInvalidCredentials)
	assert.Contains(t, rec.Body.String(), `data-dialog="/login"`)
	assert.Empty(t, rec.Result().Cookies())
}

func TestPageHandler_FormMissingFields(t *testing.T) {
	auth := &fakeAuth{}
	h := NewPageHandler(fakeFetcher{plans: testPlans}, cookieStores(t), auth, time.Second)

	rec := httptest.NewRecorder()
	h.Register(rec, postForm("/register", url.Values{"email": {" "}}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), service.MsgCredentialsRequired)
	assert.Contains(t, rec.Body.String(), `data-dialog="/register"`)
	assert.Nil(t, auth.lastReq, "auth service must not be called")
}

func TestPageHandler_InternalErrorIsGeneric(t *testing.T) {
	auth := &fakeAuth{err: domain.ErrInternal("failed to find user", errors.New("pq: connection refused"))}
	h := NewPageHandler(fakeFetcher{plans: testPlans}, cookieStores(t), auth, time.Second)

	rec := httptest.NewRecorder()
	h.Login(rec, postForm("/login", url.Values{"email": {"a@b.c"}, "password": {"x"}}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.NotContains(t, rec.Body.String(), "failed to find user")
}

func captureLogs(t *testing.T) *logtest.Hook {
	t.Helper()
	prev := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	hook := logtest.NewLocal(log.StandardLogger())
	t.Cleanup(func() {
		log.StandardLogger().ReplaceHooks(make(log.LevelHooks))
		log.SetLevel(prev)
	})
	return hook
}

func TestPageHandler_IndexLogsRestoredSession(t *testing.T) {
	stores := cookieStores(t)
	user := domain.User{ID: 9, Email: "alex@example.com"}
	auth := &fakeAuth{resp: &domain.AuthResponse{Success: true, User: user}}
	h := NewPageHandler(fakeFetcher{plans: testPlans}, stores, auth, time.Second)

	login := httptest.NewRecorder()
	h.Login(login, postForm("/login", url.Values{"email": {"alex@example.com"}, "password": {"secret1"}}))
	require.Len(t, login.Result().Cookies(), 1)

	hook := captureLogs(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(login.Result().Cookies()[0])
	h.Index(httptest.NewRecorder(), req)

	var restored *log.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "session restored" {
			restored = e
		}
	}
	require.NotNil(t, restored)
	assert.Equal(t, log.DebugLevel, restored.Level)
	assert.Equal(t, int64(9), restored.Data["user_id"])

	hook.Reset()
	h.Index(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	messages := make([]string, 0, len(hook.AllEntries()))
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, "no stored session")
	assert.NotContains(t, messages, "session restored")
}
