package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cargohost/backend/internal/catalog"
	"github.com/cargohost/backend/internal/domain"
	"github.com/cargohost/backend/internal/landing"
	"github.com/cargohost/backend/internal/service"
	"github.com/cargohost/backend/internal/session"
	"github.com/cargohost/backend/internal/view"
	log "github.com/sirupsen/logrus"
)

// StoreFactory opens the browser-local store of one request.
type StoreFactory interface {
	For(w http.ResponseWriter, r *http.Request) session.Store
}

// PageHandler serves the landing page and its login/logout form posts.
type PageHandler struct {
	plans      catalog.Fetcher
	stores     StoreFactory
	auth       Authenticator
	renderWait time.Duration
}

// NewPageHandler creates a new PageHandler. renderWait bounds how long a page
// waits for the plan list before rendering the loading placeholder.
func NewPageHandler(plans catalog.Fetcher, stores StoreFactory, auth Authenticator, renderWait time.Duration) *PageHandler {
	return &PageHandler{plans: plans, stores: stores, auth: auth, renderWait: renderWait}
}

// Index handles GET /.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r)
	sess := h.restore(w, r, logger)

	q := r.URL.Query()
	st := landing.State{
		Session: sess,
		Catalog: h.loadPlans(r, logger),
		Dialog: landing.Dialog{
			Open:     q.Get("login") != "" && !sess.LoggedIn(),
			Register: q.Get("register") != "",
		},
	}
	st.Selection.Select(q.Get("plan"))

	h.render(w, r, http.StatusOK, st)
}

// Login handles POST /login from the login dialog.
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, false, func(ctx context.Context) (*domain.AuthResponse, error) {
		return h.auth.Login(ctx, &domain.LoginRequest{
			Email:    r.PostFormValue("email"),
			Password: r.PostFormValue("password"),
		})
	})
}

// Register handles POST /register from the registration dialog.
func (h *PageHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, true, func(ctx context.Context) (*domain.AuthResponse, error) {
		return h.auth.Register(ctx, &domain.RegisterRequest{
			Email:    r.PostFormValue("email"),
			Password: r.PostFormValue("password"),
			FullName: r.PostFormValue("full_name"),
		})
	})
}

// Logout handles POST /logout. Only the browser-side session is cleared.
func (h *PageHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session.New(h.stores.For(w, r), requestLogger(r)).Logout()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PageHandler) submit(w http.ResponseWriter, r *http.Request, register bool,
	call func(ctx context.Context) (*domain.AuthResponse, error)) {
	logger := requestLogger(r)

	if err := r.ParseForm(); err != nil {
		h.renderDialog(w, r, http.StatusBadRequest, register, "Некорректная форма")
		return
	}
	if strings.TrimSpace(r.PostFormValue("email")) == "" || r.PostFormValue("password") == "" {
		h.renderDialog(w, r, http.StatusBadRequest, register, service.MsgCredentialsRequired)
		return
	}

	resp, err := call(r.Context())
	if err != nil {
		status, msg := http.StatusInternalServerError, "Сервис временно недоступен, попробуйте позже"
		if appErr, ok := domain.AsAppError(err); ok && appErr.Code < http.StatusInternalServerError {
			status, msg = appErr.Code, appErr.Message
		} else {
			logger.WithError(err).Error("auth form submission failed")
		}
		h.renderDialog(w, r, status, register, msg)
		return
	}

	if err := session.New(h.stores.For(w, r), logger).Login(resp.User); err != nil {
		logger.WithError(err).Error("failed to store session")
		h.renderDialog(w, r, http.StatusInternalServerError, register, "Не удалось сохранить сессию")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderDialog re-renders the page with the dialog open and an error shown.
func (h *PageHandler) renderDialog(w http.ResponseWriter, r *http.Request, status int, register bool, msg string) {
	logger := requestLogger(r)
	sess := h.restore(w, r, logger)

	h.render(w, r, status, landing.State{
		Session: sess,
		Catalog: h.loadPlans(r, logger),
		Dialog:  landing.Dialog{Open: true, Register: register, Error: msg},
	})
}

// loadPlans runs one catalog load for the page, waiting at most renderWait.
// A load still pending at that point is cancelled and the page shows the
// loading placeholder.
func (h *PageHandler) loadPlans(r *http.Request, logger log.FieldLogger) catalog.Snapshot {
	cat := catalog.New(h.plans, logger)
	defer cat.Close()
	cat.Start(r.Context())

	wait, cancel := context.WithTimeout(r.Context(), h.renderWait)
	defer cancel()
	if !cat.Wait(wait) {
		logger.Debug("plans still loading at render time")
	}
	return cat.Snapshot()
}

func (h *PageHandler) restore(w http.ResponseWriter, r *http.Request, logger log.FieldLogger) *session.Session {
	sess := session.New(h.stores.For(w, r), logger)
	if res := sess.Restore(); res.Err == nil {
		logger.WithField("user_id", res.User.ID).Debug("session restored")
	} else if errors.Is(res.Err, session.ErrNoSession) {
		logger.Debug("no stored session")
	}
	return sess
}

// render writes the page only once it has rendered completely, so a render
// error can still become a 500.
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, st landing.State) {
	var buf bytes.Buffer
	if err := view.Index(st).Render(&buf); err != nil {
		requestLogger(r).WithError(err).Error("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		requestLogger(r).WithError(err).Debug("client went away during write")
	}
}
