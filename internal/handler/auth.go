package handler

import (
	"context"
	"net/http"

	"github.com/cargohost/backend/internal/contextkeys"
	"github.com/cargohost/backend/internal/domain"
)

// Authenticator is the auth service as the HTTP layer sees it.
type Authenticator interface {
	Handle(ctx context.Context, req *domain.AuthRequest) (*domain.AuthResponse, error)
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error)
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

// AuthHandler handles authentication HTTP endpoints.
type AuthHandler struct {
	auth Authenticator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Handle handles POST /api/auth, dispatching on the body's action field.
func (h *AuthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req domain.AuthRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	resp, err := h.auth.Handle(r.Context(), &req)
	if err != nil {
		Error(w, err)
		return
	}

	status := http.StatusOK
	if req.Action == domain.ActionRegister {
		status = http.StatusCreated
	}
	JSON(w, status, resp)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	resp, err := h.auth.Login(r.Context(), &req)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, resp)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(contextkeys.UserID).(int64)
	if !ok {
		Error(w, domain.ErrUnauthorized("unauthorized"))
		return
	}

	user, err := h.auth.GetUser(r.Context(), userID)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{"success": true, "user": user})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so the client
// just discards its copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
