package main

import (
	"net/http"

	"github.com/cargohost/backend/internal/handler"
	appMiddleware "github.com/cargohost/backend/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// routes holds everything the router mounts.
type routes struct {
	corsOrigins []string

	health *handler.HealthHandler
	plans  *handler.PlansHandler
	auth   *handler.AuthHandler
	page   *handler.PageHandler

	verifier appMiddleware.TokenVerifier
	globalRL *appMiddleware.RateLimiter
	authRL   *appMiddleware.RateLimiter
}

func newRouter(rt routes) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(appMiddleware.RequestID)
	r.Use(appMiddleware.Recovery)
	r.Use(appMiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", appMiddleware.RequestIDHeader},
		ExposedHeaders:   []string{appMiddleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.MethodNotAllowed(handler.MethodNotAllowed)

	// Every page load fetches this from loopback, so a per-IP limit would
	// put all visitors in one bucket.
	r.Get("/api/plans", rt.plans.List)

	r.Group(func(r chi.Router) {
		r.Use(rt.globalRL.Middleware())

		r.Get("/health", rt.health.Check)
		r.Get("/", rt.page.Index)
		r.Post("/logout", rt.page.Logout)

		// Credential endpoints
		r.Group(func(r chi.Router) {
			r.Use(rt.authRL.Middleware())
			r.Post("/api/auth", rt.auth.Handle)
			r.Post("/api/auth/login", rt.auth.Login)
			r.Post("/login", rt.page.Login)
			r.Post("/register", rt.page.Register)
		})

		// Protected API routes
		r.Group(func(r chi.Router) {
			r.Use(appMiddleware.Auth(rt.verifier))
			r.Post("/api/auth/logout", rt.auth.Logout)
			r.Get("/api/auth/me", rt.auth.Me)
		})
	})

	return r
}
