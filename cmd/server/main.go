package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cargohost/backend/internal/catalog"
	"github.com/cargohost/backend/internal/config"
	"github.com/cargohost/backend/internal/handler"
	appMiddleware "github.com/cargohost/backend/internal/middleware"
	"github.com/cargohost/backend/internal/repository"
	"github.com/cargohost/backend/internal/service"
	"github.com/cargohost/backend/internal/session"
	"github.com/cargohost/backend/pkg/crypto"
	log "github.com/sirupsen/logrus"
	"github.com/subosito/gotenv"
)

func main() {
	// Load .env file if present (for local development)
	if err := gotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("❌ .env error: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("❌ Config error: LOG_LEVEL: %v", err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	ctx := context.Background()

	db, err := repository.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database error: %v", err)
	}
	defer db.Close()

	if err := repository.RunMigrations(ctx, db); err != nil {
		log.Fatalf("❌ Migration error: %v", err)
	}

	planRepo := repository.NewPlanRepository(db)
	if err := repository.SeedPlans(ctx, planRepo); err != nil {
		log.Fatalf("❌ Seed error: %v", err)
	}
	log.Println("✅ Database connected & migrated")

	sealer, err := crypto.NewSealer(cfg.SessionKey)
	if err != nil {
		log.Fatalf("❌ Session key error: %v", err)
	}

	// Services
	userRepo := repository.NewUserRepository(db)
	authSvc := service.NewAuthService(cfg.JWTSecret, userRepo)
	planSvc := service.NewPlanService(planRepo)

	// Handlers
	fetcher := catalog.NewHTTPFetcher(cfg.PlansEndpoint, nil)
	stores := session.NewCookieStores(sealer, cfg.SecureCookies)

	// Global rate limiter (20 req/sec per IP, burst of 40)
	globalRL := appMiddleware.NewRateLimiter(20, 40)
	defer globalRL.Close()
	authRL := appMiddleware.StrictRateLimiter()
	defer authRL.Close()

	router := newRouter(routes{
		corsOrigins: cfg.CORSOrigins,
		health:      handler.NewHealthHandler(db),
		plans:       handler.NewPlansHandler(planSvc),
		auth:        handler.NewAuthHandler(authSvc),
		page:        handler.NewPageHandler(fetcher, stores, authSvc, cfg.RenderWait),
		verifier:    authSvc,
		globalRL:    globalRL,
		authRL:      authRL,
	})

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("🛑 Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.WithError(err).Warn("graceful shutdown incomplete")
		}
	}()

	log.WithField("plans_endpoint", fetcher.URL()).Printf("🚀 CargoHost listening at http://%s", addr)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("❌ Server error: %v", err)
	}
	<-shutdownDone
}
