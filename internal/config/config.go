package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port          int
	JWTSecret     string
	DatabaseURL   string
	SessionKey    string
	CORSOrigins   []string
	PlansEndpoint string
	RenderWait    time.Duration
	LogLevel      string
	SecureCookies bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "4001"))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("PORT must be a valid TCP port, got %q", os.Getenv("PORT"))
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	dbURL := getEnv("DATABASE_URL", "")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sessionKey := getEnv("SESSION_KEY", "")
	if sessionKey == "" {
		return nil, fmt.Errorf("SESSION_KEY is required (must be exactly 32 bytes)")
	}
	if len(sessionKey) != 32 {
		return nil, fmt.Errorf("SESSION_KEY must be exactly 32 bytes, got %d", len(sessionKey))
	}

	renderWait, err := time.ParseDuration(getEnv("RENDER_WAIT", "2s"))
	if err != nil {
		return nil, fmt.Errorf("RENDER_WAIT: %w", err)
	}

	origins := strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,https://cargohost.ru"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		Port:          port,
		JWTSecret:     jwtSecret,
		DatabaseURL:   dbURL,
		SessionKey:    sessionKey,
		CORSOrigins:   origins,
		PlansEndpoint: getEnv("PLANS_ENDPOINT", fmt.Sprintf("http://127.0.0.1:%d/api/plans", port)),
		RenderWait:    renderWait,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		SecureCookies: getEnv("SECURE_COOKIES", "false") == "true",
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
