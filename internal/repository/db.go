package repository

import (
	"context"
	"fmt"

	"github.com/cargohost/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// NewDB creates a new PostgreSQL connection pool.
func NewDB(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// RunMigrations creates the plans and users tables.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS plans (
			id                  BIGSERIAL PRIMARY KEY,
			name                TEXT NOT NULL,
			slug                TEXT NOT NULL UNIQUE,
			price               NUMERIC(10, 2) NOT NULL,
			max_players         INTEGER NOT NULL,
			ram_gb              INTEGER NOT NULL,
			cpu_cores           INTEGER NOT NULL,
			storage_gb          INTEGER NOT NULL,
			has_ddos_protection BOOLEAN NOT NULL DEFAULT TRUE,
			support_level       TEXT NOT NULL DEFAULT '24/7',
			features            TEXT[] NOT NULL DEFAULT '{}',
			is_popular          BOOLEAN NOT NULL DEFAULT FALSE,
			is_active           BOOLEAN NOT NULL DEFAULT TRUE
		);
		CREATE INDEX IF NOT EXISTS idx_plans_active_price ON plans(is_active, price);

		CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			full_name     TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users(lower(email));
	`
	_, err := pool.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SeedPlans inserts the default plans when the plans table is empty.
func SeedPlans(ctx context.Context, plans *PlanRepository) error {
	n, err := plans.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, p := range domain.SeedPlans() {
		if err := plans.Create(ctx, &p); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d default plans", len(domain.SeedPlans()))
	return nil
}
