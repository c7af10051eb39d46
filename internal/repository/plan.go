package repository

import (
	"context"
	"fmt"

	"github.com/cargohost/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PlanRepository handles database operations for hosting plans.
type PlanRepository struct {
	db *pgxpool.Pool
}

// NewPlanRepository creates a new PlanRepository.
func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{db: db}
}

const planColumns = `id, name, slug, price::text, max_players, ram_gb, cpu_cores,
	storage_gb, has_ddos_protection, support_level, features, is_popular, is_active`

// ListActive returns every active plan, cheapest first.
func (r *PlanRepository) ListActive(ctx context.Context) ([]domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE is_active = true ORDER BY price ASC, id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	plans := []domain.Plan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plans: %w", err)
	}
	return plans, nil
}

// Create inserts a plan and fills in its ID.
func (r *PlanRepository) Create(ctx context.Context, p *domain.Plan) error {
	query := `
		INSERT INTO plans (name, slug, price, max_players, ram_gb, cpu_cores, storage_gb,
			has_ddos_protection, support_level, features, is_popular, is_active)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		p.Name, p.Slug, p.Price, p.MaxPlayers, p.RAMGB, p.CPUCores, p.StorageGB,
		p.HasDDoSProtection, p.SupportLevel, p.Features, p.IsPopular, p.IsActive,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create plan %s: %w", p.Slug, err)
	}
	return nil
}

// Count returns the number of plan rows, active or not.
func (r *PlanRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM plans`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count plans: %w", err)
	}
	return n, nil
}

func scanPlan(rows pgx.Rows) (domain.Plan, error) {
	var p domain.Plan
	err := rows.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Price, &p.MaxPlayers, &p.RAMGB, &p.CPUCores,
		&p.StorageGB, &p.HasDDoSProtection, &p.SupportLevel, &p.Features, &p.IsPopular, &p.IsActive,
	)
	if err != nil {
		return p, fmt.Errorf("failed to scan plan row: %w", err)
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	return p, nil
}
