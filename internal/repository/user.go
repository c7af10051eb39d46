package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cargohost/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository handles database operations for user accounts.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new account and fills in its ID and creation time.
func (r *UserRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `
		INSERT INTO users (email, password_hash, full_name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, a.Email, a.PasswordHash, a.FullName).Scan(&a.ID, &a.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("failed to create user: %w", domain.ErrEmailTaken)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail returns an account by email address, ignoring case, or nil when
// none exists.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT id, email, password_hash, full_name, created_at
		FROM users WHERE lower(email) = lower($1)
	`
	return r.scanOne(ctx, query, email)
}

// FindByID returns an account by ID, or nil when none exists.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `
		SELECT id, email, password_hash, full_name, created_at
		FROM users WHERE id = $1
	`
	return r.scanOne(ctx, query, id)
}

// Exists checks if a user with the given email already exists, ignoring case.
func (r *UserRepository) Exists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))`
	var exists bool
	err := r.db.QueryRow(ctx, query, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) scanOne(ctx context.Context, query string, args ...any) (*domain.Account, error) {
	var a domain.Account
	err := r.db.QueryRow(ctx, query, args...).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.FullName, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &a, nil
}

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
