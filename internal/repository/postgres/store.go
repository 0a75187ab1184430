package postgres

import (
	"context"
	"fmt"

	"flavour_fusion/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the subset of *pgxpool.Pool used by the repositories
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Store keeps users and recipes as JSONB documents in PostgreSQL
type Store struct {
	pool    Pool
	users   *UserRepository
	recipes *RecipeRepository
}

// Open creates a connection pool, pings the server and applies the schema.
func Open(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	store := NewStore(pool)
	if err := store.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

// NewStore wraps an existing pool
func NewStore(pool Pool) *Store {
	return &Store{
		pool:    pool,
		users:   NewUserRepository(pool),
		recipes: NewRecipeRepository(pool),
	}
}

// Users returns the user repository
func (s *Store) Users() repository.UserRepository {
	return s.users
}

// Recipes returns the recipe repository
func (s *Store) Recipes() repository.RecipeRepository {
	return s.recipes
}

// Ping checks the pool can reach the server
func (s *Store) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping postgres: %w", err)
	}
	return nil
}

// Close releases every pooled connection
func (s *Store) Close(context.Context) error {
	s.pool.Close()
	return nil
}

// Migrate creates the document tables if they don't exist
func (s *Store) Migrate(ctx context.Context) error {
	sql := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		doc JSONB NOT NULL
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users ((doc->>'email'));

	CREATE TABLE IF NOT EXISTS recipes (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		doc JSONB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_recipes_seq ON recipes (seq);
	`
	if _, err := s.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}
	return nil
}
