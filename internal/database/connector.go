package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"flavour_fusion/internal/config"
	"flavour_fusion/internal/repository"
	"flavour_fusion/internal/repository/mongodb"
	"flavour_fusion/internal/repository/postgres"
)

// ErrUnsupportedScheme is returned when the connection string names no known store
var ErrUnsupportedScheme = errors.New("unsupported database connection scheme")

// Store is an open document store
type Store interface {
	Users() repository.UserRepository
	Recipes() repository.RecipeRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Opener opens a new Store for the given settings
type Opener func(ctx context.Context, cfg config.Database) (Store, error)

// Connector opens the store once and hands the same handle to every caller.
type Connector struct {
	cfg    config.Database
	open   Opener
	logger *slog.Logger

	mu    sync.Mutex
	store Store
}

// NewConnector builds a connector that picks the store from the URI scheme.
func NewConnector(cfg config.Database, logger *slog.Logger) *Connector {
	return NewConnectorWithOpener(cfg, OpenByScheme, logger)
}

// NewConnectorWithOpener builds a connector around a custom opener.
func NewConnectorWithOpener(cfg config.Database, open Opener, logger *slog.Logger) *Connector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Connector{cfg: cfg, open: open, logger: logger}
}

// OpenByScheme opens a MongoDB store for mongodb:// URIs and a PostgreSQL store
// for postgres:// URIs.
func OpenByScheme(ctx context.Context, cfg config.Database) (Store, error) {
	uri := strings.ToLower(cfg.URI)
	switch {
	case strings.HasPrefix(uri, "mongodb://"), strings.HasPrefix(uri, "mongodb+srv://"):
		store, err := mongodb.Open(ctx, cfg.URI, cfg.Name)
		if err != nil {
			return nil, err
		}
		return store, nil
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		store, err := postgres.Open(ctx, cfg.URI)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, ErrUnsupportedScheme
	}
}

// Connect returns the shared store, opening it on first use. A failed open is
// not remembered, so the next call tries again.
func (c *Connector) Connect(ctx context.Context) (Store, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store != nil {
		return c.store, nil
	}

	if c.cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.ConnectTimeout)
		defer cancel()
	}

	store, err := c.open(ctx, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	c.logger.Info("connected to database", slog.String("database", c.cfg.Name))
	c.store = store
	return store, nil
}

// Shutdown closes the shared store if one was opened. Calling it again is a no-op.
func (c *Connector) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store == nil {
		return nil
	}

	store := c.store
	c.store = nil
	if err := store.Close(ctx); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	c.logger.Info("database connection closed")
	return nil
}
