// Package storage defines where a network lives between runs and opens
// the backend selected by config.
package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophnet/internal/codec"
	"github.com/dmitrijs2005/gophnet/internal/common"
	"github.com/dmitrijs2005/gophnet/internal/config"
	"github.com/dmitrijs2005/gophnet/internal/graph"
	"github.com/dmitrijs2005/gophnet/internal/logging"
	"github.com/dmitrijs2005/gophnet/internal/storage/file"
	"github.com/dmitrijs2005/gophnet/internal/storage/sqlite"
)

// Repository loads a whole store at startup and saves it at shutdown.
type Repository interface {
	// Load returns the persisted store, or an empty one when nothing has
	// been persisted yet.
	Load(ctx context.Context) (*graph.Store, error)

	// Save replaces the persisted state with s.
	Save(ctx context.Context, s *graph.Store) error

	// Close releases backend resources.
	Close() error
}

var (
	_ Repository = (*file.Repository)(nil)
	_ Repository = (*sqlite.Repository)(nil)
)

// Open returns the backend named by cfg.Backend.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (Repository, error) {
	opts := cfg.StoreOptions()

	switch cfg.Backend {
	case config.BackendFile:
		c := codec.New(codec.WithEscaping(cfg.EscapeNewlines))
		return file.NewRepository(cfg.DataFile, c, log, opts...), nil
	case config.BackendSQLite:
		return sqlite.Open(ctx, cfg.SQLiteDSN, log, opts...)
	default:
		return nil, fmt.Errorf("open storage: %w: %q", common.ErrUnknownBackend, cfg.Backend)
	}
}
