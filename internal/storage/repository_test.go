package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophnet/internal/common"
	"github.com/dmitrijs2005/gophnet/internal/config"
	"github.com/dmitrijs2005/gophnet/internal/logging"
	"github.com/dmitrijs2005/gophnet/internal/storage/file"
	"github.com/dmitrijs2005/gophnet/internal/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataFile = filepath.Join(t.TempDir(), "socialnetwork.txt")
	cfg.SQLiteDSN = ":memory:"
	return cfg
}

func TestOpen_Backends(t *testing.T) {
	ctx := context.Background()

	cfg := testConfig(t)
	r, err := Open(ctx, cfg, logging.Nop())
	require.NoError(t, err)
	assert.IsType(t, &file.Repository{}, r)
	require.NoError(t, r.Close())

	cfg.Backend = config.BackendSQLite
	r, err = Open(ctx, cfg, logging.Nop())
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Repository{}, r)
	require.NoError(t, r.Close())

	cfg.Backend = "tape"
	_, err = Open(ctx, cfg, logging.Nop())
	require.ErrorIs(t, err, common.ErrUnknownBackend)
}

func TestOpen_PassesLinkPolicy(t *testing.T) {
	for _, backend := range []string{config.BackendFile, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Backend = backend
			cfg.AllowSelfLinks = false

			r, err := Open(context.Background(), cfg, logging.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = r.Close() })

			s, err := r.Load(context.Background())
			require.NoError(t, err)
			assert.False(t, s.Policy().AllowSelfLinks)
		})
	}
}
