package config

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/gophnet/internal/common"
	"github.com/dmitrijs2005/gophnet/internal/graph"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds runtime settings for the gophnet CLI.
type Config struct {
	// DataFile is the flat file used by the file backend.
	DataFile string
	// Backend selects where the network is persisted: "file" or "sqlite".
	Backend string
	// SQLiteDSN is the database used by the sqlite backend.
	SQLiteDSN string
	// EscapeNewlines switches the flat file to the escaped post format.
	EscapeNewlines bool

	AllowSelfLinks      bool
	AllowDuplicateLinks bool

	// RequireAuth makes add-friend and post-message ask for the acting
	// user's password.
	RequireAuth bool

	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with the defaults: the flat file
// socialnetwork.txt in the working directory, permissive linking and
// warn-level text logs.
func (c *Config) LoadDefaults() {
	c.DataFile = "socialnetwork.txt"
	c.Backend = BackendFile
	c.SQLiteDSN = "socialnetwork.db"
	c.EscapeNewlines = false
	c.AllowSelfLinks = true
	c.AllowDuplicateLinks = true
	c.RequireAuth = false
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config (if any), then command-line flags. Later sources win.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values no component can act on.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile:
		if c.DataFile == "" {
			return fmt.Errorf("%w: data file must not be empty", common.ErrInvalidConfig)
		}
	case BackendSQLite:
		if c.SQLiteDSN == "" {
			return fmt.Errorf("%w: sqlite dsn must not be empty", common.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: %q", common.ErrUnknownBackend, c.Backend)
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.LogLevel) {
		return fmt.Errorf("%w: log level %q", common.ErrInvalidConfig, c.LogLevel)
	}
	if !slices.Contains([]string{"text", "json"}, c.LogFormat) {
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// StoreOptions translates the link settings into graph options.
func (c *Config) StoreOptions() []graph.Option {
	return []graph.Option{
		graph.WithSelfLinks(c.AllowSelfLinks),
		graph.WithDuplicateLinks(c.AllowDuplicateLinks),
	}
}
