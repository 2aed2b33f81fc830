package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophnet/internal/flagx"
)

var (
	valueFlags = []string{"-f", "-b", "-d", "-l", "-lf"}
	boolFlags  = []string{"-e", "-self", "-dup", "-auth", "-h", "-help"}
)

// parseFlags overlays cfg with command-line flags. Arguments it does not
// own (for example -c, or the test runner's flags) are filtered out first.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgsWithBools(os.Args[1:], valueFlags, boolFlags)

	fs := flag.NewFlagSet("gophnet", flag.ContinueOnError)

	fs.StringVar(&cfg.DataFile, "f", cfg.DataFile, "flat data file")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (file|sqlite)")
	fs.StringVar(&cfg.SQLiteDSN, "d", cfg.SQLiteDSN, "sqlite database DSN")
	fs.BoolVar(&cfg.EscapeNewlines, "e", cfg.EscapeNewlines, "escape line breaks in posts")
	fs.BoolVar(&cfg.AllowSelfLinks, "self", cfg.AllowSelfLinks, "allow befriending yourself")
	fs.BoolVar(&cfg.AllowDuplicateLinks, "dup", cfg.AllowDuplicateLinks, "allow linking a pair twice")
	fs.BoolVar(&cfg.RequireAuth, "auth", cfg.RequireAuth, "require password to add friends and post")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "lf", cfg.LogFormat, "log format (text|json)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
