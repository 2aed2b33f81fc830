package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophnet/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell
// a missing key apart from a zero value.
type JsonConfig struct {
	DataFile            *string `json:"data_file"`
	Backend             *string `json:"backend"`
	SQLiteDSN           *string `json:"sqlite_dsn"`
	EscapeNewlines      *bool   `json:"escape_newlines"`
	AllowSelfLinks      *bool   `json:"allow_self_links"`
	AllowDuplicateLinks *bool   `json:"allow_duplicate_links"`
	RequireAuth         *bool   `json:"require_auth"`
	LogLevel            *string `json:"log_level"`
	LogFormat           *string `json:"log_format"`
}

// parseJson overlays cfg with the file named by -c/-config. Without
// either flag it does nothing.
func parseJson(cfg *Config) error {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	jc.apply(cfg)
	return nil
}

func (jc *JsonConfig) apply(cfg *Config) {
	setIf(&cfg.DataFile, jc.DataFile)
	setIf(&cfg.Backend, jc.Backend)
	setIf(&cfg.SQLiteDSN, jc.SQLiteDSN)
	setIf(&cfg.EscapeNewlines, jc.EscapeNewlines)
	setIf(&cfg.AllowSelfLinks, jc.AllowSelfLinks)
	setIf(&cfg.AllowDuplicateLinks, jc.AllowDuplicateLinks)
	setIf(&cfg.RequireAuth, jc.RequireAuth)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
