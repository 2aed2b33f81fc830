package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New builds a Logger for the given level name (debug, info, warn, error)
// and format. Text output goes through slog, JSON output through zap.
func New(w io.Writer, level, format string) (Logger, error) {
	level = strings.ToLower(strings.TrimSpace(level))

	switch format {
	case FormatText, "":
		var l slog.Level
		if err := l.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		return NewTextLogger(w, l), nil
	case FormatJSON:
		l, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		return NewJSONLogger(w, l), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewTextLogger(io.Discard, slog.LevelError+1)
}
