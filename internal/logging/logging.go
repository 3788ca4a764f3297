// Package logging builds charmbracelet loggers from configuration.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// New returns a logger writing to cfg.File, or to fallback when no file is set.
// Pass io.Discard as fallback for frontends that own the terminal. The returned
// closer releases the log file and is never nil.
func New(cfg config.LogConfig, prefix string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: invalid level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	w := fallback
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		path, err := config.ExpandHome(cfg.File)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open log file: %w", err)
		}
		w, closer = f, f
	}
	if w == nil {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
