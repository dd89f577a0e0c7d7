// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/thenoetrevino/kanban/internal/config"
)

// Init configures the standard logrus logger from cfg and returns it. When
// cfg.File is empty logs go to stderr, unless forceFile is set, in which case
// they go to ~/.kanban/logs/kanban.log. The returned closer releases the log
// file, if one was opened.
func Init(cfg config.LogConfig, forceFile bool) (*log.Logger, io.Closer, error) {
	logger := log.StandardLogger()

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	path := cfg.File
	if path == "" && forceFile {
		path, err = DefaultLogPath()
		if err != nil {
			return nil, nil, err
		}
	}
	if path == "" {
		logger.SetOutput(os.Stderr)
		return logger, noopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(file)
	return logger, file, nil
}

// DefaultLogPath returns ~/.kanban/logs/kanban.log
func DefaultLogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".kanban", "logs", "kanban.log"), nil
}

type noopCloser struct{}

func (noopCloser) Close() error { return nil }
