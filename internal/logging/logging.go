// Package logging builds the charmbracelet/log loggers used by the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/infinity-spectrum/internal/core"
)

// DefaultPath is where `play` appends its log while the TUI owns the terminal.
const DefaultPath = "~/.spectrum/spectrum.log"

// Prefix is shown on every log line.
const Prefix = "spectrum"

// New creates a logger writing to w at the given level name.
// An empty level means info.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	}), nil
}

// File is a logger appending to a file.
type File struct {
	*log.Logger
	f *os.File
}

// OpenFile opens path in append mode, creating parent directories, and
// writes the launch marker.
func OpenFile(path, level string) (*File, error) {
	path, err := core.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, err
	}

	logger.Info("LAUNCHING", "pid", os.Getpid())
	return &File{Logger: logger, f: f}, nil
}

// Close writes the shutdown marker and closes the file.
func (l *File) Close() error {
	l.Info("SHUTTING DOWN")
	return l.f.Close()
}
