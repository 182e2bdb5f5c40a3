// Package logging builds the diagnostic logger. The terminal belongs to the
// TUI, so output goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jask/jaskfx/internal/config"
)

// New opens the configured log file and returns a logger plus a closer for it.
func New(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	w, closer, err := open(cfg.Path)
	if err != nil {
		return nil, nil, err
	}
	return NewWithWriter(w, cfg), closer, nil
}

// NewWithWriter builds a logger on an existing writer.
func NewWithWriter(w io.Writer, cfg config.LogConfig) *log.Logger {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}

	formatter := log.TextFormatter
	if cfg.Format == "json" {
		formatter = log.JSONFormatter
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           level,
		Prefix:          "jaskfx",
		Formatter:       formatter,
	})
	logger.SetStyles(styles())
	return logger
}

func open(path string) (io.Writer, io.Closer, error) {
	if path == "" || path == "-" {
		return io.Discard, nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func styles() *log.Styles {
	s := log.DefaultStyles()
	errColor := lipgloss.Color("#f38ba8")
	warnColor := lipgloss.Color("#f9e2af")
	infoColor := lipgloss.Color("#94e2d5")

	s.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERROR").Bold(true).Foreground(errColor)
	s.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARN").Bold(true).Foreground(warnColor)
	s.Levels[log.InfoLevel] = lipgloss.NewStyle().SetString("INFO").Bold(true).Foreground(infoColor)
	s.Keys["err"] = lipgloss.NewStyle().Foreground(errColor)
	s.Values["err"] = lipgloss.NewStyle().Bold(true)
	return s
}
