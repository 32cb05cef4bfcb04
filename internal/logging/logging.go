// Package logging manages the application logger lifecycle: a bootstrap
// stderr logger available before configuration loads, upgraded to a fanout
// of stderr text plus a rotating JSON log file once config is known.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Manager handles logger lifecycle including the bootstrap-to-full
// transition. Components obtain a logger via Logger and keep it; the
// underlying handler is swapped in place.
type Manager struct {
	handler  *SwappableHandler
	logger   *slog.Logger
	fileSink *lumberjack.Logger
	level    *slog.LevelVar
	mu       sync.Mutex
}

// NewManager creates a logging manager in bootstrap mode: text to stderr
// only. Call Upgrade once configuration is available.
func NewManager() *Manager {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)

	opts := &slog.HandlerOptions{Level: level}
	bootstrap := slog.NewTextHandler(os.Stderr, opts)

	handler := NewSwappableHandler(bootstrap)

	return &Manager{
		handler: handler,
		logger:  slog.New(handler),
		level:   level,
	}
}

// Logger returns the current logger instance. The returned logger is
// stable across Upgrade calls.
func (m *Manager) Logger() *slog.Logger {
	return m.logger
}

// Upgrade transitions from bootstrap mode to full mode: stderr text plus
// JSON to a size-rotated log file.
func (m *Manager) Upgrade(logFilePath string, level slog.Level) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir := filepath.Dir(logFilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory %q; %w", dir, err)
	}

	if m.fileSink != nil {
		_ = m.fileSink.Close()
	}
	m.fileSink = &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	m.level.Set(level)

	opts := &slog.HandlerOptions{Level: m.level}
	m.handler.Swap(slogmulti.Fanout(
		slog.NewTextHandler(os.Stderr, opts),
		slog.NewJSONHandler(m.fileSink, opts),
	))

	return nil
}

// SetLevel changes the log level at runtime.
func (m *Manager) SetLevel(level slog.Level) {
	m.level.Set(level)
}

// Close shuts down the logger, closing the file sink if open.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fileSink != nil {
		err := m.fileSink.Close()
		m.fileSink = nil
		return err
	}
	return nil
}
