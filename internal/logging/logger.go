// Package logging provides config-driven categorized logging for the bot.
// Logs go to .bot/logs/ in the workspace and only when debug_mode is on;
// stdout belongs to the interactive session.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"addressbook/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot     Category = "boot"     // Startup and shutdown
	CategoryCommands Category = "commands" // Command dispatch and outcomes
	CategoryConfig   Category = "config"   // Config load and hot reload
	CategoryUI       Category = "ui"       // REPL and TUI events
)

// Logger hands out per-category zap loggers that share one output and one
// adjustable level.
type Logger struct {
	base  *zap.Logger
	level zap.AtomicLevel
	state *state
}

type state struct {
	mu   sync.RWMutex
	cfg  config.LoggingConfig
	file *os.File
}

// LogsDir returns the log directory of a workspace.
func LogsDir(workspace string) string {
	return filepath.Join(config.Dir(workspace), "logs")
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zap.NewNop(), level: zap.NewAtomicLevel(), state: &state{}}
}

// New builds a Logger from cfg. With debug mode off it discards everything
// and touches no files.
func New(cfg config.LoggingConfig, workspace string) (*Logger, error) {
	if !cfg.DebugMode {
		l := Nop()
		l.state.cfg = cfg
		return l, nil
	}

	level := zap.NewAtomicLevel()
	if err := setLevel(level, cfg.Level); err != nil {
		return nil, err
	}

	path := cfg.File
	if path == "" {
		path = "bot.log"
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(LogsDir(workspace), path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	core := zapcore.NewCore(buildEncoder(cfg.Format), zapcore.AddSync(file), level)
	base := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return &Logger{
		base:  base,
		level: level,
		state: &state{cfg: cfg, file: file},
	}, nil
}

func buildEncoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	if strings.EqualFold(format, "json") {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func setLevel(level zap.AtomicLevel, name string) error {
	if name == "" {
		name = "info"
	}
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	level.SetLevel(lvl)
	return nil
}

// Get returns the logger for a category. The category switch is checked on
// every entry, so loggers held across a config reload follow Apply.
func (l *Logger) Get(category Category) *zap.Logger {
	name := string(category)
	return l.base.Named(name).WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return &categoryCore{Core: c, name: name, state: l.state}
	}))
}

// categoryCore drops entries while its category is switched off.
type categoryCore struct {
	zapcore.Core
	name  string
	state *state
}

func (c *categoryCore) enabled() bool {
	c.state.mu.RLock()
	defer c.state.mu.RUnlock()
	return c.state.cfg.IsCategoryEnabled(c.name)
}

func (c *categoryCore) Enabled(lvl zapcore.Level) bool {
	return c.enabled() && c.Core.Enabled(lvl)
}

func (c *categoryCore) With(fields []zapcore.Field) zapcore.Core {
	return &categoryCore{Core: c.Core.With(fields), name: c.name, state: c.state}
}

func (c *categoryCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.enabled() {
		return ce
	}
	return c.Core.Check(ent, ce)
}

// With returns a Logger whose entries all carry fields. Output, level and
// category switches stay shared with l.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{base: l.base.With(fields...), level: l.level, state: l.state}
}

// Level returns the current minimum level.
func (l *Logger) Level() zapcore.Level { return l.level.Level() }

// Apply takes the level and category switches from a reloaded config.
// Output file, format and debug mode need a restart.
func (l *Logger) Apply(cfg config.LoggingConfig) error {
	if err := setLevel(l.level, cfg.Level); err != nil {
		return err
	}
	l.state.mu.Lock()
	l.state.cfg.Categories = cfg.Categories
	l.state.mu.Unlock()
	return nil
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	_ = l.base.Sync()
	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	if l.state.file == nil {
		return nil
	}
	err := l.state.file.Close()
	l.state.file = nil
	return err
}
