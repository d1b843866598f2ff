package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"addressbook/cmd/bot/ui"
	"addressbook/internal/assistant"
	"addressbook/internal/config"
	"addressbook/internal/contacts"
	"addressbook/internal/logging"

	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// session is everything one run of the bot needs.
type session struct {
	workspace  string
	configPath string
	cfg        *config.Config
	logger     *logging.Logger
	bot        *assistant.Assistant
	styles     ui.Styles
	renderer   *glamour.TermRenderer
	flags      flagOverrides
}

// flagOverrides are command-line settings that win over the config file,
// at startup and on every reload.
type flagOverrides struct {
	verbose bool
	theme   string
}

func (f flagOverrides) apply(cfg *config.Config) {
	if f.verbose {
		cfg.Logging.DebugMode = true
		cfg.Logging.Level = "debug"
	}
	if f.theme != "" {
		cfg.UI.Theme = f.theme
	}
}

// bootstrap resolves the workspace, loads configuration and wires the
// assistant. The theme flag, when set, wins over the config file.
func bootstrap(ws, cfgPath string, verbose bool, themeName string) (*session, error) {
	if ws == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve workspace: %w", err)
		}
		ws = cwd
	}
	ws, err := filepath.Abs(ws)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace: %w", err)
	}
	if cfgPath == "" {
		cfgPath = config.DefaultPath(ws)
	}

	if err := config.LoadDotEnv(ws); err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	flags := flagOverrides{verbose: verbose, theme: themeName}
	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := logging.New(cfg.Logging, ws)
	if err != nil {
		return nil, err
	}
	logger := base.With(zap.String("session", uuid.NewString()))

	styles := ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))
	s := &session{
		workspace:  ws,
		configPath: cfgPath,
		cfg:        cfg,
		logger:     logger,
		styles:     styles,
		flags:      flags,
		renderer:   newMarkdownRenderer(styles.Theme, defaultWrap),
		bot: assistant.New(contacts.NewAddressBook(),
			assistant.WithQueryOptions(cfg.QueryOptions()),
			assistant.WithLogger(logger.Get(logging.CategoryCommands))),
	}

	logger.Get(logging.CategoryBoot).Info("session started",
		zap.String("workspace", ws),
		zap.String("config", cfgPath),
		zap.Int("birthday_window", cfg.Birthdays.WindowDays),
		zap.String("leap_day", cfg.Birthdays.LeapDay))
	return s, nil
}

func (s *session) log(category logging.Category) *zap.Logger {
	return s.logger.Get(category)
}

// onConfigChange applies a reloaded config. Theme, log file and debug mode
// are fixed for the life of the session.
func (s *session) onConfigChange(cfg *config.Config) {
	s.flags.apply(cfg)
	if err := s.logger.Apply(cfg.Logging); err != nil {
		s.log(logging.CategoryConfig).Warn("logging config not applied", zap.Error(err))
	}
	s.bot.SetOptions(cfg.QueryOptions())
}

// serve runs loop alongside the config watcher until loop returns or the
// process is interrupted.
func (s *session) serve(ctx context.Context, loop func(context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	w, err := config.NewWatcher(s.configPath, s.log(logging.CategoryConfig), s.onConfigChange)
	if err != nil {
		s.log(logging.CategoryConfig).Warn("config hot reload disabled", zap.Error(err))
	} else {
		g.Go(func() error { return w.Run(gctx) })
	}

	g.Go(func() error {
		defer cancel()
		return loop(gctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// renderPlain renders a reply for the line interface.
func (s *session) renderPlain(r assistant.Reply) string {
	if r.Markdown {
		return renderMarkdown(s.renderer, r.Text)
	}
	return r.Text
}

// Close flushes logs.
func (s *session) Close() error {
	return s.logger.Close()
}
