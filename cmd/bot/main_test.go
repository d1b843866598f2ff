package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"addressbook/internal/config"
	"addressbook/internal/contacts"
	"addressbook/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestBootstrap_Defaults(t *testing.T) {
	ws := t.TempDir()

	s, err := bootstrap(ws, "", false, "")
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, config.DefaultPath(ws), s.configPath)
	assert.Equal(t, 7, s.cfg.Birthdays.WindowDays)
	assert.NoDirExists(t, logging.LogsDir(ws))
}

func TestBootstrap_VerboseWritesLog(t *testing.T) {
	ws := t.TempDir()

	s, err := bootstrap(ws, "", true, "dark")
	require.NoError(t, err)
	assert.True(t, s.styles.Theme.IsDark)
	assert.Equal(t, "Contact added.", s.bot.Execute("add Ann 1111111111").Text)
	require.NoError(t, s.Close())

	data, err := os.ReadFile(filepath.Join(logging.LogsDir(ws), "bot.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
	assert.Contains(t, string(data), "command ok")
}

func TestBootstrap_InvalidTheme(t *testing.T) {
	_, err := bootstrap(t.TempDir(), "", false, "neon")
	assert.Error(t, err)
}

func TestBootstrap_InvalidConfig(t *testing.T) {
	ws := t.TempDir()
	path := config.DefaultPath(ws)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("birthdays:\n  window_days: -3\n"), 0644))

	_, err := bootstrap(ws, "", false, "")
	assert.Error(t, err)
}

func TestSession_OnConfigChange(t *testing.T) {
	s, err := bootstrap(t.TempDir(), "", false, "")
	require.NoError(t, err)
	defer s.Close()

	soon := time.Now().AddDate(0, 0, 10)
	if soon.Month() == time.February && soon.Day() == 29 {
		t.Skip("leap day lands inside the window")
	}
	birthday := time.Date(1990, soon.Month(), soon.Day(), 0, 0, 0, 0, time.UTC).Format(contacts.DateLayout)

	s.bot.Execute("add Ann 1111111111")
	s.bot.Execute("add-birthday Ann " + birthday)
	assert.Equal(t, "No upcoming birthdays.", s.bot.Execute("birthdays").Text)

	cfg := config.DefaultConfig()
	cfg.Birthdays.WindowDays = 14
	s.onConfigChange(cfg)

	assert.Contains(t, s.bot.Execute("birthdays").Text, "Ann: ")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "bot dev\n", out.String())
}

func TestSession_ReloadDisablesCommandLogging(t *testing.T) {
	ws := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Logging.DebugMode = true
	cfg.Logging.Level = "debug"
	cfg.Logging.Categories = map[string]bool{"commands": true}
	require.NoError(t, cfg.Save(config.DefaultPath(ws)))

	s, err := bootstrap(ws, "", false, "")
	require.NoError(t, err)
	s.bot.Execute("add Ann 1111111111")

	reloaded := config.DefaultConfig()
	reloaded.Logging.Level = "debug"
	reloaded.Logging.Categories = map[string]bool{"commands": false}
	s.onConfigChange(reloaded)
	s.bot.Execute("add Bob 2222222222")
	require.NoError(t, s.Close())

	data, err := os.ReadFile(filepath.Join(logging.LogsDir(ws), "bot.log"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "command ok"), string(data))
}

func TestSession_ReloadKeepsVerboseLevel(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, config.DefaultConfig().Save(config.DefaultPath(ws)))

	s, err := bootstrap(ws, "", true, "")
	require.NoError(t, err)
	defer s.Close()
	require.Equal(t, zapcore.DebugLevel, s.logger.Level())

	cfg, err := config.Load(s.configPath)
	require.NoError(t, err)
	s.onConfigChange(cfg)

	assert.Equal(t, zapcore.DebugLevel, s.logger.Level())
}
