package ui

import (
	"strings"
	"testing"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("BOT_DARK_MODE", "1")
	dark := DetectTheme()
	if !dark.IsDark {
		t.Fatalf("expected dark theme when BOT_DARK_MODE=1")
	}

	t.Setenv("BOT_DARK_MODE", "")
	light := DetectTheme()
	if light.IsDark {
		t.Fatalf("expected light theme when BOT_DARK_MODE is unset")
	}

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme for COLORFGBG=15;0")
	}
}

func TestThemeFor(t *testing.T) {
	t.Setenv("BOT_DARK_MODE", "")
	t.Setenv("COLORFGBG", "")

	if !ThemeFor("dark").IsDark {
		t.Error("expected dark theme")
	}
	if ThemeFor("light").IsDark {
		t.Error("expected light theme")
	}
	if ThemeFor("").IsDark {
		t.Error("expected detected light theme")
	}
}

func TestRenderDivider(t *testing.T) {
	s := NewStyles(LightTheme())
	if got := s.RenderDivider(5); strings.Count(got, "─") != 5 {
		t.Errorf("expected 5 divider runes, got %q", got)
	}
	if got := s.RenderDivider(0); strings.Count(got, "─") != 1 {
		t.Errorf("expected width clamped to 1, got %q", got)
	}
}

func TestNewStyles_FollowsTheme(t *testing.T) {
	dark := DarkTheme()
	s := NewStyles(dark)
	if s.Prompt.GetForeground() != dark.Accent {
		t.Errorf("expected prompt in accent color %v, got %v", dark.Accent, s.Prompt.GetForeground())
	}
	if s.Header.GetForeground() != dark.Primary {
		t.Errorf("expected header in primary color %v, got %v", dark.Primary, s.Header.GetForeground())
	}
}
