package ui

import (
	"testing"

	"github.com/chris-regnier/diary/internal/config"
)

func TestResolveThemeDefaultDark(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "default-dark"})

	if string(theme.Primary) == "" {
		t.Error("expected primary color to be set")
	}
	if theme.MarkdownStyle != "dark" {
		t.Errorf("expected markdown_style 'dark', got %q", theme.MarkdownStyle)
	}
}

func TestResolveThemeUnknownPresetFallsBack(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "nope"})
	if theme != presets["default-dark"] {
		t.Errorf("expected default-dark fallback, got %+v", theme)
	}
}

func TestResolveThemeOverrides(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{
		Preset:        "default-light",
		Accent:        "#FF0000",
		MarkdownStyle: "notty",
	})

	if string(theme.Accent) != "#FF0000" {
		t.Errorf("expected accent '#FF0000', got %q", string(theme.Accent))
	}
	if theme.MarkdownStyle != "notty" {
		t.Errorf("expected markdown_style 'notty', got %q", theme.MarkdownStyle)
	}
	if theme.Danger != presets["default-light"].Danger {
		t.Error("danger color should come from the preset when not overridden")
	}
}
