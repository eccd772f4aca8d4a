package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.EventsFile != "events.json" {
		t.Errorf("events_file = %q, want %q", cfg.EventsFile, "events.json")
	}
	if cfg.DefaultDays != 7 {
		t.Errorf("default_days = %d, want 7", cfg.DefaultDays)
	}
	if cfg.QuitWord != "q" {
		t.Errorf("quit_word = %q, want %q", cfg.QuitWord, "q")
	}
	if len(cfg.DateFormats) == 0 || cfg.DateFormats[0] != "2006-01-02" {
		t.Errorf("date_formats = %v", cfg.DateFormats)
	}
	if cfg.Theme.Preset != "default-dark" {
		t.Errorf("expected preset 'default-dark', got %q", cfg.Theme.Preset)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")

	content := `
data_dir = "/tmp/diary-test"
events_file = "mine.json"
default_days = 30
time_formats = ["15:04"]

[theme]
preset = "default-light"
accent = "#FF0000"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.EventsPath() != filepath.Join("/tmp/diary-test", "mine.json") {
		t.Errorf("events path = %q", cfg.EventsPath())
	}
	if cfg.DefaultDays != 30 {
		t.Errorf("default_days = %d, want 30", cfg.DefaultDays)
	}
	if len(cfg.TimeFormats) != 1 {
		t.Errorf("time_formats = %v, want one layout", cfg.TimeFormats)
	}
	if cfg.Theme.Preset != "default-light" {
		t.Errorf("expected preset 'default-light', got %q", cfg.Theme.Preset)
	}
	if cfg.Theme.Accent != "#FF0000" {
		t.Errorf("expected accent '#FF0000', got %q", cfg.Theme.Accent)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DIARY_EVENTS_FILE", "/abs/events.json")
	t.Setenv("DIARY_THEME_PRESET", "dracula")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.EventsPath() != "/abs/events.json" {
		t.Errorf("events path = %q, want absolute override", cfg.EventsPath())
	}
	if cfg.Theme.Preset != "dracula" {
		t.Errorf("theme preset = %q, want dracula", cfg.Theme.Preset)
	}
}

func TestLoadDotEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := os.MkdirAll(filepath.Join(home, ".diary"), 0755); err != nil {
		t.Fatal(err)
	}
	env := "DIARY_SAVE_FILE=from_dotenv\n"
	if err := os.WriteFile(filepath.Join(home, ".diary", ".env"), []byte(env), 0600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("DIARY_SAVE_FILE") })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SaveFile != "from_dotenv" {
		t.Errorf("save_file = %q, want %q", cfg.SaveFile, "from_dotenv")
	}
}
