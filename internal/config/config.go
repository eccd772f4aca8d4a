package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ThemeConfig holds theme settings for styled terminal output.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	Danger        string `mapstructure:"danger"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// Config holds the application configuration.
type Config struct {
	DataDir     string      `mapstructure:"data_dir"`
	EventsFile  string      `mapstructure:"events_file"`
	SaveFile    string      `mapstructure:"save_file"`
	DateFormats []string    `mapstructure:"date_formats"`
	TimeFormats []string    `mapstructure:"time_formats"`
	QuitWord    string      `mapstructure:"quit_word"`
	DefaultDays int         `mapstructure:"default_days"`
	LogLevel    string      `mapstructure:"log_level"`
	Theme       ThemeConfig `mapstructure:"theme"`
}

// DefaultDataDir returns the default data directory (~/.diary/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".diary")
	}
	return filepath.Join(home, ".diary")
}

// EventsPath returns the events document path. A relative events_file is
// resolved against the data directory.
func (c *Config) EventsPath() string {
	return c.resolve(c.EventsFile)
}

// SavePath returns the base path for snapshot exports.
func (c *Config) SavePath() string {
	return c.resolve(c.SaveFile)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// Load reads configuration from defaults, a .env file in the data directory,
// environment variables and an optional TOML config file.
func Load(configPath string) (*Config, error) {
	// Values already in the environment win over the .env file.
	if err := godotenv.Load(filepath.Join(DefaultDataDir(), ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v := viper.New()

	// Defaults
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("events_file", "events.json")
	v.SetDefault("save_file", "saved_diary")
	v.SetDefault("date_formats", []string{"2006-01-02", "02/01/2006"})
	v.SetDefault("time_formats", []string{"15:04", "3:04pm"})
	v.SetDefault("quit_word", "q")
	v.SetDefault("default_days", 7)
	v.SetDefault("log_level", "warn")
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.accent", "")
	v.SetDefault("theme.muted", "")
	v.SetDefault("theme.danger", "")
	v.SetDefault("theme.markdown_style", "")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "diary"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: DIARY_DATA_DIR, DIARY_THEME_PRESET, etc.
	v.SetEnvPrefix("DIARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only an explicitly requested file has to exist and parse
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
