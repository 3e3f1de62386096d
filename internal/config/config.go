package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Log        LogConfig
	Render     RenderConfig
	Validation ValidationConfig
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
}

// RenderConfig holds trajectory drawing settings.
type RenderConfig struct {
	Enabled bool
	Color   bool
	Columns int
}

// ValidationConfig holds scenario checks.
type ValidationConfig struct {
	HoldFinalPose bool `mapstructure:"hold_final_pose"`
}

// Load reads configuration from path (or the default location when empty)
// and env. Env var overrides use prefix TABLEBOTS_.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "warn")
	v.SetDefault("render.enabled", false)
	v.SetDefault("render.color", true)
	v.SetDefault("render.columns", 4)
	v.SetDefault("validation.hold_final_pose", false)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("TABLEBOTS_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tablebots"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TABLEBOTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine, a missing explicit one is not
		if _, notFound := err.(viper.ConfigFileNotFoundError); explicit || !notFound {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Logger builds the text logger for c.Log.Level, writing to w.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
