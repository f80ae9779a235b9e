package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	Booking BookingConfig
	Log     LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Brand          string
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

// BookingConfig holds validation switches.
type BookingConfig struct {
	RejectPastDates bool `mapstructure:"reject_past_dates"`
}

// LogConfig holds logger settings. Path "" disables file logging.
type LogConfig struct {
	Path        string
	Level       string
	Development bool
}

// Load reads configuration from file and env. Env var overrides use prefix CLEANCO_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CLEANCO_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "cleanco"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CLEANCO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit CLEANCO_CONFIG must exist; the default location is optional
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.brand", "CleanCo")
	v.SetDefault("ui.currency_symbol", "RM")
	v.SetDefault("booking.reject_past_dates", false)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "cleanco", "cleanco.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Save writes the provided config to path, creating the directory if needed.
// An empty path writes to $CLEANCO_CONFIG or ~/.config/cleanco/config.toml.
func Save(cfg Config, path string) error {
	if path == "" {
		path = os.Getenv("CLEANCO_CONFIG")
	}
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "cleanco", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.brand", cfg.UI.Brand)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("booking.reject_past_dates", cfg.Booking.RejectPastDates)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.development", cfg.Log.Development)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
