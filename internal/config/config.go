package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Bus   string      `mapstructure:"bus" yaml:"bus"`
	Pulse PulseConfig `mapstructure:"pulse" yaml:"pulse"`
	Log   LogConfig   `mapstructure:"log" yaml:"log"`
}

type PulseConfig struct {
	// Server is the PulseAudio server address. Empty means the usual
	// discovery order (PULSE_SERVER, then the per-user socket).
	Server     string `mapstructure:"server" yaml:"server"`
	ClientName string `mapstructure:"client_name" yaml:"client_name"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // "debug", "info", "warn", "error"
}

var defaultConfig = Config{
	Bus: "system",
	Pulse: PulseConfig{
		Server:     "",
		ClientName: "pulse-dbusctl",
	},
	Log: LogConfig{
		Level: "info",
	},
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.Getenv("HOME"), ".config", "pulse-dbusctl", "config.yaml")
	}
	return filepath.Join(configDir, "pulse-dbusctl", "config.yaml")
}

// Load reads the configuration from configFile, falling back to DefaultPath
// when none is given. An explicitly requested file must exist; the default
// location is optional. Environment variables with the PULSE_DBUSCTL prefix
// override file values (PULSE_DBUSCTL_BUS, PULSE_DBUSCTL_LOG_LEVEL, ...).
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("bus", defaultConfig.Bus)
	v.SetDefault("pulse.server", defaultConfig.Pulse.Server)
	v.SetDefault("pulse.client_name", defaultConfig.Pulse.ClientName)
	v.SetDefault("log.level", defaultConfig.Log.Level)

	v.SetEnvPrefix("PULSE_DBUSCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	required := configFile != ""
	if configFile == "" {
		configFile = DefaultPath()
	}
	v.SetConfigFile(configFile)

	if err := v.ReadInConfig(); err != nil {
		if required || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the loaded values against the accepted sets.
func (c *Config) Validate() error {
	if c.Bus != "system" && c.Bus != "session" {
		return fmt.Errorf("'bus' must be 'system' or 'session', got: %s", c.Bus)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("'log.level' must be 'debug', 'info', 'warn' or 'error', got: %s", c.Log.Level)
	}

	if c.Pulse.ClientName == "" {
		return fmt.Errorf("'pulse.client_name' cannot be empty")
	}

	return nil
}

// SlogLevel maps the configured level onto the slog scale.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
