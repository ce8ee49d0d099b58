// Package config loads the electoral CLI configuration.
//
// Resolution order, later wins: built-in defaults, $ELECTORAL_HOME/config.json,
// environment variables (a .env file in the working directory or in
// $ELECTORAL_HOME is loaded first and never overrides variables already set).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvHome      = "ELECTORAL_HOME"
	EnvDB        = "ELECTORAL_DB"
	EnvActor     = "ELECTORAL_ACTOR"
	EnvLogLevel  = "ELECTORAL_LOG_LEVEL"
	EnvLogFormat = "ELECTORAL_LOG_FORMAT"
)

const (
	configFile = "config.json"
	dbFile     = "electoral.db"
	version    = "1"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config represents the flat electoral configuration.
type Config struct {
	Version   string `json:"version"`
	DBPath    string `json:"db_path" validate:"required"`
	Actor     string `json:"actor,omitempty"`                                 // default caller identity
	LogLevel  string `json:"log_level" validate:"oneof=debug info warn error"` // slog level
	LogFormat string `json:"log_format" validate:"oneof=text json"`
}

// Home returns the configuration directory: $ELECTORAL_HOME or ~/.electoral.
func Home() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".electoral"), nil
}

// Default returns the configuration used when no file exists in dir.
func Default(dir string) *Config {
	return &Config{
		Version:   version,
		DBPath:    filepath.Join(dir, dbFile),
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// LoadConfig reads config.json from dir.
// Returns an error wrapping os.ErrNotExist if there is no file.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default(dir)
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes config.json to dir.
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, configFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Load resolves the effective configuration and the directory it came from.
func Load() (*Config, string, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, "", err
	}

	dir, err := Home()
	if err != nil {
		return nil, "", err
	}
	if err := loadDotEnv(filepath.Join(dir, ".env")); err != nil {
		return nil, "", err
	}

	cfg, err := LoadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default(dir)
	} else if err != nil {
		return nil, "", err
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, dir, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s=%q fails %q", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDB); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvActor); v != "" {
		c.Actor = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
}

// loadDotEnv loads path into the environment if it exists.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
