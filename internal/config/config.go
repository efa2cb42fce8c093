package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/conectivo/internal/logging"
)

// Config holds all runtime settings.
type Config struct {
	Validator ValidatorConfig `yaml:"validator"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
}

// ValidatorConfig holds remote sentence validator settings.
type ValidatorConfig struct {
	URL     string        `yaml:"url"` // Empty disables remote validation
	Timeout time.Duration `yaml:"timeout"`
}

// ServerConfig holds settings for the grading server.
type ServerConfig struct {
	Bind        string   `yaml:"bind"`
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Bind, s.Port)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Used by the terminal UI; empty selects the default
	Mode  string `yaml:"mode"` // dev or prod
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Validator: ValidatorConfig{
			URL:     "http://127.0.0.1:5000",
			Timeout: 15 * time.Second,
		},
		Server: ServerConfig{
			Bind:        "127.0.0.1",
			Port:        5000,
			CORSOrigins: []string{"*"},
		},
		Log: LogConfig{
			Level: "info",
			Mode:  "dev",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/conectivo/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "conectivo", "config.yaml"), nil
}

// DefaultLogFile returns $XDG_STATE_HOME/conectivo/conectivo.log, falling
// back to ~/.local/state.
func DefaultLogFile() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "conectivo", "conectivo.log"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".local", "state", "conectivo", "conectivo.log"), nil
}

// Load builds the configuration from defaults, the YAML file at path and
// the environment. An empty path selects DefaultPath, which may be absent.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays CONECTIVO_* environment variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("CONECTIVO_VALIDATOR_URL"); ok {
		c.Validator.URL = v
	}
	if v, ok := lookup("CONECTIVO_VALIDATOR_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CONECTIVO_VALIDATOR_TIMEOUT: %w", err)
		}
		c.Validator.Timeout = d
	}
	if v, ok := lookup("CONECTIVO_SERVER_BIND"); ok && v != "" {
		c.Server.Bind = v
	}
	if v, ok := lookup("CONECTIVO_SERVER_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CONECTIVO_SERVER_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v, ok := lookup("CONECTIVO_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup("CONECTIVO_LOG_FILE"); ok && v != "" {
		c.Log.File = v
	}
	if v, ok := lookup("CONECTIVO_LOG_MODE"); ok && v != "" {
		c.Log.Mode = v
	}
	return nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []string

	if c.Validator.URL != "" {
		u, err := url.Parse(c.Validator.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("validator.url %q must be an http(s) URL", c.Validator.URL))
		}
	}
	if c.Validator.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("validator.timeout must not be negative, got %s", c.Validator.Timeout))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Log.Level != "" && !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Sprintf("log.level %q is not a known level", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Mode) {
	case "", "dev", "development", "prod", "production":
	default:
		errs = append(errs, fmt.Sprintf("log.mode %q must be dev or prod", c.Log.Mode))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
