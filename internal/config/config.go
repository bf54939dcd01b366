// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads and validates drybot configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config represents the complete drybot configuration.
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Log      LogConfig      `yaml:"log,omitempty"`
	Metrics  MetricsConfig  `yaml:"metrics,omitempty"`
	Catalog  CatalogConfig  `yaml:"catalog,omitempty"`

	// PIDFile is the path to the PID file. Empty means no PID file.
	PIDFile string `yaml:"pid_file,omitempty"`
}

// TelegramConfig configures the Telegram transport.
type TelegramConfig struct {
	// Token is the bot API token.
	// Environment: DRYBOT_TELEGRAM_TOKEN
	Token string `yaml:"token"`

	// OwnerID is the numeric Telegram user ID of the operator.
	// Updates from any other identity are dropped silently.
	// Environment: DRYBOT_OWNER_ID
	OwnerID int64 `yaml:"owner_id"`

	// PollTimeoutSeconds is the long-polling timeout for updates.
	// Default: 30
	PollTimeoutSeconds int `yaml:"poll_timeout_seconds,omitempty"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Level sets the minimum log level (debug, info, warn, error).
	Level string `yaml:"level,omitempty"`

	// Format sets the output format (json, text).
	Format string `yaml:"format,omitempty"`
}

// MetricsConfig configures the Prometheus metrics listener.
type MetricsConfig struct {
	// Enabled turns the metrics HTTP listener on.
	Enabled bool `yaml:"enabled"`

	// Addr is the listen address for /metrics.
	// Environment: DRYBOT_METRICS_ADDR
	// Default: 127.0.0.1:9344
	Addr string `yaml:"addr,omitempty"`
}

// CatalogConfig configures the demo target catalogue.
type CatalogConfig struct {
	// Path is an optional YAML file overriding the built-in catalogue.
	Path string `yaml:"path,omitempty"`

	// Watch reloads the catalogue file when it changes.
	Watch bool `yaml:"watch,omitempty"`
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		Telegram: TelegramConfig{
			PollTimeoutSeconds: 30,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Addr: "127.0.0.1:9344",
		},
	}
}

// Load reads configuration from the given path.
// An empty path falls back to the XDG config location
// (~/.config/drybot/config.yaml). A missing file is not an error;
// defaults plus environment overrides are returned instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		dir, err := ConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Fall through to env overrides; the bot can be configured
		// entirely from the environment.
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

// applyEnv applies environment variable overrides.
func (c *Config) applyEnv() {
	if token := os.Getenv("DRYBOT_TELEGRAM_TOKEN"); token != "" {
		c.Telegram.Token = token
	}
	if owner := os.Getenv("DRYBOT_OWNER_ID"); owner != "" {
		if id, err := strconv.ParseInt(owner, 10, 64); err == nil {
			c.Telegram.OwnerID = id
		}
	}
	if addr := os.Getenv("DRYBOT_METRICS_ADDR"); addr != "" {
		c.Metrics.Addr = addr
	}
}

// applyDefaults fills zero values left after file and env merging.
func (c *Config) applyDefaults() {
	if c.Telegram.PollTimeoutSeconds <= 0 {
		c.Telegram.PollTimeoutSeconds = 30
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = "127.0.0.1:9344"
	}
}

// Validate checks that the configuration is complete enough to run.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("%w: telegram.token is required", ErrInvalidConfig)
	}
	if c.Telegram.OwnerID == 0 {
		return fmt.Errorf("%w: telegram.owner_id is required", ErrInvalidConfig)
	}
	if c.Catalog.Watch && c.Catalog.Path == "" {
		return fmt.Errorf("%w: catalog.watch requires catalog.path", ErrInvalidConfig)
	}
	return nil
}
