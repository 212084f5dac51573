// Package config provides application configuration management with support
// for TOML files, environment variable overrides, and configuration overlays.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	// BaseConfigFile is the primary configuration file name.
	BaseConfigFile = "config.toml"

	// OverlayConfigPattern is the file name pattern for environment-specific overlays.
	OverlayConfigPattern = "config.%s.toml"

	// EnvServiceEnv specifies the environment name for configuration overlays.
	EnvServiceEnv = "ROUTEKIT_ENV"

	// EnvServiceVersion overrides the reported service version.
	EnvServiceVersion = "ROUTEKIT_VERSION"
)

// Config represents the root service configuration.
type Config struct {
	Service  string         `toml:"service"`
	Version  string         `toml:"version"`
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
	API      APIConfig      `toml:"api"`
}

// Load reads the base configuration file, applies any environment-specific
// overlay, and finalizes the result.
func Load() (*Config, error) {
	cfg, err := load(BaseConfigFile)
	if err != nil {
		return nil, err
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize applies defaults, loads environment overrides, and validates every
// configuration section.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Logging.Finalize(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Service != "" {
		c.Service = overlay.Service
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Logging.Merge(&overlay.Logging)
	c.API.Merge(&overlay.API)
}

func (c *Config) loadDefaults() {
	if c.Service == "" {
		c.Service = "routekit"
	}
	if c.Version == "" {
		c.Version = "dev"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvServiceVersion); v != "" {
		c.Version = v
	}
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvServiceEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
