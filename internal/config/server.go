package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/docker/go-units"
)

const (
	// EnvServerHost overrides the server bind address.
	EnvServerHost = "SERVER_HOST"

	// EnvServerPort overrides the server port.
	EnvServerPort = "SERVER_PORT"

	// EnvServerMaxBodySize overrides the maximum request body size.
	EnvServerMaxBodySize = "SERVER_MAX_BODY_SIZE"

	// EnvServerShutdownTimeout overrides the graceful shutdown timeout.
	EnvServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
)

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	ReadTimeout     string `toml:"read_timeout"`
	WriteTimeout    string `toml:"write_timeout"`
	IdleTimeout     string `toml:"idle_timeout"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
	MaxBodySize     string `toml:"max_body_size"`
	maxBodySizeVal  int64
}

// Addr returns the host:port bind address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ReadTimeoutDuration parses and returns the read timeout as a time.Duration.
func (c *ServerConfig) ReadTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ReadTimeout)
	return d
}

// WriteTimeoutDuration parses and returns the write timeout as a time.Duration.
func (c *ServerConfig) WriteTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.WriteTimeout)
	return d
}

// IdleTimeoutDuration parses and returns the idle timeout as a time.Duration.
func (c *ServerConfig) IdleTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.IdleTimeout)
	return d
}

// ShutdownTimeoutDuration parses and returns the shutdown timeout as a time.Duration.
func (c *ServerConfig) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// MaxBodySizeBytes returns the parsed maximum request body size in bytes.
func (c *ServerConfig) MaxBodySizeBytes() int64 {
	return c.maxBodySizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the
// server configuration.
func (c *ServerConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ServerConfig) Merge(overlay *ServerConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.ReadTimeout != "" {
		c.ReadTimeout = overlay.ReadTimeout
	}
	if overlay.WriteTimeout != "" {
		c.WriteTimeout = overlay.WriteTimeout
	}
	if overlay.IdleTimeout != "" {
		c.IdleTimeout = overlay.IdleTimeout
	}
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}
}

func (c *ServerConfig) loadDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == "" {
		c.ReadTimeout = "15s"
	}
	if c.WriteTimeout == "" {
		c.WriteTimeout = "30s"
	}
	if c.IdleTimeout == "" {
		c.IdleTimeout = "60s"
	}
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
}

func (c *ServerConfig) loadEnv() {
	if v := os.Getenv(EnvServerHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv(EnvServerMaxBodySize); v != "" {
		c.MaxBodySize = v
	}
	if v := os.Getenv(EnvServerShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
}

func (c *ServerConfig) validate() error {
	for name, value := range map[string]string{
		"read_timeout":     c.ReadTimeout,
		"write_timeout":    c.WriteTimeout,
		"idle_timeout":     c.IdleTimeout,
		"shutdown_timeout": c.ShutdownTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	size, err := units.FromHumanSize(c.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	c.maxBodySizeVal = size

	return nil
}
