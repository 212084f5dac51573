package config

import (
	"os"

	"github.com/kestrelworks/routekit/pkg/middleware"
)

const (
	// EnvAPIBasePath overrides the API base path.
	EnvAPIBasePath = "API_BASE_PATH"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "API_CORS_ENABLED",
	Origins:          "API_CORS_ORIGINS",
	AllowedMethods:   "API_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "API_CORS_ALLOWED_HEADERS",
	AllowCredentials: "API_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "API_CORS_MAX_AGE",
}

// APIConfig contains the API surface configuration: the base path every
// feature mounts under, the ordered registrar set applied to it, and the
// CORS policy for its routes.
type APIConfig struct {
	BasePath   string                `toml:"base_path"`
	Registrars []string              `toml:"registrars"`
	CORS       middleware.CORSConfig `toml:"cors"`
}

// Finalize applies defaults, loads environment overrides, and validates the
// API configuration.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.CORS.Finalize(corsEnv)
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.Registrars != nil {
		c.Registrars = overlay.Registrars
	}
	c.CORS.Merge(&overlay.CORS)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.Registrars == nil {
		c.Registrars = []string{"status", "tasks"}
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
}
