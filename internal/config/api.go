package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/courier/pkg/formatting"
	"github.com/JaimeStill/courier/pkg/middleware"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "COURIER_CORS_ENABLED",
	Origins:          "COURIER_CORS_ORIGINS",
	AllowedMethods:   "COURIER_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "COURIER_CORS_ALLOWED_HEADERS",
	AllowCredentials: "COURIER_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "COURIER_CORS_MAX_AGE",
}

// APIConfig holds API routing, CORS, and submission size settings.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	MaxSubmitSize string                `toml:"max_submit_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
}

// MaxSubmitSizeBytes returns the maximum accepted email submission size.
func (c *APIConfig) MaxSubmitSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxSubmitSize)
	if err != nil {
		return 50 * 1024 * 1024 // 50MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS config.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxSubmitSize != "" {
		c.MaxSubmitSize = overlay.MaxSubmitSize
	}

	c.CORS.Merge(&overlay.CORS)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxSubmitSize == "" {
		c.MaxSubmitSize = "50MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("COURIER_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("COURIER_API_MAX_SUBMIT_SIZE"); v != "" {
		c.MaxSubmitSize = v
	}
}
