package mailer

import (
	"fmt"
	"os"
	"strconv"
)

// Backend selects the mail transport implementation.
const (
	BackendLog  = "log"
	BackendSMTP = "smtp"
)

// Config holds outbound mail parameters.
type Config struct {
	Backend  string `toml:"backend"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	From     string `toml:"from"`
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Backend  string
	Host     string
	Port     string
	From     string
	Username string
	Password string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Backend != "" {
		c.Backend = overlay.Backend
	}
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.From != "" {
		c.From = overlay.From
	}
	if overlay.Username != "" {
		c.Username = overlay.Username
	}
	if overlay.Password != "" {
		c.Password = overlay.Password
	}
}

func (c *Config) loadDefaults() {
	if c.Backend == "" {
		c.Backend = BackendLog
	}
	if c.Port == 0 {
		c.Port = 587
	}
	if c.From == "" {
		c.From = "courier@localhost"
	}
}

func (c *Config) loadEnv(env *Env) {
	set := func(key string, target *string) {
		if key == "" {
			return
		}
		if v := os.Getenv(key); v != "" {
			*target = v
		}
	}

	set(env.Backend, &c.Backend)
	set(env.Host, &c.Host)
	set(env.From, &c.From)
	set(env.Username, &c.Username)
	set(env.Password, &c.Password)

	if env.Port != "" {
		if v := os.Getenv(env.Port); v != "" {
			if port, err := strconv.Atoi(v); err == nil {
				c.Port = port
			}
		}
	}
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendLog:
		return nil
	case BackendSMTP:
		if c.Host == "" {
			return fmt.Errorf("host required for smtp backend")
		}
		if c.From == "" {
			return fmt.Errorf("from address required")
		}
		return nil
	default:
		return fmt.Errorf("unknown backend: %s", c.Backend)
	}
}
