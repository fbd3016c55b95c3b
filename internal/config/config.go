package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/garnizeh/portfolio/internal/auth"
)

const (
	defaultAdminEmail    = "admin@portfolio.dev"
	defaultAdminPassword = "admin123"
	defaultJWTSecret     = "super-secret-key-change"
)

// Config is the immutable process configuration. It is built once in Load
// and passed by reference into every handler; nothing mutates it afterwards.
type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`

	AdminEmail        string `yaml:"admin_email"`
	AdminPasswordHash string `yaml:"-"`

	// AllowInsecureDefaults permits running with the well-known fallback
	// secret and admin password. Demo use only.
	AllowInsecureDefaults bool `yaml:"allow_insecure_defaults"`
}

// Load reads configuration from the environment with an optional YAML
// overlay, then resolves the admin credentials. A precomputed
// ADMIN_PASSWORD_HASH takes precedence over ADMIN_PASSWORD, which is
// bcrypt-hashed here once. A missing JWT_SECRET or an admin password left at
// the default is an error unless PORTFOLIO_ALLOW_INSECURE_DEFAULTS=true.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Addr:                  getEnv("PORTFOLIO_ADDR", ":8080"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		APITimeout:            15 * time.Second,
		DatabasePath:          getEnv("PORTFOLIO_DATABASE_PATH", "portfolio.db"),
		TokenDuration:         12 * time.Hour,
		AdminEmail:            getEnv("ADMIN_EMAIL", defaultAdminEmail),
		AllowInsecureDefaults: os.Getenv("PORTFOLIO_ALLOW_INSECURE_DEFAULTS") == "true",
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.resolveSecrets(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) resolveSecrets() error {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		c.AdminPasswordHash = hash
	} else {
		password := getEnv("ADMIN_PASSWORD", defaultAdminPassword)
		if password == defaultAdminPassword && !c.AllowInsecureDefaults {
			return fmt.Errorf("admin password is unset or left at the default; set ADMIN_PASSWORD or ADMIN_PASSWORD_HASH, or opt in with PORTFOLIO_ALLOW_INSECURE_DEFAULTS=true")
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		c.AdminPasswordHash = hash
	}

	if c.JWTSecret == "" {
		if !c.AllowInsecureDefaults {
			return fmt.Errorf("JWT_SECRET is required; set it or opt in with PORTFOLIO_ALLOW_INSECURE_DEFAULTS=true")
		}
		c.JWTSecret = defaultJWTSecret
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
