package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/financecrm/ai-service/internal/models"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds the process configuration read from the environment
type Config struct {
	// Host is the interface to bind, 0.0.0.0 listens on all of them
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"8000"`

	// Variant selects the health entry point: "ping" (GET /ping) or "root" (GET /)
	Variant string `envconfig:"SERVICE_VARIANT" default:"ping"`

	// Optional metadata overrides, empty means the variant default
	ServiceName        string `envconfig:"SERVICE_NAME"`
	ServiceDescription string `envconfig:"SERVICE_DESCRIPTION"`
	ServiceVersion     string `envconfig:"SERVICE_VERSION"`

	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	DocsEnabled        bool     `envconfig:"DOCS_ENABLED" default:"true"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`
}

// Load reads an optional .env file, then the environment, and validates the result
func Load() (*Config, error) {
	// production environments usually have no .env file
	_ = godotenv.Load()

	return FromEnv()
}

// FromEnv builds the configuration from environment variables only
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every field holds a usable value
func (c *Config) Validate() error {
	if _, err := models.ParseVariant(c.Variant); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid configuration: port %d out of range 0-65535", c.Port)
	}

	if c.Environment != EnvDevelopment && c.Environment != EnvProduction {
		return fmt.Errorf("invalid configuration: environment %q must be %q or %q",
			c.Environment, EnvDevelopment, EnvProduction)
	}

	timeouts := map[string]time.Duration{
		"READ_TIMEOUT":     c.ReadTimeout,
		"WRITE_TIMEOUT":    c.WriteTimeout,
		"IDLE_TIMEOUT":     c.IdleTimeout,
		"SHUTDOWN_TIMEOUT": c.ShutdownTimeout,
	}
	for name, d := range timeouts {
		if d <= 0 {
			return fmt.Errorf("invalid configuration: %s must be positive, got %s", name, d)
		}
	}

	return nil
}

// Addr returns the host:port pair the server binds to
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ServiceVariant returns the parsed variant, falling back to ping
// for a configuration that skipped Validate
func (c *Config) ServiceVariant() models.Variant {
	v, err := models.ParseVariant(c.Variant)
	if err != nil {
		return models.VariantPing
	}
	return v
}

// Metadata returns the variant's default metadata with any overrides applied
func (c *Config) Metadata() models.ServiceMetadata {
	meta := models.DefaultMetadata(c.ServiceVariant())

	if c.ServiceName != "" {
		meta.Name = c.ServiceName
	}
	if c.ServiceDescription != "" {
		meta.Description = c.ServiceDescription
	}
	if c.ServiceVersion != "" {
		meta.Version = c.ServiceVersion
	}

	return meta
}

// IsProduction reports whether the service runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
