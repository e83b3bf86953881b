package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the hello API
type Config struct {
	// Server configuration
	Host     string `env:"HELLOAPI_HOST" envDefault:"0.0.0.0"`
	Port     int    `env:"HELLOAPI_PORT" envDefault:"8000"`
	GRPCPort int    `env:"HELLOAPI_GRPC_PORT" envDefault:"0"` // 0 disables the gRPC health server
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
	CORSEnabled    bool `env:"CORS_ENABLED" envDefault:"false"`

	// Timeouts
	Timeouts TimeoutConfig
}

// TimeoutConfig holds HTTP server and shutdown timeouts
type TimeoutConfig struct {
	ReadHeader time.Duration `env:"TIMEOUT_READ_HEADER" envDefault:"5s"`
	Read       time.Duration `env:"TIMEOUT_READ" envDefault:"10s"`
	Write      time.Duration `env:"TIMEOUT_WRITE" envDefault:"10s"`
	Idle       time.Duration `env:"TIMEOUT_IDLE" envDefault:"60s"`
	Shutdown   time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"30s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}

	// Validate server ports
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.Port)
	}
	if c.GRPCPort < 0 || c.GRPCPort > 65535 {
		return fmt.Errorf("invalid gRPC port: %d", c.GRPCPort)
	}
	if c.GRPCPort == c.Port {
		return fmt.Errorf("gRPC port %d collides with HTTP port", c.GRPCPort)
	}

	if c.Timeouts.Shutdown <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// GRPCEnabled reports whether the gRPC health server should be started
func (c *Config) GRPCEnabled() bool {
	return c.GRPCPort != 0
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// GetGRPCAddr returns the gRPC server address
func (c *Config) GetGRPCAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.GRPCPort))
}
