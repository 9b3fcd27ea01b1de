package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the club auth service
type Config struct {
	// Server
	Port     string `env:"PORT" default:"9500"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Persistence. Empty DATABASE_URL selects the in-memory record store.
	DatabaseURL string `env:"DATABASE_URL"`

	// Session lifecycle
	LoginDelay        time.Duration `env:"LOGIN_DELAY" default:"1s"`
	CountdownSeconds  int           `env:"COUNTDOWN_SECONDS" default:"5"`
	CountdownInterval time.Duration `env:"COUNTDOWN_INTERVAL" default:"1s"`

	// Navigation
	LoginPath string `env:"LOGIN_PATH" default:"/login"`

	// Features
	EnableMetrics bool `env:"ENABLE_METRICS" default:"true"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9500")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Persistence configuration
	config.DatabaseURL = os.Getenv("DATABASE_URL")

	// Session lifecycle configuration
	var err error
	loginDelayStr := getEnvOrDefault("LOGIN_DELAY", "1s")
	config.LoginDelay, err = time.ParseDuration(loginDelayStr)
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_DELAY: %w", err)
	}

	countdownSecondsStr := getEnvOrDefault("COUNTDOWN_SECONDS", "5")
	config.CountdownSeconds, err = strconv.Atoi(countdownSecondsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid COUNTDOWN_SECONDS: %w", err)
	}

	countdownIntervalStr := getEnvOrDefault("COUNTDOWN_INTERVAL", "1s")
	config.CountdownInterval, err = time.ParseDuration(countdownIntervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid COUNTDOWN_INTERVAL: %w", err)
	}

	// Navigation configuration
	config.LoginPath = getEnvOrDefault("LOGIN_PATH", "/login")

	// Feature flags
	config.EnableMetrics = getBoolEnv("ENABLE_METRICS", true)

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// The artificial login latency may be zero but never negative
	if c.LoginDelay < 0 {
		return fmt.Errorf("login delay must not be negative, got: %v", c.LoginDelay)
	}

	if c.CountdownSeconds < 1 {
		return fmt.Errorf("countdown must be at least 1 second, got: %d", c.CountdownSeconds)
	}

	if c.CountdownInterval < time.Millisecond {
		return fmt.Errorf("countdown interval must be at least 1ms, got: %v", c.CountdownInterval)
	}

	if !strings.HasPrefix(c.LoginPath, "/") {
		return fmt.Errorf("login path must start with /: %s", c.LoginPath)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
