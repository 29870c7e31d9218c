// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// EnvironmentConfig holds process-level operational settings: resource
// guardrails for the resource manager and circuit-breaker tuning for
// controller-factory calls. It is loaded from the environment rather than
// the scenario file because it describes how the process runs, not what
// simulation it runs.
type EnvironmentConfig struct {
	MaxMemoryMB           int64
	MaxGoroutines         int
	ShutdownTimeout       time.Duration
	ResourceCheckInterval time.Duration

	CircuitBreakerMaxRequests         uint32
	CircuitBreakerInterval            time.Duration
	CircuitBreakerTimeout             time.Duration
	CircuitBreakerMaxConsecutiveFails uint32

	LogLevel string
}

// ValidationError reports a single out-of-bounds environment config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Message)
}

// DefaultEnvironmentConfig returns conservative defaults for local runs.
func DefaultEnvironmentConfig() *EnvironmentConfig {
	return &EnvironmentConfig{
		MaxMemoryMB:                       1024,
		MaxGoroutines:                     500,
		ShutdownTimeout:                   10 * time.Second,
		ResourceCheckInterval:             5 * time.Second,
		CircuitBreakerMaxRequests:         3,
		CircuitBreakerInterval:            30 * time.Second,
		CircuitBreakerTimeout:             15 * time.Second,
		CircuitBreakerMaxConsecutiveFails: 5,
		LogLevel:                          "INFO",
	}
}

// LoadConfigFromEnv builds an EnvironmentConfig from SHIPCORE_* environment
// variables layered over DefaultEnvironmentConfig, then validates it.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	cfg := DefaultEnvironmentConfig()

	cfg.MaxMemoryMB = getEnvAsInt64OrDefault("SHIPCORE_MAX_MEMORY_MB", cfg.MaxMemoryMB)
	cfg.MaxGoroutines = getEnvAsIntOrDefault("SHIPCORE_MAX_GOROUTINES", cfg.MaxGoroutines)
	cfg.ShutdownTimeout = getEnvAsDurationOrDefault("SHIPCORE_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.ResourceCheckInterval = getEnvAsDurationOrDefault("SHIPCORE_RESOURCE_CHECK_INTERVAL", cfg.ResourceCheckInterval)
	cfg.CircuitBreakerMaxRequests = uint32(getEnvAsIntOrDefault("SHIPCORE_BREAKER_MAX_REQUESTS", int(cfg.CircuitBreakerMaxRequests)))
	cfg.CircuitBreakerInterval = getEnvAsDurationOrDefault("SHIPCORE_BREAKER_INTERVAL", cfg.CircuitBreakerInterval)
	cfg.CircuitBreakerTimeout = getEnvAsDurationOrDefault("SHIPCORE_BREAKER_TIMEOUT", cfg.CircuitBreakerTimeout)
	cfg.CircuitBreakerMaxConsecutiveFails = uint32(getEnvAsIntOrDefault("SHIPCORE_BREAKER_MAX_FAILS", int(cfg.CircuitBreakerMaxConsecutiveFails)))
	cfg.LogLevel = getEnvOrDefault("SHIPCORE_LOG_LEVEL", cfg.LogLevel)

	if err := validateEnvironmentConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateEnvironmentConfig(cfg *EnvironmentConfig) error {
	if cfg.MaxMemoryMB <= 0 {
		return &ValidationError{Field: "MaxMemoryMB", Message: "must be positive"}
	}
	if cfg.MaxGoroutines <= 0 {
		return &ValidationError{Field: "MaxGoroutines", Message: "must be positive"}
	}
	if cfg.ShutdownTimeout < time.Second || cfg.ShutdownTimeout > 5*time.Minute {
		return &ValidationError{Field: "ShutdownTimeout", Message: "must be between 1s and 5m"}
	}
	if cfg.ResourceCheckInterval < time.Second || cfg.ResourceCheckInterval > 5*time.Minute {
		return &ValidationError{Field: "ResourceCheckInterval", Message: "must be between 1s and 5m"}
	}
	if cfg.CircuitBreakerMaxRequests < 1 {
		return &ValidationError{Field: "CircuitBreakerMaxRequests", Message: "must be at least 1"}
	}
	if cfg.CircuitBreakerInterval < time.Second {
		return &ValidationError{Field: "CircuitBreakerInterval", Message: "must be at least 1s"}
	}
	if cfg.CircuitBreakerTimeout < time.Second {
		return &ValidationError{Field: "CircuitBreakerTimeout", Message: "must be at least 1s"}
	}
	if cfg.CircuitBreakerMaxConsecutiveFails < 1 {
		return &ValidationError{Field: "CircuitBreakerMaxConsecutiveFails", Message: "must be at least 1"}
	}
	return nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvAsIntOrDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvAsInt64OrDefault(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func getEnvAsDurationOrDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
