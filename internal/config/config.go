package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	LogLevel         string
	SeedSamples      bool
	StatisticsMaxAge time.Duration
	CORSOrigins      []string
	ShutdownTimeout  time.Duration
}

// New reads the environment, loading a .env file first when one exists.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "3000"),
		LogLevel:         getEnv("LOGLEVEL", "info"),
		SeedSamples:      getEnvBool("SEED_SAMPLES", true),
		StatisticsMaxAge: getEnvDuration("STATISTICS_MAX_AGE", 30*time.Second),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "*")),
		ShutdownTimeout:  getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if c.StatisticsMaxAge < 0 {
		problems = append(problems, fmt.Sprintf("invalid statistics max age %v: must not be negative", c.StatisticsMaxAge))
	}
	if c.ShutdownTimeout < time.Second {
		problems = append(problems, fmt.Sprintf("invalid shutdown timeout %v: must be at least 1 second", c.ShutdownTimeout))
	}
	if len(c.CORSOrigins) == 0 {
		problems = append(problems, "CORS_ORIGINS must list at least one origin")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
