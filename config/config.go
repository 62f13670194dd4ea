// ABOUTME: Configuration loader for the prediction service
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port               string
	Environment        string   // development, production (controls default log format)
	CORSAllowedOrigins []string // allowed CORS origins (empty = block all cross-origin)
	ShutdownTimeout    int      // seconds to wait for in-flight requests on shutdown

	// Model
	ModelPath string // path to the serialized model artifact
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present; real environment variables win.
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),
		ShutdownTimeout:    getEnvInt("SHUTDOWN_TIMEOUT", 10),

		ModelPath: getEnv("MODEL_PATH", "study_time_model.json"),
	}

	if cfg.ModelPath == "" {
		return nil, fmt.Errorf("MODEL_PATH cannot be empty")
	}
	if cfg.ShutdownTimeout < 1 || cfg.ShutdownTimeout > 300 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be between 1 and 300, got %d", cfg.ShutdownTimeout)
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
