package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Version is the build version baked in at link time via
// -ldflags "-X btl-run-api/internal/config.Version=...". The VERSION
// environment variable overrides it at startup.
var Version = "0.1.0"

// APIName is the service name reported by the root endpoint.
const APIName = "btl.run API"

// Config holds all configuration for the application
type Config struct {
	Environment string `validate:"required"`
	Port        string `validate:"required"`
	LogLevel    string `validate:"required,oneof=trace debug info warn error"`
	Version     string `validate:"required"`
}

// Load loads configuration from environment variables with defaults applied
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("VERSION", Version)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		Version:     viper.GetString("VERSION"),
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}
