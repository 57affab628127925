package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Store       StoreConfig
	Log         LogConfig
	RateLimit   RateLimitConfig

	// StrictValidationStatus reports every validation failure as 400 instead
	// of folding it into 500 for create, get and update.
	StrictValidationStatus bool
}

// StoreConfig selects and configures the item store
type StoreConfig struct {
	Type        string // "dynamodb", "sqlite", "badger" or "memory"
	TableName   string
	Region      string
	Endpoint    string
	MaxAttempts int
	SQLitePath  string
	BadgerPath  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string // "json" or "text"
}

// RateLimitConfig holds the local server rate limiter settings
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("TABLE_NAME", "ItemsTable")
	viper.SetDefault("AWS_REGION", "ap-south-1")
	viper.SetDefault("DYNAMODB_MAX_ATTEMPTS", 3)
	viper.SetDefault("STORE_TYPE", "dynamodb")
	viper.SetDefault("SQLITE_PATH", "./data/items.db")
	viper.SetDefault("BADGER_PATH", "./data/badger")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("STRICT_VALIDATION_STATUS", false)
	viper.SetDefault("RATE_LIMIT_RPS", 50)
	viper.SetDefault("RATE_LIMIT_BURST", 100)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Store: StoreConfig{
			Type:        strings.ToLower(viper.GetString("STORE_TYPE")),
			TableName:   viper.GetString("TABLE_NAME"),
			Region:      viper.GetString("AWS_REGION"),
			Endpoint:    viper.GetString("DYNAMODB_ENDPOINT"),
			MaxAttempts: viper.GetInt("DYNAMODB_MAX_ATTEMPTS"),
			SQLitePath:  viper.GetString("SQLITE_PATH"),
			BadgerPath:  viper.GetString("BADGER_PATH"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(viper.GetString("LOG_LEVEL")),
			Format: strings.ToLower(viper.GetString("LOG_FORMAT")),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
		StrictValidationStatus: viper.GetBool("STRICT_VALIDATION_STATUS"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the loaded values for obvious mistakes
func (c *Config) Validate() error {
	if c.Store.TableName == "" {
		return fmt.Errorf("TABLE_NAME must not be empty")
	}
	if c.Store.MaxAttempts < 0 {
		return fmt.Errorf("DYNAMODB_MAX_ATTEMPTS must not be negative, got %d", c.Store.MaxAttempts)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unsupported LOG_FORMAT %q", c.Log.Format)
	}
	if c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limit settings must not be negative")
	}
	return nil
}

// IsProduction reports whether the service runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
