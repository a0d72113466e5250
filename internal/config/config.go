// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from an optional
// .env override file and environment variables. It is constructed once at
// process start and passed explicitly; there is no package-level instance.
type Config struct {
	AppName     string `mapstructure:"APP_NAME"`
	Environment string `mapstructure:"ENVIRONMENT"`
	Debug       bool   `mapstructure:"DEBUG"`

	DatabaseURL string `mapstructure:"DATABASE_URL"`

	JWTSecretKey             string `mapstructure:"JWT_SECRET_KEY"`
	JWTRefreshSecretKey      string `mapstructure:"JWT_REFRESH_SECRET_KEY"`
	JWTAlgorithm             string `mapstructure:"JWT_ALGORITHM"`
	AccessTokenExpireMinutes int    `mapstructure:"ACCESS_TOKEN_EXPIRE_MINUTES"`
	RefreshTokenExpireDays   int    `mapstructure:"REFRESH_TOKEN_EXPIRE_DAYS"`

	// Comma-delimited allow-list; parsed via CORSOriginsList.
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`

	// Optional user-read cache; empty disables caching.
	RedisURL string `mapstructure:"REDIS_URL"`

	AzureKeyVaultURL string `mapstructure:"AZURE_KEY_VAULT_URL"`
	UseAzureKeyVault bool   `mapstructure:"USE_AZURE_KEY_VAULT"`

	AppInsightsConnectionString string `mapstructure:"APPINSIGHTS_CONNECTION_STRING"`
}

// LoadConfig loads configuration from the local .env override file (if
// present) and environment variables. Environment variables take precedence
// over file values; unknown keys in either source are ignored.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom is LoadConfig with an explicit override file path.
func LoadConfigFrom(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	// The override file is optional; a missing file is not an error.
	if err := v.ReadInConfig(); err == nil {
		log.Printf("Loaded configuration overrides from %s", envFile)
	}

	// Defaults double as key registrations so AutomaticEnv lookups reach
	// Unmarshal. Required keys default to empty and are caught by Validate.
	v.SetDefault("APP_NAME", "TravelMeetup API")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("DEBUG", true)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("JWT_SECRET_KEY", "")
	v.SetDefault("JWT_REFRESH_SECRET_KEY", "")
	v.SetDefault("JWT_ALGORITHM", "HS256")
	v.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 15)
	v.SetDefault("REFRESH_TOKEN_EXPIRE_DAYS", 7)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:8000")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("AZURE_KEY_VAULT_URL", "")
	v.SetDefault("USE_AZURE_KEY_VAULT", false)
	v.SetDefault("APPINSIGHTS_CONNECTION_STRING", "")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present. A missing
// required value is fatal: the process must not start with an empty database
// URL or signing secret.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.JWTSecretKey == "" {
		return errors.New("JWT_SECRET_KEY is required")
	}
	if c.JWTRefreshSecretKey == "" {
		return errors.New("JWT_REFRESH_SECRET_KEY is required")
	}
	if c.AccessTokenExpireMinutes <= 0 {
		return errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	if c.RefreshTokenExpireDays <= 0 {
		return errors.New("REFRESH_TOKEN_EXPIRE_DAYS must be positive")
	}

	if c.IsProduction() {
		if c.Debug {
			log.Println("WARNING: DEBUG is enabled in production.")
		}
		if len(c.JWTSecretKey) < 32 {
			log.Println("WARNING: JWT_SECRET_KEY is shorter than 32 characters. Use a stronger secret in production.")
		}
	}

	return nil
}

// IsProduction reports whether the environment is production-like.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod" || env == "staging" || env == "stage"
}

// CORSOriginsList parses the comma-delimited CORS allow-list into trimmed
// origin strings, order preserved. A trailing comma yields a trailing empty
// entry, matching a naive split.
func (c *Config) CORSOriginsList() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, len(parts))
	for i, p := range parts {
		origins[i] = strings.TrimSpace(p)
	}
	return origins
}
