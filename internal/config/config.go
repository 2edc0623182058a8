package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Scheduling
	Timezone                    string `mapstructure:"TIMEZONE"`
	DefaultExpansionHorizonDays int    `mapstructure:"DEFAULT_EXPANSION_HORIZON_DAYS"`
	MaxExpansionHorizonDays     int    `mapstructure:"MAX_EXPANSION_HORIZON_DAYS"`

	// JWT configuration
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	JWTAccessTTL  time.Duration `mapstructure:"JWT_ACCESS_TTL"`
	JWTRefreshTTL time.Duration `mapstructure:"JWT_REFRESH_TTL"`

	// Identity provider (OAuth2)
	OAuthClientID     string   `mapstructure:"OAUTH_CLIENT_ID"`
	OAuthClientSecret string   `mapstructure:"OAUTH_CLIENT_SECRET"`
	OAuthAuthURL      string   `mapstructure:"OAUTH_AUTH_URL"`
	OAuthTokenURL     string   `mapstructure:"OAUTH_TOKEN_URL"`
	OAuthUserInfoURL  string   `mapstructure:"OAUTH_USERINFO_URL"`
	OAuthRedirectURL  string   `mapstructure:"OAUTH_REDIRECT_URL"`
	OAuthScopes       []string `mapstructure:"OAUTH_SCOPES"`
	FrontendURL       string   `mapstructure:"FRONTEND_URL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Redis (token store, rate limiting); empty address disables it
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	RateLimitRequests int           `mapstructure:"RATE_LIMIT_REQUESTS"`
	RateLimitWindow   time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`

	// NATS events; empty URL disables publishing
	NATSURL           string `mapstructure:"NATS_URL"`
	NATSSubjectPrefix string `mapstructure:"NATS_SUBJECT_PREFIX"`

	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
	SwaggerEnabled bool `mapstructure:"SWAGGER_ENABLED"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.AllowedOrigins = splitList(config.AllowedOrigins)
	config.OAuthScopes = splitList(config.OAuthScopes)

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "marina_guard")
	v.SetDefault("DB_SSL_MODE", "disable")

	// Scheduling defaults
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("DEFAULT_EXPANSION_HORIZON_DAYS", 30)
	v.SetDefault("MAX_EXPANSION_HORIZON_DAYS", 366)

	// JWT defaults
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ACCESS_TTL", time.Hour)
	v.SetDefault("JWT_REFRESH_TTL", 30*24*time.Hour)

	// Identity provider defaults
	v.SetDefault("OAUTH_CLIENT_ID", "")
	v.SetDefault("OAUTH_CLIENT_SECRET", "")
	v.SetDefault("OAUTH_AUTH_URL", "")
	v.SetDefault("OAUTH_TOKEN_URL", "")
	v.SetDefault("OAUTH_USERINFO_URL", "")
	v.SetDefault("OAUTH_REDIRECT_URL", "http://localhost:7008/api/v1/auth/callback")
	v.SetDefault("OAUTH_SCOPES", []string{"openid", "email", "profile"})
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")

	// CORS defaults
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Redis defaults
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATE_LIMIT_REQUESTS", 120)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Minute)

	// NATS defaults
	v.SetDefault("NATS_URL", "")
	v.SetDefault("NATS_SUBJECT_PREFIX", "marina")

	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("SWAGGER_ENABLED", true)
}

// splitList accepts both yaml lists and comma separated env values
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if _, err := time.LoadLocation(config.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", config.Timezone, err)
	}

	if config.DefaultExpansionHorizonDays <= 0 {
		return fmt.Errorf("DEFAULT_EXPANSION_HORIZON_DAYS must be positive")
	}
	if config.MaxExpansionHorizonDays < config.DefaultExpansionHorizonDays {
		return fmt.Errorf("MAX_EXPANSION_HORIZON_DAYS must be at least DEFAULT_EXPANSION_HORIZON_DAYS")
	}

	return nil
}

// Location returns the timezone pattern times of day are interpreted in
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RedisEnabled reports whether a redis address is configured
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// OAuthEnabled reports whether the identity provider is configured
func (c *Config) OAuthEnabled() bool {
	return c.OAuthClientID != "" && c.OAuthAuthURL != "" && c.OAuthTokenURL != ""
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
