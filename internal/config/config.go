// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultJWTSecret     = "your-secret-key-change-in-production"
	defaultOwnerPassword = "shopsmart-owner"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Auth        AuthConfig
	Catalog     CatalogConfig
	Assets      AssetsConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Log         LogConfig
	I18n        I18nConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type AuthConfig struct {
	SecretKey      string
	AccessTokenTTL int // in hours
	OwnerName      string
	OwnerEmail     string
	OwnerPassword  string
}

type CatalogConfig struct {
	SubmitDelayMs       int
	PlaceholderImageURL string
	ClosePolicy         string // "cancel" or "finish"
}

type AssetsConfig struct {
	MaxSize       int64 // in bytes
	PublicBaseURL string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	UploadsPerMinute  int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string // "json" or "text"
}

type I18nConfig struct {
	DefaultLocale string
}

// Load reads the configuration from the environment. envFile, when not empty,
// is loaded first; a missing file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		godotenv.Load(envFile)
	}

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Auth: AuthConfig{
			SecretKey:      getEnv("JWT_SECRET", defaultJWTSecret),
			AccessTokenTTL: getEnvAsInt("JWT_ACCESS_TTL", 24),
			OwnerName:      getEnv("OWNER_NAME", "Store Owner"),
			OwnerEmail:     getEnv("OWNER_EMAIL", "owner@shopsmart.com"),
			OwnerPassword:  getEnv("OWNER_PASSWORD", defaultOwnerPassword),
		},
		Catalog: CatalogConfig{
			SubmitDelayMs:       getEnvAsInt("CATALOG_SUBMIT_DELAY_MS", 1000),
			PlaceholderImageURL: getEnv("CATALOG_PLACEHOLDER_IMAGE_URL", "https://placehold.co/100x100?text=No+Image"),
			ClosePolicy:         strings.ToLower(getEnv("CATALOG_CLOSE_POLICY", "cancel")),
		},
		Assets: AssetsConfig{
			MaxSize:       int64(getEnvAsInt("ASSET_MAX_SIZE_MB", 10)) * 1024 * 1024,
			PublicBaseURL: strings.TrimSuffix(getEnv("ASSET_PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 10),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 20),
			UploadsPerMinute:  getEnvAsInt("RATE_LIMIT_UPLOADS_PER_MINUTE", 10),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", ""),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Auth.SecretKey == defaultJWTSecret && c.IsProduction() {
		return fmt.Errorf("JWT secret key must be changed in production")
	}

	if c.Auth.OwnerPassword == defaultOwnerPassword && c.IsProduction() {
		return fmt.Errorf("owner password must be changed in production")
	}

	if c.Catalog.ClosePolicy != "cancel" && c.Catalog.ClosePolicy != "finish" {
		return fmt.Errorf("invalid catalog close policy %q", c.Catalog.ClosePolicy)
	}

	if c.Catalog.SubmitDelayMs < 0 {
		return fmt.Errorf("catalog submit delay must not be negative")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *CatalogConfig) SubmitDelay() time.Duration {
	return time.Duration(c.SubmitDelayMs) * time.Millisecond
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
