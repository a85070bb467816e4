package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Session  SessionConfig
	Catalog  CatalogConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type UpstreamConfig struct {
	BaseURL       string
	Timeout       time.Duration
	FallbackToken string
	RatePerSecond int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type SessionConfig struct {
	TTL time.Duration
}

type CatalogConfig struct {
	RefreshSpec string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Upstream: UpstreamConfig{
			BaseURL:       getEnv("UPSTREAM_API_URL", "http://localhost:8000/api"),
			Timeout:       time.Duration(getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 30)) * time.Second,
			FallbackToken: getEnv("UPSTREAM_FALLBACK_TOKEN", "demo-token"),
			RatePerSecond: getEnvAsInt("UPSTREAM_RATE_PER_SECOND", 20),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			TTL: time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		},
		Catalog: CatalogConfig{
			RefreshSpec: getEnv("CATALOG_REFRESH_SPEC", "0 0 0 * * *"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("UPSTREAM_API_URL is required")
	}

	if c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}

	return nil
}

// Addr returns the Redis address in host:port form.
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
