package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port    string
	AppName string
}

type DatabaseConfig struct {
	URL  string
	Name string
}

// CacheConfig is disabled when Addr is empty.
type CacheConfig struct {
	Addr     string
	Password string
	TTL      time.Duration
}

type LogConfig struct {
	Level      string
	Format     string
	FluentHost string
	FluentPort int
}

// Load reads the process environment once at start. A .env file in the
// working directory is merged in when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using system environment variables")
	}

	return &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8000"),
			AppName: getEnv("APP_NAME", "real-estate-api"),
		},
		Database: DatabaseConfig{
			URL:  os.Getenv("DATABASE_URL"),
			Name: os.Getenv("DATABASE_NAME"),
		},
		Cache: CacheConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			TTL:      getEnvAsDuration("CACHE_TTL", 30*time.Second),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "text"),
			FluentHost: os.Getenv("FLUENT_HOST"),
			FluentPort: getEnvAsInt("FLUENT_PORT", 24224),
		},
	}
}

// Configured reports whether both storage settings are present.
func (c DatabaseConfig) Configured() bool {
	return c.URL != "" && c.Name != ""
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
		slog.Warn("Invalid integer in environment, using default", "key", key, "default", defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("Invalid duration in environment, using default", "key", key, "default", defaultValue)
		return defaultValue
	}

	return value
}
