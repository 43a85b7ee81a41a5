package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the full application configuration, populated from
// environment variables (a .env file is loaded in development).
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "filmrate"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnvInt("PG_PORT", 5432),
			User:     getEnv("PG_USER", "postgres"),
			Password: getEnv("PG_PASSWORD", "postgres"),
			Database: getEnv("PG_DATABASE", "filmrate"),
			SSLMode:  getEnv("PG_SSLMODE", "disable"),

			MaxConns:          int32(getEnvInt("PG_MAX_CONNS", 10)),
			MinConns:          int32(getEnvInt("PG_MIN_CONNS", 2)),
			MaxConnLifetime:   getEnvDuration("PG_MAX_CONN_LIFETIME", time.Hour),
			MaxConnIdleTime:   getEnvDuration("PG_MAX_CONN_IDLE_TIME", 30*time.Minute),
			HealthCheckPeriod: getEnvDuration("PG_HEALTH_CHECK_PERIOD", time.Minute),

			MaxRetries:     getEnvInt("PG_MAX_RETRIES", 5),
			RetryDelay:     getEnvDuration("PG_RETRY_DELAY", time.Second),
			ConnectTimeout: getEnvDuration("PG_CONNECT_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
	}

	if cfg.Database.MaxConns < cfg.Database.MinConns {
		return nil, fmt.Errorf("PG_MAX_CONNS (%d) must be >= PG_MIN_CONNS (%d)",
			cfg.Database.MaxConns, cfg.Database.MinConns)
	}

	return cfg, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
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
