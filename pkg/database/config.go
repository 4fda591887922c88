package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// LoadConfigFromEnv loads database configuration from environment variables
func LoadConfigFromEnv() (Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault("DATABASE_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DATABASE_PORT: %w", err)
	}

	maxOpen, _ := strconv.Atoi(getEnvOrDefault("DATABASE_MAX_OPEN_CONNS", "10"))
	maxIdle, _ := strconv.Atoi(getEnvOrDefault("DATABASE_MAX_IDLE_CONNS", "5"))

	return Config{
		Host:            getEnvOrDefault("DATABASE_HOST", "localhost"),
		Port:            port,
		User:            getEnvOrDefault("DATABASE_USER", "postgres"),
		Password:        os.Getenv("DATABASE_PASSWORD"),
		Database:        getEnvOrDefault("DATABASE_NAME", "queryflow"),
		SSLMode:         getEnvOrDefault("DATABASE_SSLMODE", "disable"),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
