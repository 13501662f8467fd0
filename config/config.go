// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cloud    CloudConfig
	Device   DeviceConfig
	Sync     SyncConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// DatabaseConfig holds local entity store configuration. The URL scheme
// selects the driver: postgres:// for a self-hosted hub deployment, any
// other value is treated as a SQLite path (the device-local default).
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// CloudConfig holds the remote record store configuration. Container names
// the private record database all zones are scoped under.
type CloudConfig struct {
	RedisURL  string
	Password  string
	DB        int
	Container string
}

// DeviceConfig holds device enrollment configuration. PassphraseHash is the
// bcrypt hash of the container passphrase; enrollment is disabled while it
// is empty.
type DeviceConfig struct {
	TokenSecret    string
	TokenExpiry    time.Duration
	PassphraseHash string
}

// SyncConfig holds sync engine configuration.
type SyncConfig struct {
	Interval      time.Duration
	WorkerEnabled bool
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "127.0.0.1"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", "file:rinventory.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Cloud: CloudConfig{
			RedisURL:  getEnv("CLOUD_REDIS_URL", "redis://localhost:6379/0"),
			Password:  getEnv("CLOUD_REDIS_PASSWORD", ""),
			DB:        getEnvAsInt("CLOUD_REDIS_DB", 0),
			Container: getEnv("CLOUD_CONTAINER", "iCloud.com.somebud.rInventory"),
		},
		Device: DeviceConfig{
			TokenSecret:    getEnv("DEVICE_TOKEN_SECRET", "change-me-in-production"),
			TokenExpiry:    getEnvAsDuration("DEVICE_TOKEN_EXPIRY", 90*24*time.Hour),
			PassphraseHash: getEnv("CONTAINER_PASSPHRASE_HASH", ""),
		},
		Sync: SyncConfig{
			Interval:      getEnvAsDuration("SYNC_INTERVAL", 30*time.Second),
			WorkerEnabled: getEnvAsBool("SYNC_WORKER_ENABLED", true),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
