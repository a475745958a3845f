// Package config provides configuration management for the application
package config

import (
	"os"
	"strconv"
	"time"
)

// RedisConfig holds Redis/Valkey configuration
type RedisConfig struct {
	Enabled bool
	// URI is prioritized if provided, otherwise individual connection parameters are used
	URI       string
	Host      string
	Port      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
	// TTL for stored entities (0 means no expiration)
	DataTTL time.Duration
}

// GetRedisConfig loads Redis/Valkey configuration from environment variables
func GetRedisConfig() RedisConfig {
	// Parse TTL from environment variable (in hours); 0 keeps entities forever
	ttlHours, _ := strconv.Atoi(getEnv("REDIS_DATA_TTL_HOURS", "0"))
	ttl := time.Duration(ttlHours) * time.Hour

	db, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return RedisConfig{
		Enabled:   getEnvBool("REDIS_ENABLED", false),
		URI:       getEnv("REDIS_URI_FAIRROOMS", ""),
		Host:      getEnv("REDIS_HOST_FAIRROOMS", getEnv("REDIS_ADDRESS", "localhost")),
		Port:      getEnv("REDIS_PORT_FAIRROOMS", "6379"),
		Username:  getEnv("REDIS_USERNAME_FAIRROOMS", ""),
		Password:  getEnv("REDIS_PASSWORD_FAIRROOMS", getEnv("REDIS_PASSWORD", "")),
		DB:        db,
		KeyPrefix: getEnv("REDIS_KEY_PREFIX", "fairrooms:"),
		DataTTL:   ttl,
	}
}

// GetSeedFilePath returns the path of the seed dataset file, empty when the
// compiled-in default dataset should be used
func GetSeedFilePath() string {
	return getEnv("SEED_FILE", "")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves a boolean environment variable
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
