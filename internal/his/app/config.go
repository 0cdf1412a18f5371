package app

import (
	"os"
	"strconv"
	"time"

	"github.com/Killercavin/HealthInfoSystem/pkg/httpx"
	"github.com/joho/godotenv"
)

type Config struct {
	Port                int           // HTTP server port (default: 8080)
	DatabaseFile        string        // Path to SQLite database file (default: data/healthinfosystem.db)
	DatabaseMaxConns    int           // Max open connections in the pool (default: 3)
	StaticDir           string        // Optional: serve the front end from disk instead of the embedded bundle
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	LogFile             string        // Optional: also write logs to this file, rotated
	LogFileMaxSizeMB    int           // Rotate after this many megabytes (default: 50)
	LogFileMaxBackups   int           // Rotated files to keep (default: 5)
	LogFileMaxAgeDays   int           // Days to keep rotated files (default: 30)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	ReadLimit         httpx.RateLimitConfig // Per-IP budget for reads (RATELIMIT_READ_*)
	WriteLimit        httpx.RateLimitConfig // Per-IP budget for writes (RATELIMIT_WRITE_*)
	TrustProxyHeaders bool                  // Key rate limits by X-Forwarded-For / X-Real-IP (default: false)
}

// LoadConfig reads the configuration from the environment. Variables from the
// given dotenv files (or ./.env when none are given) are loaded first but never
// override variables that are already set.
func LoadConfig(envFiles ...string) Config {
	_ = godotenv.Load(envFiles...) // a missing .env is fine

	return Config{
		Port:                getEnvIntOrDefault("PORT", 8080),
		DatabaseFile:        getEnvOrDefault("HIS_DATABASE_FILE", "data/healthinfosystem.db"),
		DatabaseMaxConns:    getEnvIntOrDefault("HIS_DATABASE_MAX_CONNS", 3),
		StaticDir:           os.Getenv("HIS_STATIC_DIR"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		LogFile:             os.Getenv("LOG_FILE"),
		LogFileMaxSizeMB:    getEnvIntOrDefault("LOG_FILE_MAX_SIZE_MB", 50),
		LogFileMaxBackups:   getEnvIntOrDefault("LOG_FILE_MAX_BACKUPS", 5),
		LogFileMaxAgeDays:   getEnvIntOrDefault("LOG_FILE_MAX_AGE_DAYS", 30),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		ReadLimit:         httpx.ParseRateLimitFromEnv("READ", httpx.ReadLimit),
		WriteLimit:        httpx.ParseRateLimitFromEnv("WRITE", httpx.WriteLimit),
		TrustProxyHeaders: getEnvBoolOrDefault("TRUST_PROXY_HEADERS", false),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
