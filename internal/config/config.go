package config

import (
	"os"
	"strconv"
)

// DefaultPepper is the non-production fallback used when AUTH_PEPPER is not
// set. A deployment running on the placeholder is loudly flagged at startup.
const DefaultPepper = "local_pepper_placeholder"

// Config holds the application configuration.
type Config struct {
	ServerPort        int
	DatabasePath      string
	Pepper            string // server-side secret mixed into every token digest
	PepperConfigured  bool   // false when running on the placeholder pepper
	CORSOrigin        string
	AdminPasswordHash string // bcrypt hash; empty disables the admin endpoints
	SessionTTLDays    int
	SweepSchedule     string // cron expression for the expired-session sweeper
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	ttlStr := getEnv("SESSION_TTL_DAYS", "30")
	ttl, err := strconv.Atoi(ttlStr)
	if err != nil {
		return nil, err
	}

	pepper, pepperSet := os.LookupEnv("AUTH_PEPPER")
	if pepper == "" {
		pepper = DefaultPepper
		pepperSet = false
	}

	return &Config{
		ServerPort:        port,
		DatabasePath:      getEnv("DATABASE_PATH", "./alcanciapp.db"),
		Pepper:            pepper,
		PepperConfigured:  pepperSet,
		CORSOrigin:        getEnv("CORS_ORIGIN", "*"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		SessionTTLDays:    ttl,
		SweepSchedule:     getEnv("SWEEP_SCHEDULE", "@hourly"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
