package cmd

import (
	"fmt"
	"strings"
	"time"
)

// Config carries every runtime setting of the service. Values come from the
// environment (.env in development); parsing and defaulting happen in main.
type Config struct {
	HTTPPort string
	LogLevel string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LocationIQBaseURL string
	LocationIQAPIKey  string

	RedisAddr     string
	RedisPassword string
	GeocacheTTL   time.Duration

	KafkaBrokers          []string
	KafkaOrderEventsTopic string

	PricingDebounce time.Duration
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaEnabled reports whether an event broker is configured. Without one the
// service runs with a no-op publisher.
func (c Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0 && c.KafkaOrderEventsTopic != ""
}

// RedisEnabled reports whether the geocode cache is configured.
func (c Config) RedisEnabled() bool {
	return strings.TrimSpace(c.RedisAddr) != ""
}
