package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"courier/cmd"
	"courier/internal/adapters/out/postgres/driverrepo"
	"courier/internal/adapters/out/postgres/orderrepo"
	"courier/internal/core/application/pricing"
	"courier/internal/pkg/logging"
)

func main() {
	config := getConfigs()
	logger := logging.NewLogger(config.LogLevel)

	gormDB, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &driverrepo.DriverDTO{}); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	root, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		logger.Error("failed to build composition root", "error", err)
		os.Exit(1)
	}
	defer root.Close()

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	root.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil {
			logger.Info("http server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	// .env is optional outside development; environment variables win.
	_ = godotenv.Load(".env")

	for _, required := range []string{"DB_USER", "DB_PASSWORD", "DB_NAME", "LOCATIONIQ_API_KEY"} {
		if os.Getenv(required) == "" {
			log.Fatalf("Missing required environment variable %s", required)
		}
	}

	return cmd.Config{
		HTTPPort: envOrDefault("HTTP_PORT", "8080"),
		LogLevel: envOrDefault("LOG_LEVEL", "info"),

		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),

		LocationIQBaseURL: os.Getenv("LOCATIONIQ_BASE_URL"),
		LocationIQAPIKey:  os.Getenv("LOCATIONIQ_API_KEY"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		GeocacheTTL:   durationEnv("GEOCACHE_TTL", 0),

		KafkaBrokers:          splitEnv("KAFKA_BROKERS"),
		KafkaOrderEventsTopic: os.Getenv("KAFKA_ORDER_EVENTS_TOPIC"),

		PricingDebounce: durationEnv("PRICING_DEBOUNCE", pricing.DefaultDebounce),
	}
}

func envOrDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitEnv(key string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
