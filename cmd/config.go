package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings of both services. Each binary reads the fields it needs.
type Config struct {
	HTTPPort        string
	CatalogHTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	CatalogServiceURL string
	CatalogTimeout    time.Duration
	CatalogSeed       bool

	KafkaHost              string
	KafkaOrderChangedTopic string

	OrderStatsSchedule string
	ShutdownTimeout    time.Duration
	LogLevel           string
}

// LoadConfig reads .env when it exists and then the process environment.
// Unset variables fall back to their defaults; malformed values are an error.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading .env file: %w", err)
	}

	catalogTimeout, err := durationVariable("CATALOG_TIMEOUT", 5*time.Second)
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := durationVariable("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	catalogSeed, err := boolVariable("CATALOG_SEED", true)
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:               stringVariable("HTTP_PORT", "8080"),
		CatalogHTTPPort:        stringVariable("CATALOG_HTTP_PORT", "8081"),
		DBHost:                 stringVariable("DB_HOST", "localhost"),
		DBPort:                 stringVariable("DB_PORT", "5432"),
		DBUser:                 stringVariable("DB_USER", "postgres"),
		DBPassword:             stringVariable("DB_PASSWORD", "postgres"),
		DBName:                 stringVariable("DB_NAME", "ordering"),
		DBSslMode:              stringVariable("DB_SSLMODE", "disable"),
		CatalogServiceURL:      stringVariable("CATALOG_SERVICE_URL", "http://localhost:8081"),
		CatalogTimeout:         catalogTimeout,
		CatalogSeed:            catalogSeed,
		KafkaHost:              stringVariable("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: stringVariable("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		OrderStatsSchedule:     stringVariable("ORDER_STATS_SCHEDULE", "*/30 * * * * *"),
		ShutdownTimeout:        shutdownTimeout,
		LogLevel:               stringVariable("LOG_LEVEL", "info"),
	}, nil
}

// DSN returns the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func stringVariable(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: %s is not positive", key, value)
	}
	return d, nil
}

func boolVariable(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
