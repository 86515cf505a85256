package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	LogLevel  string
	LogFormat string

	// ValidateOnUpdate re-runs the create-time uniqueness checks on update.
	ValidateOnUpdate bool

	ShutdownTimeout time.Duration
}

// DBConfig holds the discrete Postgres settings used when DATABASE_URL is unset.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	env := getEnv("ENV", "development")

	shutdownTimeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		shutdownTimeout = 10 * time.Second
	}

	validateOnUpdate, err := strconv.ParseBool(getEnv("PARKING_VALIDATE_ON_UPDATE", "false"))
	if err != nil {
		validateOnUpdate = false
	}

	defaultFormat := "console"
	if env == "production" {
		defaultFormat = "json"
	}

	databaseURL := getEnv("DATABASE_URL", "")
	if databaseURL == "" {
		databaseURL = loadDBConfig().DSN()
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         env,
		DatabaseURL: databaseURL,

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", defaultFormat),

		ValidateOnUpdate: validateOnUpdate,

		ShutdownTimeout: shutdownTimeout,
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func loadDBConfig() DBConfig {
	port, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		port = 5432
	}

	return DBConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		Name:     getEnv("DB_NAME", "parking_control"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

// DSN returns the Postgres connection URL.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
