package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"

	// RateLimitOff as RATE_LIMIT disables request rate limiting.
	RateLimitOff = "off"
)

type Config struct {
	Port string

	StorageBackend   string
	PostgresURL      string
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	AutoMigrate      bool

	// Location is the reference time zone for calendar-day filters and export dates.
	Location *time.Location

	LogLevel   logrus.Level
	CORSOrigin string
	// RateLimit uses the limiter format, e.g. "100-M". Empty means disabled.
	RateLimit string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A .env file is optional; real environment variables take precedence.
	_ = godotenv.Load()

	v := viper.New()

	// In all cases the default behavior should be for the docker compose setup
	v.SetDefault("PORT", "9446")
	v.SetDefault("STORAGE_BACKEND", StorageBackendPostgres)
	v.SetDefault("POSTGRES_URL", "")
	v.SetDefault("POSTGRES_ADDRESS", "localhost")
	v.SetDefault("POSTGRES_PORT", "5433")
	v.SetDefault("POSTGRES_DB", "postgres")
	v.SetDefault("POSTGRES_USERNAME", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "testpassword")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.AutomaticEnv()

	env := Config{
		Port:             v.GetString("PORT"),
		StorageBackend:   v.GetString("STORAGE_BACKEND"),
		PostgresURL:      v.GetString("POSTGRES_URL"),
		PostgresAddress:  v.GetString("POSTGRES_ADDRESS"),
		PostgresPort:     v.GetString("POSTGRES_PORT"),
		PostgresDB:       v.GetString("POSTGRES_DB"),
		PostgresUsername: v.GetString("POSTGRES_USERNAME"),
		PostgresPassword: v.GetString("POSTGRES_PASSWORD"),
		AutoMigrate:      v.GetBool("AUTO_MIGRATE"),
		CORSOrigin:       v.GetString("CORS_ORIGIN"),
		RateLimit:        v.GetString("RATE_LIMIT"),
	}
	if env.RateLimit == RateLimitOff {
		env.RateLimit = ""
	}

	switch env.StorageBackend {
	case StorageBackendPostgres, StorageBackendMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", env.StorageBackend)
	}

	location, err := time.LoadLocation(v.GetString("TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	env.Location = location

	level, err := logrus.ParseLevel(v.GetString("LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	env.LogLevel = level

	return &env, nil
}

// PostgresConnectionString returns POSTGRES_URL when set, otherwise a DSN
// assembled from the individual POSTGRES_* settings.
func (c *Config) PostgresConnectionString() string {
	if c.PostgresURL != "" {
		return c.PostgresURL
	}
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
