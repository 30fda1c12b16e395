package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken string
	// FakeDate pins the game clock for testing: "YYYY-MM-DD" or
	// "YYYY-MM-DDTHH:MM:SS". Empty means real time.
	FakeDate string
	Database DatabaseConfig
}

// DatabaseConfig holds database connection settings. The default is an
// embedded sqlite file; postgres is supported for hosted deployments.
type DatabaseConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		FakeDate: os.Getenv("GAME_FAKE_DATE"),
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite3"),
			Path:     getEnv("DB_PATH", "wordlebot.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "wordlebot"),
			User:     getEnv("DB_USER", "wordlebot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	switch cfg.Database.Driver {
	case "sqlite3":
	case "postgres":
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required for postgres")
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	return cfg, nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.Database.Driver == "sqlite3" {
		return c.Database.Path
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// FakeTime parses the fake-date override in the given location. A
// date-only value pins the clock to noon so midnight-lock calculations
// behave sensibly.
func (c *Config) FakeTime(loc *time.Location) (time.Time, bool, error) {
	if c.FakeDate == "" {
		return time.Time{}, false, nil
	}

	if t, err := time.ParseInLocation("2006-01-02T15:04:05", c.FakeDate, loc); err == nil {
		return t, true, nil
	}

	t, err := time.ParseInLocation("2006-01-02", c.FakeDate, loc)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid GAME_FAKE_DATE %q: %w", c.FakeDate, err)
	}
	return t.Add(12 * time.Hour), true, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
