package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite = "sqlite3"
	DriverMySQL  = "mysql"
)

var ErrMissingAPIPassword = errors.New("API_PASSWORD must be set")

type Config struct {
	AppPort           string
	AppName           string
	AppVersion        string
	APIPassword       string
	DbDriver          string
	SQLitePath        string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	CORSOrigins       []string
	TrustedProxies    []string
	TranslationFolder string
	SnapshotAt        string
	Timezone          string
	ShutdownTimeout   time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		AppName:           getEnv("APP_NAME", "taskplanner"),
		AppVersion:        os.Getenv("APP_VERSION"),
		APIPassword:       os.Getenv("API_PASSWORD"),
		DbDriver:          getEnv("DB_DRIVER", DriverSQLite),
		SQLitePath:        getEnv("SQLITE_PATH", "data/tasks.db"),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "taskplanner"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "taskplanner"),
		DbName:            getEnv("MYSQL_DATABASE", "taskplanner"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true&loc=UTC"),
		CORSOrigins:       parseList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		TrustedProxies:    parseList(os.Getenv("TRUSTED_PROXIES")),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		SnapshotAt:        getEnv("PRODUCTIVITY_SNAPSHOT_AT", "23:55"),
		Timezone:          getEnv("TIMEZONE", "UTC"),
		ShutdownTimeout:   getDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

// Validate reports settings the API server cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIPassword) == "" {
		return ErrMissingAPIPassword
	}
	return nil
}

// Location resolves Timezone, falling back to UTC for unknown names.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
