package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/frbarbre/contacts-api/core/db"
)

type Config struct {
	OTel OTelConfig
	Auth AuthConfig
	Env  string
	Port string
	DB   db.Config
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

type AuthConfig struct {
	// TokenTTLDays controls how long issued bearer tokens stay valid.
	TokenTTLDays int
}

// Load loads configuration from environment variables.
// In development it also reads a local .env file when present.
func Load() (Config, error) {
	if getEnv("CONTACTS_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	cfg := Config{
		Env:  getEnv("CONTACTS_ENV", "development"),
		Port: getEnv("PORT", "8080"),
		DB: db.Config{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("DB_NAME", "contacts"),
			Username: getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
		},
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "contacts-api"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		Auth: AuthConfig{
			TokenTTLDays: getEnvInt("AUTH_TOKEN_TTL_DAYS", 180),
		},
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
