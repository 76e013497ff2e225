package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API         APIConfig
	Credentials CredentialsConfig
	Auth        AuthConfig
}

type APIConfig struct {
	BaseURL  string
	Timeout  time.Duration
	PageSize int
	Debug    bool // log full request/response lines at debug level
}

type CredentialsConfig struct {
	Path string
}

type AuthConfig struct {
	PendingIntentTTL time.Duration
}

func Load() *Config {
	// Optional developer overrides; missing .env is not an error.
	_ = godotenv.Load()

	return &Config{
		API: APIConfig{
			BaseURL:  getEnv("HOTEL_API_URL", "http://localhost:9192"),
			Timeout:  getDuration("HOTEL_API_TIMEOUT", 30*time.Second),
			PageSize: getInt("HOTEL_API_PAGE_SIZE", 6),
			Debug:    getBool("HOTEL_API_DEBUG", false),
		},
		Credentials: CredentialsConfig{
			Path: getEnv("HOTEL_CREDENTIALS_PATH", defaultCredentialsPath()),
		},
		Auth: AuthConfig{
			PendingIntentTTL: getDuration("HOTEL_PENDING_INTENT_TTL", 5*time.Minute),
		},
	}
}

func defaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "credentials.json"
	}
	return filepath.Join(home, ".lakeside", "credentials.json")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
