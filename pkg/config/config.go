package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"shopsphere/pkg/logger"
)

type Config struct {
	ServerPort       string
	Environment      string
	FirestoreProject string
	// Path to a service account JSON file; empty means application
	// default credentials.
	CredentialsFile string

	JWTSecret string
	JWTExpiry time.Duration

	GeminiAPIKey string
	GeminiAPIURL string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		FirestoreProject: getEnv("FIRESTORE_PROJECT_ID", ""),
		CredentialsFile:  getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTExpiry:        time.Duration(getEnvAsInt64("JWT_EXPIRY_MINUTES", 60)) * time.Minute,
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiAPIURL:     getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
