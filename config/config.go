package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	CORS_ORIGIN string
	GIN_MODE    string

	DB_DRIVER string
	DB_URL    string

	UPLOAD_DIR string

	GATEWAY_DRIVER    string
	GATEWAY_URL       string
	GATEWAY_TIMEOUT   time.Duration
	GATEWAY_CURRENCY  string
	STRIPE_SECRET_KEY string

	AUTH_GATE          string
	JWT_SECRET         string
	CREDENTIAL_ENCODER string

	LOG_LEVEL  string
	LOG_FORMAT string

	API_BASE_URL string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:"+PORT)
	GIN_MODE = getEnv("GIN_MODE", "debug")

	DB_DRIVER = strings.ToLower(getEnv("DB_DRIVER", "postgres"))
	DB_URL = mustEnv("DB_URL")

	UPLOAD_DIR = getEnv("UPLOAD_DIR", "uploads")

	GATEWAY_DRIVER = strings.ToLower(getEnv("GATEWAY_DRIVER", "http"))
	GATEWAY_URL = getEnv("GATEWAY_URL", "https://insecure-gateway.com")
	GATEWAY_TIMEOUT = getDuration("GATEWAY_TIMEOUT", 0)
	GATEWAY_CURRENCY = getEnv("GATEWAY_CURRENCY", "usd")
	if GATEWAY_DRIVER == "stripe" {
		STRIPE_SECRET_KEY = mustEnv("STRIPE_SECRET_KEY")
	}

	AUTH_GATE = strings.ToLower(getEnv("AUTH_GATE", "open"))
	JWT_SECRET = getEnv("JWT_SECRET", "")
	if AUTH_GATE == "owner" {
		JWT_SECRET = mustEnv("JWT_SECRET")
	}
	CREDENTIAL_ENCODER = strings.ToLower(getEnv("CREDENTIAL_ENCODER", "plain"))

	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
	LOG_FORMAT = getEnv("LOG_FORMAT", "console")

	API_BASE_URL = getEnv("API_BASE_URL", "http://localhost:"+PORT)
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return d
}
