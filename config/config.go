package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Host          string
	Port          string
	Environment   string
	ProjectId     string
	Bucket        string
	AuthKeySecret string
	DatabaseURL   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	bucket := getEnv("GCS_BUCKET", "")
	if bucket == "" {
		log.Fatal("GCS_BUCKET environment variable is required")
	}

	// An empty secret is a valid configuration: mutating requests then
	// pass without presenting a header. Warn so it is never silent.
	secret := getEnv("AUTH_KEY_SECRET", "")
	if secret == "" {
		log.Println("AUTH_KEY_SECRET is empty, mutating requests are unauthenticated")
	}

	return &Config{
		Host:          getEnv("HOST", "0.0.0.0"),
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "production"),
		ProjectId:     getEnv("GCP_PROJECT_ID", ""),
		Bucket:        bucket,
		AuthKeySecret: secret,
		DatabaseURL:   getDatabaseURL(),
	}
}

func getDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	dbname := getEnv("DB_NAME", "postgres")
	sslmode := getEnv("DB_SSLMODE", "disable")

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)
}

func getEnv(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
