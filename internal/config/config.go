package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings for the API and migrate binaries.
type Config struct {
	DatabaseURL string
	Port        string
	Env         string // "development" or "production", controls logger config
	Blob        BlobConfig
}

// BlobConfig configures the S3-compatible object store used for product images.
type BlobConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool

	// PublicBaseURL overrides the URL prefix recorded for uploaded objects.
	// When empty the endpoint and bucket are used to build it.
	PublicBaseURL string
}

// Load reads .env when present and falls back to the process environment.
func Load() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("warning: could not load .env file:", err)
		}
	}

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Port:        getEnv("APP_PORT", "8080"),
		Env:         getEnv("APP_ENV", "development"),
		Blob: BlobConfig{
			Endpoint:      getEnv("BLOB_ENDPOINT", "localhost:9000"),
			AccessKey:     getEnv("BLOB_ACCESS_KEY", ""),
			SecretKey:     getEnv("BLOB_SECRET_KEY", ""),
			Bucket:        getEnv("BLOB_BUCKET", "product-images"),
			UseSSL:        getEnv("BLOB_USE_SSL", "false") == "true",
			PublicBaseURL: getEnv("BLOB_PUBLIC_BASE_URL", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
