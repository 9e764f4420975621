package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first if present; real environment
// variables take precedence over it.
//
// Recognized variables:
//
//	HTTP_ADDR       bind address (e.g. ":5000")
//	DATABASE_DSN    PostgreSQL DSN
//	JWT_SECRET      token signing secret
//	TOKEN_VALIDITY  token lifetime, Go duration string (e.g. "8h")
//	UPLOAD_DIR      image storage directory
func parseEnv(config *Config) {
	// Missing .env is not an error; the process env alone is fine.
	_ = godotenv.Load()

	if v := os.Getenv("HTTP_ADDR"); v != "" {
		config.HTTPAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidity = d
		}
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		config.UploadDir = v
	}
}
