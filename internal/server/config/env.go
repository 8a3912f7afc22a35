package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first if present; real environment
// variables win over the file per godotenv semantics.
//
// Recognized variables:
//
//	BOOKMARKD_ADDR             HTTP bind address (e.g., ":8080")
//	BOOKMARKD_DATABASE_DSN     PostgreSQL DSN
//	BOOKMARKD_SECRET_KEY       JWT HMAC secret
//	BOOKMARKD_TOKEN_VALIDITY   access token lifetime (Go duration, e.g. "15m")
//	BOOKMARKD_CORS_ORIGINS     comma-separated allowed origins
//	BOOKMARKD_RELEASE_MODE     "true" to run the router in release mode
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("BOOKMARKD_ADDR"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("BOOKMARKD_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("BOOKMARKD_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("BOOKMARKD_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v := os.Getenv("BOOKMARKD_CORS_ORIGINS"); v != "" {
		config.CORSAllowedOrigins = v
	}
	if v := os.Getenv("BOOKMARKD_RELEASE_MODE"); v != "" {
		config.ReleaseMode = v == "true" || v == "1"
	}
}
