package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from the process environment. A .env file
// in the working directory is loaded first if present; real environment
// variables take precedence over it.
//
// Recognized variables:
//
//	ADDRESS                  gRPC bind address
//	DATABASE_DSN             PostgreSQL DSN
//	DB_MAX_OPEN_CONNS        connection-pool size
//	DB_MAX_IDLE_CONNS        idle connections kept in the pool
//	SECRET_KEY               JWT HMAC secret
//	ACCESS_TOKEN_VALIDITY    access token lifetime (Go duration, e.g. "30m")
//	REFRESH_TOKEN_VALIDITY   refresh token lifetime (e.g. "168h")
//
// Malformed numeric or duration values are ignored and the previous value is
// kept.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddrGRPC = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("DB_MAX_OPEN_CONNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.DBMaxOpenConns = n
		}
	}
	if v := os.Getenv("DB_MAX_IDLE_CONNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.DBMaxIdleConns = n
		}
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("ACCESS_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v := os.Getenv("REFRESH_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.RefreshTokenValidityDuration = d
		}
	}
}
