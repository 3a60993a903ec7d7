package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL     string
	HTTPAddr        string
	JWTSecret       []byte
	JWTIssuer       string
	CookieDomain    string
	SecureCookies   bool
	ResendAPIKey    string
	ReportEmailFrom string
	DropOffAfter    time.Duration
}

// Load reads the environment (.env supported for local development). The
// signing secret and database URL are required; there are no fallback
// defaults for either.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	cfg := &Config{
		DatabaseURL:     databaseURL,
		HTTPAddr:        os.Getenv("HTTP_ADDR"),
		JWTSecret:       []byte(secret),
		JWTIssuer:       os.Getenv("JWT_ISSUER"),
		CookieDomain:    os.Getenv("COOKIE_DOMAIN"),
		SecureCookies:   os.Getenv("COOKIE_SECURE") != "false",
		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		ReportEmailFrom: os.Getenv("REPORT_EMAIL_FROM"),
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	if raw := os.Getenv("SESSION_DROPOFF_AFTER"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("SESSION_DROPOFF_AFTER must be a positive duration: %q", raw)
		}
		cfg.DropOffAfter = d
	}
	return cfg, nil
}
