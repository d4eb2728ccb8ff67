package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Store
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	// Tokens
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
	JWTTTLMin int    `envconfig:"JWT_TTL_MIN" default:"60"`
	// Payments
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	// Network
	Port string `envconfig:"PORT" required:"true"`
	// Google sign-in (optional; routes 500 if unset)
	GoogleClientID    string `envconfig:"GOOGLE_CLIENT_ID"`
	GoogleSecret      string `envconfig:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL string `envconfig:"GOOGLE_REDIRECT_URL" default:"http://localhost:8080/auth/google/callback"`
	// Policy: whether a rejected teacher applicant may apply again
	AllowReapply bool `envconfig:"ALLOW_REAPPLY" default:"false"`
}

// Load reads the environment and fails on any missing required value,
// so a misconfigured deployment dies at startup rather than mid-request.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}
