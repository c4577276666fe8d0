package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config collects the environment settings the server runs with.
type Config struct {
	Port           string
	TokenSecret    string
	TokenTTL       time.Duration
	AuthUsername   string
	AuthPassword   string
	AuthUserID     string
	AllowedOrigins []string
}

const (
	defaultPort     = "8080"
	defaultTokenTTL = 30 * time.Minute
)

// Load parses configuration from environment variables.
func Load() Config {
	cfg := Config{
		Port:         lookupEnvOrDefault("SERVER_PORT", defaultPort),
		TokenSecret:  os.Getenv("TOKEN_SECRET"),
		AuthUsername: os.Getenv("AUTH_USERNAME"),
		AuthPassword: os.Getenv("AUTH_PASSWORD"),
		AuthUserID:   os.Getenv("AUTH_USER_ID"),
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			cfg.TokenTTL = parsed
		} else {
			log.Printf("warning: TOKEN_TTL %q is not a valid duration, using default", ttl)
		}
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	if cfg.AuthUserID == "" {
		cfg.AuthUserID = cfg.AuthUsername
	}
	if cfg.TokenSecret == "" {
		log.Println("warning: TOKEN_SECRET is not set, login and token auth are disabled")
	}
	if cfg.AuthUsername == "" || cfg.AuthPassword == "" {
		log.Println("warning: AUTH_USERNAME/AUTH_PASSWORD not configured, login will reject all credentials")
	}
	return cfg
}

func lookupEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
