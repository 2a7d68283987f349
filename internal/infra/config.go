package infra

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment. It is built
// once at startup and passed around by reference; nothing mutates it afterwards.
type Config struct {
	Port          string
	DatabaseDSN   string
	JWTSecret     string
	TokenTTL      time.Duration
	AllowedOrigin string
}

const defaultTokenTTL = 12 * time.Hour

func LoadConfig() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:          envOrDefault("PORT", "8080"),
		DatabaseDSN:   os.Getenv("POSTGRES_URL"),
		JWTSecret:     envOrDefault("JWT_SECRET", "dev-secret"),
		TokenTTL:      defaultTokenTTL,
		AllowedOrigin: envOrDefault("ALLOWED_ORIGIN", "*"),
	}

	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("Invalid TOKEN_TTL %q, using default: %v", raw, err)
		} else {
			cfg.TokenTTL = ttl
		}
	}

	if cfg.JWTSecret == "dev-secret" {
		log.Println("JWT_SECRET not set, using development default")
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
