package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Postgres (users and resources)
	DatabaseURL string

	// Mongo (GridFS blob store for file attachments)
	MongoURL      string
	MongoDatabase string

	// Redis-backed sessions (optional; in-memory when empty)
	RedisURL string

	// Generative language model endpoint
	GeminiAPIKey   string
	GeminiModel    string
	GeminiEndpoint string // override for testing, default is the hosted API

	// Prompt template overrides (optional YAML file)
	PromptsFile string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)

	// Signed download URLs
	SignedURLKey string        // HMAC key, derived from SessionSecret when empty
	SignedURLTTL time.Duration // env: SIGNED_URL_TTL, default 8760h (365 days)

	// OIDC (optional campus SSO)
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// SMTP notifications (optional)
	SMTPEnabled  bool
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Campus Resource Share"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/campusshare?sslmode=disable"),

		MongoURL:      getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "campusshare"),
		RedisURL:      getEnv("REDIS_URL", ""),

		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiEndpoint: getEnv("GEMINI_ENDPOINT", ""),
		PromptsFile:    getEnv("PROMPTS_FILE", "prompts.yaml"),

		SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		SignedURLKey:  getEnv("SIGNED_URL_KEY", ""),
		SignedURLTTL:  getDuration("SIGNED_URL_TTL", 365*24*time.Hour),

		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/sso/callback"),

		SMTPEnabled:  getEnv("SMTP_ENABLED", "") != "",
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", ""),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "Campus Resource Share"),

		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		SiteTitle:   getEnv("SITE_TITLE", "Campus Resource Share"),
		SiteTagline: getEnv("SITE_TAGLINE", "Sharing books, notes, and lab equipment across campus"),
		SiteFooter:  getEnv("SITE_FOOTER", "Campus Resource Share - equitable access to study materials"),
	}
}

// Validate checks the configuration that the process cannot run without.
// A missing model credential is the only startup-fatal condition.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return errors.New("GEMINI_API_KEY is required")
	}
	return nil
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsEmailEnabled returns true if SMTP is fully configured.
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPEnabled && c.SMTPHost != "" && c.SMTPFrom != ""
}

// IsSSOEnabled returns true if campus SSO login is configured.
func (c *Config) IsSSOEnabled() bool {
	return c.OIDCIssuer != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
