package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Admin session
	SessionSecret string
	SessionExpiry time.Duration
	CookieSecure  bool
	LoginPath     string

	// Identity provider (hosted mode; empty URL falls back to the local provider)
	IdentityURL string
	IdentityKey string

	// Email notifications
	ResendAPIKey string
	MailFrom     string
	MailTo       string

	// Server
	Port        string
	CORSOrigins string

	// System log retention
	LogRetention time.Duration
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "guestwall_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionExpiry: parseDuration(getEnv("SESSION_EXPIRY", "24h"), 24*time.Hour),
		CookieSecure:  getEnv("APP_ENV", "") == "production",
		LoginPath:     getEnv("LOGIN_PATH", "/admin/login"),

		IdentityURL: getEnv("IDENTITY_URL", ""),
		IdentityKey: getEnv("IDENTITY_KEY", ""),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		MailFrom:     getEnv("MAIL_FROM", "guestwall <noreply@guestwall.app>"),
		MailTo:       getEnv("MAIL_TO", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		LogRetention: parseDuration(getEnv("LOG_RETENTION", "720h"), 720*time.Hour),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
