package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the binaries read from the environment.
type Config struct {
	// HTTP
	Port        string
	CORSOrigins []string

	// Database
	DatabaseURL string

	// Auth (tokens are issued by the external sign-in capability)
	JWTSecret string

	// Mailtrap
	MailtrapToken   string
	MailtrapInboxID string // set for sandbox delivery
	SenderName      string
	SenderEmail     string

	// Base URL used to build document links in emails
	BaseURL string

	// Optional secret for signed, time-limited document links.
	// When empty the PDF endpoint accepts bare invoice ids.
	DocLinkSecret string
	DocLinkTTL    time.Duration

	// Policy: re-send the "new invoice" email on update
	NotifyOnUpdate bool

	// Reminder job cadence
	ReminderInterval time.Duration

	// Logging
	LogLevel  string
	LogFormat string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		CORSOrigins:      splitEnv("CORS_ORIGINS", "http://localhost:3000"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		MailtrapToken:    os.Getenv("MAILTRAP_TOKEN"),
		MailtrapInboxID:  os.Getenv("MAILTRAP_INBOX_ID"),
		SenderName:       getEnv("SENDER_NAME", "Bit-Facturen"),
		SenderEmail:      getEnv("SENDER_EMAIL", "me@codebyjaron.nl"),
		BaseURL:          getEnv("BASE_URL", "http://localhost:8080"),
		DocLinkSecret:    os.Getenv("DOC_LINK_SECRET"),
		DocLinkTTL:       getDuration("DOC_LINK_TTL", 30*24*time.Hour),
		NotifyOnUpdate:   getBool("NOTIFY_ON_UPDATE", true),
		ReminderInterval: getDuration("REMINDER_INTERVAL", time.Hour),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitEnv(key, def string) []string {
	raw := getEnv(key, def)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
