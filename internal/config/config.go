package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Port             string
	DBDriver         string
	DBConn           string
	LogLevel         string
	JWTSecret        string
	TokenTTL         time.Duration
	HMACSecret       string
	CORSOrigins      []string
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	SenderEmail      string
	ReminderEnabled  bool
	ReminderSchedule string
}

var defaults = map[string]any{
	"PORT":              "8080",
	"DB_DRIVER":         "postgres",
	"DB_CONN":           "host=localhost port=5436 user=test password=test dbname=finance sslmode=disable",
	"LOG_LEVEL":         "INFO",
	"JWT_SECRET":        "secret",
	"TOKEN_TTL":         "720h",
	"HMAC_SECRET":       "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6",
	"CORS_ORIGINS":      "http://localhost:3000,http://localhost:5173",
	"SMTP_HOST":         "",
	"SMTP_PORT":         "587",
	"SMTP_USERNAME":     "",
	"SMTP_PASSWORD":     "",
	"SENDER_EMAIL":      "",
	"REMINDER_ENABLED":  false,
	"REMINDER_SCHEDULE": "0 8 * * *",
}

// NewConfig loads configuration from environment variables, reading a .env
// file first when one is present in the working directory.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	cfg := &Config{
		Port:             v.GetString("PORT"),
		DBDriver:         v.GetString("DB_DRIVER"),
		DBConn:           v.GetString("DB_CONN"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		TokenTTL:         v.GetDuration("TOKEN_TTL"),
		HMACSecret:       v.GetString("HMAC_SECRET"),
		CORSOrigins:      splitList(v.GetString("CORS_ORIGINS")),
		SMTPHost:         v.GetString("SMTP_HOST"),
		SMTPPort:         v.GetString("SMTP_PORT"),
		SMTPUsername:     v.GetString("SMTP_USERNAME"),
		SMTPPassword:     v.GetString("SMTP_PASSWORD"),
		SenderEmail:      v.GetString("SENDER_EMAIL"),
		ReminderEnabled:  v.GetBool("REMINDER_ENABLED"),
		ReminderSchedule: v.GetString("REMINDER_SCHEDULE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required settings are present
func (c *Config) Validate() error {
	if c.DBConn == "" {
		return fmt.Errorf("DB_CONN is required")
	}
	if c.DBDriver != "postgres" && c.DBDriver != "sqlite3" {
		return fmt.Errorf("DB_DRIVER must be postgres or sqlite3, got %q", c.DBDriver)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if c.HMACSecret == "" {
		return fmt.Errorf("HMAC_SECRET is required")
	}
	if c.ReminderEnabled && c.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST is required when REMINDER_ENABLED is set")
	}
	return nil
}

// MailEnabled reports whether SMTP delivery is configured
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SenderEmail != ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
