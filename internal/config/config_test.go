package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestNewConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 720*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSOrigins)
	assert.False(t, cfg.ReminderEnabled)
	assert.False(t, cfg.MailEnabled())
}

func TestNewConfig_Environment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_CONN", "file:finance.db")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("CORS_ORIGINS", " https://app.example.com , ")
	t.Setenv("REMINDER_ENABLED", "true")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SENDER_EMAIL", "noreply@example.com")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite3", cfg.DBDriver)
	assert.Equal(t, "file:finance.db", cfg.DBConn)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORSOrigins)
	assert.True(t, cfg.ReminderEnabled)
	assert.True(t, cfg.MailEnabled())
}

func TestValidate(t *testing.T) {
	valid := Config{DBDriver: "postgres", DBConn: "x", JWTSecret: "s", TokenTTL: time.Hour, HMACSecret: "h"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "unknown driver", mutate: func(c *Config) { c.DBDriver = "mysql" }},
		{name: "missing conn", mutate: func(c *Config) { c.DBConn = "" }},
		{name: "missing jwt secret", mutate: func(c *Config) { c.JWTSecret = "" }},
		{name: "zero ttl", mutate: func(c *Config) { c.TokenTTL = 0 }},
		{name: "missing hmac secret", mutate: func(c *Config) { c.HMACSecret = "" }},
		{name: "reminders without smtp", mutate: func(c *Config) { c.ReminderEnabled = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
