package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("COMPLETION_TIMEOUT", "not-a-duration")
	t.Setenv("MAIL_PORT", "abc")

	cfg := Load("leadgen")

	assert.Equal(t, "leadgen", cfg.ServiceName)
	assert.Equal(t, "", cfg.DB.Driver)
	assert.Equal(t, 60*time.Second, cfg.Completion.Timeout)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.False(t, cfg.Upload.Atomic)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("COMPLETION_MAX_RETRIES", "5")
	t.Setenv("UPLOAD_ATOMIC", "true")
	t.Setenv("MAIL_USER", "sales@example.com")
	t.Setenv("MAIL_FROM", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg := Load("leadgen")

	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, 5, cfg.Completion.MaxRetries)
	assert.True(t, cfg.Upload.Atomic)
	assert.Equal(t, "", cfg.Mail.From)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestFieldsOmitSecrets(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret-key")
	cfg := Load("leadgen")

	for _, f := range cfg.Fields() {
		assert.NotEqual(t, "secret-key", f.String)
	}
}
