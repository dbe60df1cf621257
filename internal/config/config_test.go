package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gopherblog", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr())
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.DefaultModel)
	assert.Equal(t, 90, cfg.OpenAI.TimeoutSeconds)
	assert.Equal(t, "audit.event.record", cfg.RabbitMQ.AuditQueue)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("MYSQL_DB", "gopherblog_test")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Contains(t, cfg.MySQLDSN(), "/gopherblog_test?")
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, 90, cfg.OpenAI.TimeoutSeconds, "bad numeric env falls back to default")
}
