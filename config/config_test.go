package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("EVENTHUB_API_URL", "")
	t.Setenv("EVENTHUB_EAGER_VALIDATION", "")
	t.Setenv("EVENTHUB_API_TIMEOUT", "")

	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, DefaultCredentialKey, cfg.Credential.Key)
	assert.True(t, cfg.Form.EagerValidation)
	assert.Same(t, cfg, AppConfig)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("EVENTHUB_API_URL", "https://events.example.com/api")
	t.Setenv("EVENTHUB_API_TIMEOUT", "3s")
	t.Setenv("EVENTHUB_EAGER_VALIDATION", "false")
	t.Setenv("EVENTHUB_CREDENTIAL_BACKEND", CredentialBackendMemory)

	cfg := LoadConfig()

	assert.Equal(t, "https://events.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.False(t, cfg.Form.EagerValidation)
	assert.Equal(t, CredentialBackendMemory, cfg.Credential.Backend)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("EVENTHUB_API_TIMEOUT", "soon")
	t.Setenv("EVENTHUB_EAGER_VALIDATION", "maybe")

	cfg := LoadConfig()

	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.Form.EagerValidation)
}
