package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should trim AI settings and apply defaults for blank values", func(t *testing.T) {
		t.Setenv("DATABASE_URL", " postgres://localhost/support ")
		t.Setenv("OPENAI_API_KEY", "  sk-test  ")
		t.Setenv("OPENAI_MODEL", "   ")
		t.Setenv("GROK_API_KEY", "legacy-key")
		t.Setenv("AI_PROVIDER_ORDER", "anthropic,openai")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "postgres://localhost/support", cfg.Server.DatabaseURL)
		assert.Equal(t, "sk-test", cfg.AI.OpenAIAPIKey)
		assert.Equal(t, "gpt-4o-mini", cfg.AI.OpenAIModel)
		assert.Equal(t, "legacy-key", cfg.AI.XAIKey())
		assert.Equal(t, "anthropic,openai", cfg.AI.ProviderOrder)
		assert.Equal(t, 15*time.Second, cfg.AI.RequestTimeout)
		assert.Equal(t, 12, cfg.Support.HistoryTurns)
		assert.Equal(t, "tr", cfg.Support.DefaultLocale)
	})

	t.Run("Should fail without DATABASE_URL", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		_, err := Load()
		require.Error(t, err)
	})
}

func TestServerOrigins(t *testing.T) {
	s := Server{AllowedOrigins: " https://a.example , ,https://b.example"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, s.Origins())
	assert.Equal(t, []string{"*"}, Server{}.Origins())
}
