package support

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPrompt(t *testing.T) {
	t.Run("Should append the knowledge block after the rules", func(t *testing.T) {
		got := BuildSystemPrompt("en", "[PRODUCTS]\n- Tower")
		assert.True(t, strings.HasPrefix(got, systemPromptEN))
		assert.True(t, strings.HasSuffix(got, "KNOWLEDGE:\n[PRODUCTS]\n- Tower"))
		assert.Contains(t, got, "not_public")
	})

	t.Run("Should default to Turkish", func(t *testing.T) {
		got := BuildSystemPrompt("", "")
		assert.True(t, strings.HasPrefix(got, systemPromptTR))
		assert.True(t, strings.HasSuffix(got, "BİLGİ:\n"+noKnowledgeTR))
	})
}

func TestFallbackMessage(t *testing.T) {
	assert.Equal(t, fallbackEN, FallbackMessage(" EN"))
	assert.Equal(t, fallbackTR, FallbackMessage("tr"))
	assert.Equal(t, fallbackTR, FallbackMessage("de"))
}

func TestConfigNormalize(t *testing.T) {
	c := Config{DefaultLocale: " EN ", HandoffWebhookURL: " http://hook "}.Normalize()
	assert.Equal(t, DefaultHistoryTurns, c.HistoryTurns)
	assert.Equal(t, "en", c.DefaultLocale)
	assert.Equal(t, "http://hook", c.HandoffWebhookURL)
	assert.Equal(t, DefaultHandoffTimeout, c.HandoffTimeout)
}
