package support

import (
	"strings"
	"time"
)

const (
	DefaultHistoryTurns   = 12
	DefaultLocale         = "tr"
	DefaultHandoffTimeout = 10 * time.Second
)

type Config struct {
	HistoryTurns      int           `envconfig:"SUPPORT_HISTORY_TURNS" default:"12"`
	DefaultLocale     string        `envconfig:"SUPPORT_DEFAULT_LOCALE" default:"tr"`
	HandoffWebhookURL string        `envconfig:"SUPPORT_HANDOFF_WEBHOOK_URL"`
	HandoffTimeout    time.Duration `envconfig:"SUPPORT_HANDOFF_TIMEOUT" default:"10s"`
}

func (c Config) Normalize() Config {
	if c.HistoryTurns <= 0 {
		c.HistoryTurns = DefaultHistoryTurns
	}
	c.DefaultLocale = strings.ToLower(strings.TrimSpace(c.DefaultLocale))
	if c.DefaultLocale == "" {
		c.DefaultLocale = DefaultLocale
	}
	c.HandoffWebhookURL = strings.TrimSpace(c.HandoffWebhookURL)
	if c.HandoffTimeout <= 0 {
		c.HandoffTimeout = DefaultHandoffTimeout
	}
	return c
}
