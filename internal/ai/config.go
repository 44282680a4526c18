package ai

import (
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultOpenAIAPIBase    = "https://api.openai.com/v1"
	DefaultOpenAIModel      = openai.GPT4oMini
	DefaultAnthropicAPIBase = "https://api.anthropic.com"
	DefaultAnthropicModel   = "claude-3-5-haiku-latest"
	DefaultGroqAPIBase      = "https://api.groq.com/openai/v1"
	DefaultGroqModel        = "llama-3.3-70b-versatile"
	DefaultXAIAPIBase       = "https://api.x.ai/v1"
	DefaultXAIModel         = "grok-2-latest"
	DefaultRequestTimeout   = 15 * time.Second
)

// Config carries every provider setting. It is read once at startup.
type Config struct {
	OpenAIAPIBase string `envconfig:"OPENAI_API_BASE"`
	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel   string `envconfig:"OPENAI_MODEL"`

	AnthropicAPIBase string `envconfig:"ANTHROPIC_API_BASE"`
	AnthropicAPIKey  string `envconfig:"ANTHROPIC_API_KEY"`
	AnthropicModel   string `envconfig:"ANTHROPIC_MODEL"`

	GroqAPIBase string `envconfig:"GROQ_API_BASE"`
	GroqAPIKey  string `envconfig:"GROQ_API_KEY"`
	GroqModel   string `envconfig:"GROQ_MODEL"`

	XAIAPIBase   string `envconfig:"XAI_API_BASE"`
	XAIAPIKey    string `envconfig:"XAI_API_KEY"`
	XAIModelName string `envconfig:"XAI_MODEL"`
	// legacy names
	GrokAPIKey string `envconfig:"GROK_API_KEY"`
	GrokModel  string `envconfig:"GROK_MODEL"`

	ProviderOrder  string        `envconfig:"AI_PROVIDER_ORDER"`
	RequestTimeout time.Duration `envconfig:"AI_REQUEST_TIMEOUT" default:"15s"`
}

// Normalize trims every value and fills blanks with defaults.
// Keys stay empty when unset: an empty key marks the backend unusable.
func (c Config) Normalize() Config {
	c.OpenAIAPIBase = withDefault(c.OpenAIAPIBase, DefaultOpenAIAPIBase)
	c.OpenAIAPIKey = strings.TrimSpace(c.OpenAIAPIKey)
	c.OpenAIModel = withDefault(c.OpenAIModel, DefaultOpenAIModel)

	c.AnthropicAPIBase = withDefault(c.AnthropicAPIBase, DefaultAnthropicAPIBase)
	c.AnthropicAPIKey = strings.TrimSpace(c.AnthropicAPIKey)
	c.AnthropicModel = withDefault(c.AnthropicModel, DefaultAnthropicModel)

	c.GroqAPIBase = withDefault(c.GroqAPIBase, DefaultGroqAPIBase)
	c.GroqAPIKey = strings.TrimSpace(c.GroqAPIKey)
	c.GroqModel = withDefault(c.GroqModel, DefaultGroqModel)

	c.XAIAPIBase = withDefault(c.XAIAPIBase, DefaultXAIAPIBase)
	c.XAIAPIKey = strings.TrimSpace(c.XAIAPIKey)
	c.XAIModelName = strings.TrimSpace(c.XAIModelName)
	c.GrokAPIKey = strings.TrimSpace(c.GrokAPIKey)
	c.GrokModel = strings.TrimSpace(c.GrokModel)

	c.ProviderOrder = strings.TrimSpace(c.ProviderOrder)
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	return c
}

// XAIKey prefers XAI_API_KEY and falls back to GROK_API_KEY.
func (c Config) XAIKey() string {
	if k := strings.TrimSpace(c.XAIAPIKey); k != "" {
		return k
	}
	return strings.TrimSpace(c.GrokAPIKey)
}

func (c Config) XAIModel() string {
	if m := strings.TrimSpace(c.XAIModelName); m != "" {
		return m
	}
	return withDefault(c.GrokModel, DefaultXAIModel)
}

func withDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
