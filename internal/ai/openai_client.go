package ai

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	replyTemperature = 0.2
	replyMaxTokens   = 500
)

// OpenAICompatible talks to any chat-completions API in the OpenAI shape.
// It backs the openai, groq and xai backends.
type OpenAICompatible struct {
	name   string
	apiKey string
	model  string
	client *openai.Client
}

func NewOpenAICompatible(name, apiBase, apiKey, model string) *OpenAICompatible {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimRight(apiBase, "/")

	return &OpenAICompatible{
		name:   name,
		apiKey: apiKey,
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}
}

func (c *OpenAICompatible) Name() string  { return c.name }
func (c *OpenAICompatible) Model() string { return c.model }

func (c *OpenAICompatible) Attempt(
	ctx context.Context,
	systemPrompt string,
	history []Message,
) (string, error) {
	if c.apiKey == "" {
		return "", newProviderError(c.name, KindMissingKey, ErrMissingKey)
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range history {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Text,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: replyTemperature,
		MaxTokens:   replyMaxTokens,
	})
	if err != nil {
		return "", c.classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", newProviderError(c.name, KindBadResponse, ErrEmptyReply)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", newProviderError(c.name, KindBadResponse, ErrEmptyReply)
	}
	return text, nil
}

func (c *OpenAICompatible) classify(err error) *ProviderError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return statusError(c.name, apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return statusError(c.name, reqErr.HTTPStatusCode, err)
	}
	return classifyCallError(c.name, err)
}
