package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

const anthropicVersion = "2023-06-01"

// Anthropic calls the messages API. The system prompt travels in the
// top-level "system" field, never inside the message list.
type Anthropic struct {
	apiKey string
	model  string
	client *resty.Client
}

func NewAnthropic(apiBase, apiKey, model string) *Anthropic {
	client := resty.New().
		SetBaseURL(strings.TrimRight(apiBase, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("anthropic-version", anthropicVersion)

	return &Anthropic{
		apiKey: apiKey,
		model:  model,
		client: client,
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (a *Anthropic) Name() string  { return BackendAnthropic }
func (a *Anthropic) Model() string { return a.model }

func (a *Anthropic) Attempt(
	ctx context.Context,
	systemPrompt string,
	history []Message,
) (string, error) {
	if a.apiKey == "" {
		return "", newProviderError(BackendAnthropic, KindMissingKey, ErrMissingKey)
	}

	body := anthropicRequest{
		Model:     a.model,
		MaxTokens: replyMaxTokens,
		System:    systemPrompt,
		Messages:  make([]anthropicMessage, 0, len(history)),
	}
	for _, m := range history {
		body.Messages = append(body.Messages, anthropicMessage{Role: m.Role, Content: m.Text})
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("x-api-key", a.apiKey).
		SetBody(body).
		Post("/v1/messages")
	if err != nil {
		return "", classifyCallError(BackendAnthropic, err)
	}
	if !resp.IsSuccess() {
		return "", statusError(
			BackendAnthropic,
			resp.StatusCode(),
			fmt.Errorf("anthropic api error: %s body=%s", resp.Status(), short(resp.String())),
		)
	}

	var out anthropicResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", newProviderError(BackendAnthropic, KindBadResponse, err)
	}

	var parts []string
	for _, block := range out.Content {
		if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
			parts = append(parts, block.Text)
		}
	}
	text := strings.TrimSpace(strings.Join(parts, ""))
	if text == "" {
		return "", newProviderError(BackendAnthropic, KindBadResponse, ErrEmptyReply)
	}
	return text, nil
}

func short(s string) string {
	if len(s) > 180 {
		return s[:180] + "..."
	}
	return s
}
