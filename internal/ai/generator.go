package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Vovarama1992/support-ai-bridge/pkg/logx"
)

// Generator tries provider slots one at a time until a backend answers.
// Attempts are never raced and never retried.
type Generator struct {
	providerOrder string
	timeout       time.Duration
	slots         map[ProviderID]Slot
}

// NewGenerator wires the standard openai, anthropic and grok slots.
func NewGenerator(cfg Config) *Generator {
	cfg = cfg.Normalize()
	return NewGeneratorWithSlots(cfg.ProviderOrder, cfg.RequestTimeout, DefaultSlots(cfg)...)
}

// DefaultSlots builds the backends for every known provider id.
// The grok slot tries Groq first, then xAI.
func DefaultSlots(cfg Config) []Slot {
	return []Slot{
		{
			ID: ProviderOpenAI,
			Backends: []Backend{
				NewOpenAICompatible(BackendOpenAI, cfg.OpenAIAPIBase, cfg.OpenAIAPIKey, cfg.OpenAIModel),
			},
		},
		{
			ID: ProviderAnthropic,
			Backends: []Backend{
				NewAnthropic(cfg.AnthropicAPIBase, cfg.AnthropicAPIKey, cfg.AnthropicModel),
			},
		},
		{
			ID: ProviderGrok,
			Backends: []Backend{
				NewOpenAICompatible(BackendGroq, cfg.GroqAPIBase, cfg.GroqAPIKey, cfg.GroqModel),
				NewOpenAICompatible(BackendXAI, cfg.XAIAPIBase, cfg.XAIKey(), cfg.XAIModel()),
			},
		},
	}
}

func NewGeneratorWithSlots(providerOrder string, timeout time.Duration, slots ...Slot) *Generator {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	g := &Generator{
		providerOrder: providerOrder,
		timeout:       timeout,
		slots:         make(map[ProviderID]Slot, len(slots)),
	}
	for _, s := range slots {
		g.slots[s.ID] = s
	}
	return g
}

// GenerateReply returns the first non-empty reply. When every backend fails
// the error wraps ErrNoReply together with each attempt's ProviderError.
func (g *Generator) GenerateReply(ctx context.Context, req ReplyRequest) (*Reply, error) {
	history := normalizeHistory(req.Messages)
	order := ResolveProviderOrder(g.providerOrder, req.PreferredProvider)

	var failures []error
	for _, id := range order {
		slot, ok := g.slots[id]
		if !ok {
			continue
		}
		for _, backend := range slot.Backends {
			text, err := g.attempt(ctx, backend, req.SystemPrompt, history)
			if err == nil {
				logx.Debug().
					Str("provider", string(id)).
					Str("backend", backend.Name()).
					Str("model", backend.Model()).
					Msg("ai reply generated")
				return &Reply{
					Text:     text,
					Provider: id,
					Backend:  backend.Name(),
					Model:    backend.Model(),
				}, nil
			}

			logx.Debug().
				Err(err).
				Str("provider", string(id)).
				Str("backend", backend.Name()).
				Str("kind", string(KindOf(err))).
				Msg("ai attempt failed")
			failures = append(failures, err)
		}
	}

	if len(failures) == 0 {
		return nil, ErrNoReply
	}
	return nil, fmt.Errorf("%w: %w", ErrNoReply, errors.Join(failures...))
}

func (g *Generator) attempt(ctx context.Context, b Backend, systemPrompt string, history []Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := b.Attempt(ctx, systemPrompt, history)
	if err != nil {
		return "", err
	}
	if text = strings.TrimSpace(text); text == "" {
		return "", newProviderError(b.Name(), KindBadResponse, ErrEmptyReply)
	}
	return text, nil
}

func normalizeHistory(in []Message) []Message {
	out := make([]Message, 0, len(in))
	for _, m := range in {
		if strings.TrimSpace(m.Text) == "" {
			continue
		}
		role := RoleUser
		if m.Role == RoleAssistant {
			role = RoleAssistant
		}
		out = append(out, Message{Role: role, Text: m.Text})
	}
	return out
}
