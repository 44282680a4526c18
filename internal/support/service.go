package support

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/support-ai-bridge/internal/ai"
	"github.com/Vovarama1992/support-ai-bridge/internal/knowledge"
	"github.com/Vovarama1992/support-ai-bridge/pkg/logx"
)

const handoffReasonNoReply = "no_ai_reply"

type service struct {
	repo      Repo
	knowledge knowledge.ContextBuilder
	replier   ai.Replier
	notifier  Notifier
	cfg       Config
}

func NewService(
	repo Repo,
	kb knowledge.ContextBuilder,
	replier ai.Replier,
	notifier Notifier,
	cfg Config,
) Service {
	return &service{
		repo:      repo,
		knowledge: kb,
		replier:   replier,
		notifier:  notifier,
		cfg:       cfg.Normalize(),
	}
}

// HandleIncoming stores the client message and either answers it with the
// AI or hands the chat over to an operator. Storage and knowledge failures
// are returned; a missing AI reply is not an error.
func (s *service) HandleIncoming(ctx context.Context, msg *Message, opts Options) (*Outcome, error) {
	locale := strings.ToLower(strings.TrimSpace(opts.Locale))
	if locale == "" {
		locale = s.cfg.DefaultLocale
	}

	if err := s.repo.SaveMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}

	history, err := s.repo.GetHistory(ctx, msg.ChatID, s.cfg.HistoryTurns)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	kc, err := s.knowledge.BuildContext(ctx, msg.Text, locale)
	if err != nil {
		return nil, fmt.Errorf("knowledge context: %w", err)
	}

	reply, err := s.replier.GenerateReply(ctx, ai.ReplyRequest{
		PreferredProvider: opts.Provider,
		SystemPrompt:      BuildSystemPrompt(locale, kc.Text),
		Messages:          toAIHistory(history),
	})
	if err != nil {
		logx.Warn().
			Err(err).
			Str("chat_id", msg.ChatID).
			Int("sources", kc.SourcesCount).
			Msg("no ai reply, handing off")

		s.handoff(ctx, msg, handoffReasonNoReply)
		return &Outcome{
			Mode:         ModeHandoff,
			Text:         FallbackMessage(locale),
			SourcesCount: kc.SourcesCount,
		}, nil
	}

	if err := s.repo.SaveMessage(ctx, &Message{
		ChatID:   msg.ChatID,
		Sender:   SenderAI,
		Text:     reply.Text,
		ClientID: msg.ClientID,
	}); err != nil {
		return nil, fmt.Errorf("save reply: %w", err)
	}

	logx.Info().
		Str("chat_id", msg.ChatID).
		Str("provider", string(reply.Provider)).
		Str("backend", reply.Backend).
		Int("sources", kc.SourcesCount).
		Msg("ai reply sent")

	return &Outcome{
		Mode:         ModeAI,
		Text:         reply.Text,
		Provider:     reply.Provider,
		Backend:      reply.Backend,
		Model:        reply.Model,
		SourcesCount: kc.SourcesCount,
	}, nil
}

func (s *service) handoff(ctx context.Context, msg *Message, reason string) {
	h := Handoff{ChatID: msg.ChatID, Text: msg.Text, Reason: reason}
	if msg.ClientID != nil {
		h.ClientID = *msg.ClientID
	}
	if err := s.notifier.NotifyHandoff(ctx, h); err != nil {
		logx.Error().Err(err).Str("chat_id", msg.ChatID).Msg("handoff notify failed")
	}
}

func (s *service) SaveOnly(ctx context.Context, msg *Message) error {
	logx.Debug().
		Str("chat_id", msg.ChatID).
		Str("sender", string(msg.Sender)).
		Msg("save only")
	return s.repo.SaveMessage(ctx, msg)
}

func toAIHistory(history []Message) []ai.Message {
	out := make([]ai.Message, 0, len(history))
	for _, m := range history {
		role := ai.RoleUser
		if m.Sender == SenderAI || m.Sender == SenderSupporter {
			role = ai.RoleAssistant
		}
		out = append(out, ai.Message{Role: role, Text: m.Text})
	}
	return out
}
