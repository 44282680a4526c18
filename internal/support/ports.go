package support

import (
	"context"

	"github.com/Vovarama1992/support-ai-bridge/internal/ai"
)

type Sender string

const (
	SenderClient    Sender = "client"
	SenderSupporter Sender = "supporter"
	SenderAI        Sender = "ai"
)

type Message struct {
	ID          int64
	ChatID      string
	Sender      Sender
	Text        string
	ClientID    *string
	SupporterID *string
	CreatedAt   int64
}

// Mode tells the caller who answers the client.
type Mode string

const (
	ModeAI      Mode = "ai"
	ModeHandoff Mode = "handoff"
)

type Options struct {
	Locale   string
	Provider ai.ProviderID
}

type Outcome struct {
	Mode         Mode          `json:"mode"`
	Text         string        `json:"text"`
	Provider     ai.ProviderID `json:"provider,omitempty"`
	Backend      string        `json:"backend,omitempty"`
	Model        string        `json:"model,omitempty"`
	SourcesCount int           `json:"sources_count"`
}

// Handoff is what operators receive when the assistant cannot answer.
type Handoff struct {
	ChatID   string `json:"chat_id"`
	ClientID string `json:"client_id,omitempty"`
	Text     string `json:"text"`
	Reason   string `json:"reason"`
}

type Notifier interface {
	NotifyHandoff(ctx context.Context, h Handoff) error
}

// Repo is the messages store.
type Repo interface {
	SaveMessage(ctx context.Context, msg *Message) error
	// GetHistory returns the last limit messages of a chat, oldest first.
	GetHistory(ctx context.Context, chatID string, limit int) ([]Message, error)
}

type Service interface {
	HandleIncoming(ctx context.Context, msg *Message, opts Options) (*Outcome, error)
	SaveOnly(ctx context.Context, msg *Message) error
}
