package ai

import "context"

// ProviderID names one slot of the provider order.
type ProviderID string

const (
	ProviderAuto      ProviderID = "auto"
	ProviderOpenAI    ProviderID = "openai"
	ProviderAnthropic ProviderID = "anthropic"
	ProviderGrok      ProviderID = "grok"
)

// Backend names. The grok slot is served by two backends.
const (
	BackendOpenAI    = "openai"
	BackendAnthropic = "anthropic"
	BackendGroq      = "groq"
	BackendXAI       = "xai"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation handed to a provider.
type Message struct {
	Role string // "user" | "assistant"
	Text string
}

type ReplyRequest struct {
	PreferredProvider ProviderID
	SystemPrompt      string
	Messages          []Message
}

// Reply is produced only when a backend returned non-empty text.
// Provider is always a member of the outer order; Backend tells which
// concrete API answered inside that slot.
type Reply struct {
	Text     string
	Provider ProviderID
	Backend  string
	Model    string
}

// Backend is one concrete LLM API.
type Backend interface {
	Name() string
	Model() string
	Attempt(ctx context.Context, systemPrompt string, history []Message) (string, error)
}

// Slot groups the backends tried, in order, for one provider id.
type Slot struct {
	ID       ProviderID
	Backends []Backend
}

// Replier is what callers depend on.
type Replier interface {
	GenerateReply(ctx context.Context, req ReplyRequest) (*Reply, error)
}
