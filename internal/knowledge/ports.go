package knowledge

import (
	"context"
	"time"
)

// DefaultLocale is used when the caller passes no locale.
const DefaultLocale = "tr"

const (
	productLimit = 8
	serviceLimit = 8
	pageLimit    = 5
	noteLimit    = 10
)

type Product struct {
	ID          string
	Category    string
	Price       string
	Locale      string
	Title       string
	Slug        string
	Description string
}

type Service struct {
	ID          string
	Type        string
	Price       string
	Locale      string
	Name        string
	Slug        string
	Description string
	Material    string
	Includes    string
	Warranty    string
}

// Page is a published custom page (policies, FAQ, about).
type Page struct {
	ID        string
	ModuleKey string
	Locale    string
	Title     string
	Slug      string
	Summary   string
	Content   string
}

// Note is a curated admin knowledge entry for the assistant.
type Note struct {
	ID        string    `json:"id"`
	Locale    string    `json:"locale"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      string    `json:"tags"`
	IsActive  bool      `json:"is_active"`
	Priority  int       `json:"priority"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Context is the rendered knowledge block for one user message.
type Context struct {
	Text         string `json:"text"`
	SourcesCount int    `json:"sources_count"`
}

// Repo searches the catalog and the curated notes.
type Repo interface {
	SearchProducts(ctx context.Context, tokens []string, limit int) ([]Product, error)
	SearchServices(ctx context.Context, tokens []string, limit int) ([]Service, error)
	SearchPages(ctx context.Context, tokens []string, limit int) ([]Page, error)
	SearchNotes(ctx context.Context, tokens []string, locale string, limit int) ([]Note, error)

	ListNotes(ctx context.Context, locale string) ([]Note, error)
	CreateNote(ctx context.Context, note *Note) error
	SetNoteActive(ctx context.Context, id string, active bool) error
}

// ContextBuilder is what the support flow depends on.
type ContextBuilder interface {
	BuildContext(ctx context.Context, userText, locale string) (Context, error)
}
