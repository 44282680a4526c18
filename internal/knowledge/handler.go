package knowledge

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Vovarama1992/support-ai-bridge/internal/errx"
)

type Handler struct {
	builder ContextBuilder
	repo    Repo
}

func NewHandler(builder ContextBuilder, repo Repo) *Handler {
	return &Handler{builder: builder, repo: repo}
}

// PreviewContext shows the dashboard what the assistant would see for a text.
func (h *Handler) PreviewContext(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text   string `json:"text"`
		Locale string `json:"locale"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errx.WriteError(w, r, errx.New(err, http.StatusBadRequest, "invalid json"))
		return
	}

	kc, err := h.builder.BuildContext(r.Context(), payload.Text, payload.Locale)
	if err != nil {
		errx.WriteError(w, r, errx.WrapDB(err))
		return
	}
	errx.WriteJSON(w, http.StatusOK, kc)
}

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	locale := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("locale")))

	notes, err := h.repo.ListNotes(r.Context(), locale)
	if err != nil {
		errx.WriteError(w, r, errx.WrapDB(err))
		return
	}
	if notes == nil {
		notes = []Note{}
	}
	errx.WriteJSON(w, http.StatusOK, notes)
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Locale   string `json:"locale"`
		Title    string `json:"title"`
		Content  string `json:"content"`
		Tags     string `json:"tags"`
		IsActive *bool  `json:"is_active"`
		Priority int    `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errx.WriteError(w, r, errx.New(err, http.StatusBadRequest, "invalid json"))
		return
	}

	note := &Note{
		Locale:   NormalizeLocale(payload.Locale),
		Title:    strings.TrimSpace(payload.Title),
		Content:  strings.TrimSpace(payload.Content),
		Tags:     strings.TrimSpace(payload.Tags),
		IsActive: payload.IsActive == nil || *payload.IsActive,
		Priority: payload.Priority,
	}
	if note.Title == "" || note.Content == "" {
		errx.WriteError(w, r, errx.BadRequest("missing title or content"))
		return
	}

	if err := h.repo.CreateNote(r.Context(), note); err != nil {
		errx.WriteError(w, r, errx.WrapDB(err))
		return
	}
	errx.WriteJSON(w, http.StatusCreated, note)
}

func (h *Handler) SetNoteActive(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		IsActive *bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.IsActive == nil {
		errx.WriteError(w, r, errx.BadRequest("missing is_active"))
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.repo.SetNoteActive(r.Context(), id, *payload.IsActive); err != nil {
		errx.WriteError(w, r, errx.WrapDB(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
