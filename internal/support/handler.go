package support

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Vovarama1992/support-ai-bridge/internal/ai"
	"github.com/Vovarama1992/support-ai-bridge/internal/errx"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// HandleChat takes a client message and answers with the AI reply or a handoff.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ChatID   string  `json:"chat_id"`
		Text     string  `json:"text"`
		Locale   string  `json:"locale"`
		Provider string  `json:"provider"`
		ClientID *string `json:"client_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errx.WriteError(w, r, errx.New(err, http.StatusBadRequest, "invalid json"))
		return
	}

	payload.ChatID = strings.TrimSpace(payload.ChatID)
	if payload.ChatID == "" || strings.TrimSpace(payload.Text) == "" {
		errx.WriteError(w, r, errx.BadRequest("missing chat_id or text"))
		return
	}

	opts := Options{Locale: payload.Locale}
	if p := strings.ToLower(strings.TrimSpace(payload.Provider)); p != "" && p != string(ai.ProviderAuto) {
		id, ok := ai.ParseProviderID(p)
		if !ok {
			errx.WriteError(w, r, errx.BadRequest("unknown provider"))
			return
		}
		opts.Provider = id
	}

	out, err := h.svc.HandleIncoming(r.Context(), &Message{
		ChatID:   payload.ChatID,
		Sender:   SenderClient,
		Text:     payload.Text,
		ClientID: payload.ClientID,
	}, opts)
	if err != nil {
		errx.WriteError(w, r, errx.WrapDB(err))
		return
	}
	errx.WriteJSON(w, http.StatusOK, out)
}

// SaveMessage stores operator messages without an AI pass.
func (h *Handler) SaveMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ChatID      string  `json:"chat_id"`
		Text        string  `json:"text"`
		ClientID    *string `json:"client_id"`
		SupporterID *string `json:"supporter_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		errx.WriteError(w, r, errx.New(err, http.StatusBadRequest, "invalid json"))
		return
	}
	if payload.ChatID == "" || payload.Text == "" {
		errx.WriteError(w, r, errx.BadRequest("missing chat_id or text"))
		return
	}

	sender := SenderClient
	if payload.SupporterID != nil {
		sender = SenderSupporter
	}

	if err := h.svc.SaveOnly(r.Context(), &Message{
		ChatID:      payload.ChatID,
		Sender:      sender,
		Text:        payload.Text,
		ClientID:    payload.ClientID,
		SupporterID: payload.SupporterID,
	}); err != nil {
		errx.WriteError(w, r, errx.WrapDB(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
