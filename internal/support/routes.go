package support

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/support/chat", h.HandleChat)
	r.Post("/support/messages", h.SaveMessage)
}
