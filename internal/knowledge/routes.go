package knowledge

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/support/knowledge", func(r chi.Router) {
		r.Post("/context", h.PreviewContext)
		r.Get("/notes", h.ListNotes)
		r.Post("/notes", h.CreateNote)
		r.Patch("/notes/{id}", h.SetNoteActive)
	})
}
