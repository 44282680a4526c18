package errx

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/support-ai-bridge/pkg/logx"
)

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logx.Warn().Err(err).Msg("write response")
	}
}

// WriteError logs err and answers with its safe message only.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := StatusOf(err)
	ev := logx.Warn()
	if status >= http.StatusInternalServerError {
		ev = logx.Error()
	}
	ev.Err(err).Str("method", r.Method).Str("path", r.URL.Path).Int("status", status).Msg("request failed")

	WriteJSON(w, status, map[string]string{"error": msg})
}
