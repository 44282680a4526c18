package support

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vovarama1992/support-ai-bridge/internal/ai"
)

type stubService struct {
	msg  *Message
	opts Options
	out  *Outcome
	err  error
}

func (s *stubService) HandleIncoming(_ context.Context, msg *Message, opts Options) (*Outcome, error) {
	s.msg, s.opts = msg, opts
	return s.out, s.err
}

func (s *stubService) SaveOnly(_ context.Context, msg *Message) error {
	s.msg = msg
	return s.err
}

func serve(svc Service, path, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(svc))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
	return rec
}

func TestHandlerHandleChat(t *testing.T) {
	t.Run("Should return the outcome", func(t *testing.T) {
		svc := &stubService{out: &Outcome{Mode: ModeAI, Text: "ok", Provider: ai.ProviderAnthropic, Backend: ai.BackendAnthropic, Model: "m", SourcesCount: 3}}
		rec := serve(svc, "/support/chat", `{"chat_id":"c1","text":"hi","locale":"en","provider":"Anthropic","client_id":"cl1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"mode":"ai","text":"ok","provider":"anthropic","backend":"anthropic","model":"m","sources_count":3}`, rec.Body.String())
		assert.Equal(t, ai.ProviderAnthropic, svc.opts.Provider)
		assert.Equal(t, "en", svc.opts.Locale)
		assert.Equal(t, SenderClient, svc.msg.Sender)
		require.NotNil(t, svc.msg.ClientID)
		assert.Equal(t, "cl1", *svc.msg.ClientID)
	})

	t.Run("Should treat auto as no preference", func(t *testing.T) {
		svc := &stubService{out: &Outcome{Mode: ModeHandoff}}
		rec := serve(svc, "/support/chat", `{"chat_id":"c1","text":"hi","provider":"auto"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, svc.opts.Provider)
	})

	t.Run("Should reject unknown providers", func(t *testing.T) {
		rec := serve(&stubService{}, "/support/chat", `{"chat_id":"c1","text":"hi","provider":"gemini"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Should require chat_id and text", func(t *testing.T) {
		rec := serve(&stubService{}, "/support/chat", `{"chat_id":"c1","text":"  "}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Should answer bad gateway on store failures", func(t *testing.T) {
		rec := serve(&stubService{err: errors.New("db down")}, "/support/chat", `{"chat_id":"c1","text":"hi"}`)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.JSONEq(t, `{"error":"database operation failed"}`, rec.Body.String())
	})
}

func TestHandlerSaveMessage(t *testing.T) {
	svc := &stubService{}
	rec := serve(svc, "/support/messages", `{"chat_id":"c1","text":"operator here","supporter_id":"s1"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, svc.msg)
	assert.Equal(t, SenderSupporter, svc.msg.Sender)
}
