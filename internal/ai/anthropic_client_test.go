package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicAttempt(t *testing.T) {
	t.Run("Should pass the system prompt as a top-level field", func(t *testing.T) {
		var req anthropicRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/messages", r.URL.Path)
			assert.Equal(t, "ak-test", r.Header.Get("X-API-Key"))
			assert.Equal(t, anthropicVersion, r.Header.Get("Anthropic-Version"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Hello "},{"type":"text","text":"world"}]}`))
		}))
		defer srv.Close()

		a := NewAnthropic(srv.URL+"/", "ak-test", "claude-test")
		text, err := a.Attempt(context.Background(), "system note", []Message{{Role: RoleUser, Text: "hi"}})
		require.NoError(t, err)
		assert.Equal(t, "Hello world", text)

		assert.Equal(t, "claude-test", req.Model)
		assert.Equal(t, 500, req.MaxTokens)
		assert.Equal(t, "system note", req.System)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "hi", req.Messages[0].Content)
	})

	t.Run("Should not call the API without a key", func(t *testing.T) {
		var hits int32
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			atomic.AddInt32(&hits, 1)
		}))
		defer srv.Close()

		_, err := NewAnthropic(srv.URL, "", "m").Attempt(context.Background(), "s", nil)
		assert.Equal(t, KindMissingKey, KindOf(err))
		assert.Zero(t, atomic.LoadInt32(&hits))
	})

	t.Run("Should report error statuses", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"type":"error","error":{"type":"authentication_error"}}`))
		}))
		defer srv.Close()

		_, err := NewAnthropic(srv.URL, "bad", "m").Attempt(context.Background(), "s", nil)
		var pe *ProviderError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, KindHTTPStatus, pe.Kind)
		assert.Equal(t, http.StatusUnauthorized, pe.Status)
	})

	t.Run("Should reject a body without text blocks", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"content":[{"type":"tool_use","id":"t1"}]}`))
		}))
		defer srv.Close()

		_, err := NewAnthropic(srv.URL, "k", "m").Attempt(context.Background(), "s", nil)
		assert.Equal(t, KindBadResponse, KindOf(err))
	})

	t.Run("Should treat malformed JSON as bad_response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"content":`))
		}))
		defer srv.Close()

		_, err := NewAnthropic(srv.URL, "k", "m").Attempt(context.Background(), "s", nil)
		require.Error(t, err)
		assert.Equal(t, KindBadResponse, KindOf(err))
	})
}
