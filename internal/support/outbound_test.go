package support

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookNotifier(t *testing.T) {
	t.Run("Should post the handoff as json", func(t *testing.T) {
		var got Handoff
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		n := NewWebhookNotifier(srv.URL, time.Second)
		h := Handoff{ChatID: "c1", ClientID: "cl1", Text: "fiyat?", Reason: handoffReasonNoReply}
		require.NoError(t, n.NotifyHandoff(context.Background(), h))
		assert.Equal(t, h, got)
	})

	t.Run("Should report non-2xx answers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))
		defer srv.Close()

		err := NewWebhookNotifier(srv.URL, time.Second).NotifyHandoff(context.Background(), Handoff{ChatID: "c1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("Should do nothing without a url", func(t *testing.T) {
		require.NoError(t, NewWebhookNotifier("", time.Second).NotifyHandoff(context.Background(), Handoff{ChatID: "c1"}))
	})
}
