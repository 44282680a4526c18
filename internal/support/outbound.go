package support

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Vovarama1992/support-ai-bridge/pkg/logx"
)

// WebhookNotifier posts handoffs to the operator webhook.
type WebhookNotifier struct {
	url    string
	client *resty.Client
}

// NewWebhookNotifier returns a notifier that does nothing when url is empty.
func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	return &WebhookNotifier{
		url: url,
		client: resty.New().
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
	}
}

func (n *WebhookNotifier) NotifyHandoff(ctx context.Context, h Handoff) error {
	if n.url == "" {
		logx.Debug().Str("chat_id", h.ChatID).Msg("handoff webhook not configured")
		return nil
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(h).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("handoff webhook: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("handoff webhook error: %s body=%s", resp.Status(), resp.String())
	}
	return nil
}
