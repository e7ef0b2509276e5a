package cdek

import (
	"context"
	"net/http"

	"github.com/shippinglabs/cdek/entities"
)

// WebhookService groups the webhook subscription endpoints.
type WebhookService struct {
	client *Client
}

// Register subscribes an endpoint to carrier events.
func (s *WebhookService) Register(ctx context.Context, webhook *entities.Webhook) (any, error) {
	return s.client.request(ctx, http.MethodPost, "webhooks", webhook, nil)
}

// List returns the registered webhook subscriptions.
func (s *WebhookService) List(ctx context.Context) (any, error) {
	return s.client.request(ctx, http.MethodGet, "webhooks", nil, nil)
}

// Delete removes a webhook subscription by its UUID.
func (s *WebhookService) Delete(ctx context.Context, webhookUUID string) (any, error) {
	if err := validateUUID(webhookUUID); err != nil {
		return nil, err
	}
	return s.client.request(ctx, http.MethodDelete, "webhooks/"+webhookUUID, nil, nil)
}
