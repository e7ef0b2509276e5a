package cdek

import (
	"context"
	"net/http"

	"github.com/shippinglabs/cdek/entities"
)

// OrderService groups the order endpoints.
type OrderService struct {
	client *Client
}

// Create registers a new shipment order.
func (s *OrderService) Create(ctx context.Context, order *entities.Order) (any, error) {
	return s.client.request(ctx, http.MethodPost, "orders", order, nil)
}

// Track fetches the current state of an order by its UUID.
func (s *OrderService) Track(ctx context.Context, orderUUID string) (any, error) {
	if err := validateUUID(orderUUID); err != nil {
		return nil, err
	}
	return s.client.request(ctx, http.MethodGet, "orders/"+orderUUID, nil, nil)
}

// TrackOrderService is a thin alias facade over order tracking, kept for
// callers that only consume tracking data.
type TrackOrderService struct {
	client *Client
}

// Get fetches tracking information for an order by its UUID.
func (s *TrackOrderService) Get(ctx context.Context, orderUUID string) (any, error) {
	if err := validateUUID(orderUUID); err != nil {
		return nil, err
	}
	return s.client.request(ctx, http.MethodGet, "orders/"+orderUUID, nil, nil)
}
