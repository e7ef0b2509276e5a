package cdek

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shippinglabs/cdek/entities"
)

// PaymentService groups the payment reporting endpoints.
type PaymentService struct {
	client *Client
}

// Payments returns cash-on-delivery transfers for a date (YYYY-MM-DD).
func (s *PaymentService) Payments(ctx context.Context, date string) (any, error) {
	query := url.Values{}
	query.Set("date", date)
	return s.client.request(ctx, http.MethodGet, "payment", nil, query)
}

// Checks returns cash register receipts matching the check query.
func (s *PaymentService) Checks(ctx context.Context, check *entities.Check) (any, error) {
	return s.client.request(ctx, http.MethodGet, "check", nil, check.ToQuery())
}

// Registries returns payment registries for a date (YYYY-MM-DD).
func (s *PaymentService) Registries(ctx context.Context, date string) (any, error) {
	query := url.Values{}
	query.Set("date", date)
	return s.client.request(ctx, http.MethodGet, "registries", nil, query)
}
