package cdek

import (
	"context"
	"net/http"

	"github.com/shippinglabs/cdek/entities"
)

// TariffService groups the tariff calculation endpoints.
type TariffService struct {
	client *Client
}

// Calculate prices a shipment against a single tariff code.
func (s *TariffService) Calculate(ctx context.Context, tariff *entities.Tariff) (any, error) {
	return s.client.request(ctx, http.MethodPost, "calculator/tariff", tariff, nil)
}

// CalculateList prices a shipment against every available tariff.
func (s *TariffService) CalculateList(ctx context.Context, tariff *entities.Tariff) (any, error) {
	return s.client.request(ctx, http.MethodPost, "calculator/tarifflist", tariff, nil)
}
