package cdek

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shippinglabs/cdek/entities"
)

// CourierService groups the delivery agreement and courier intake endpoints.
type CourierService struct {
	client *Client
}

// CreateAgreement arranges a delivery time window for an order.
func (s *CourierService) CreateAgreement(ctx context.Context, agreement *entities.Agreement) (any, error) {
	return s.client.request(ctx, http.MethodPost, "delivery", agreement, nil)
}

// Agreement fetches a delivery agreement by its UUID.
func (s *CourierService) Agreement(ctx context.Context, agreementUUID string) (any, error) {
	if err := validateUUID(agreementUUID); err != nil {
		return nil, err
	}
	return s.client.request(ctx, http.MethodGet, "delivery/"+agreementUUID, nil, nil)
}

// CreateIntake requests a courier pickup.
func (s *CourierService) CreateIntake(ctx context.Context, intake *entities.Intake) (any, error) {
	return s.client.request(ctx, http.MethodPost, "intakes", intake, nil)
}

// Intake fetches a courier intake request by its UUID.
func (s *CourierService) Intake(ctx context.Context, intakeUUID string) (any, error) {
	if err := validateUUID(intakeUUID); err != nil {
		return nil, err
	}
	return s.client.request(ctx, http.MethodGet, "intakes/"+intakeUUID, nil, nil)
}

// DeleteIntake cancels a courier intake request by its UUID.
func (s *CourierService) DeleteIntake(ctx context.Context, intakeUUID string) (any, error) {
	if err := validateUUID(intakeUUID); err != nil {
		return nil, err
	}
	return s.client.request(ctx, http.MethodDelete, "intakes/"+intakeUUID, nil, nil)
}

// AvailableDays returns the days a courier can pick up from a location.
func (s *CourierService) AvailableDays(ctx context.Context, req *entities.IntakeAvailableDaysRequest) (any, error) {
	return s.client.request(ctx, http.MethodPost, "intakes/availableDays", req, nil)
}

// DeliveryIntervals returns the available delivery intervals for an order,
// referenced by carrier number, order UUID, or both.
func (s *CourierService) DeliveryIntervals(ctx context.Context, cdekNumber, orderUUID string) (any, error) {
	query := url.Values{}
	if cdekNumber != "" {
		query.Set("cdek_number", cdekNumber)
	}
	if orderUUID != "" {
		query.Set("order_uuid", orderUUID)
	}
	return s.client.request(ctx, http.MethodGet, "delivery/intervals", nil, query)
}
