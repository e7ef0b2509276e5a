package cdek

import (
	"context"
	"embed"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

//go:embed data/*.json
var snapshots embed.FS

// LocationService groups the reference data endpoints. Each lookup serves
// either a bundled snapshot or, when live data is requested, the
// corresponding API endpoint.
type LocationService struct {
	client *Client
}

// LocationOptions controls a reference data lookup.
type LocationOptions struct {
	// LiveData requests the API instead of the bundled snapshot.
	LiveData bool
	// CityCode filters postal code lookups to one city. Zero means no filter.
	CityCode int
}

// Cities returns the carrier's city catalog.
func (s *LocationService) Cities(ctx context.Context, opts LocationOptions) (any, error) {
	if opts.LiveData {
		return s.client.request(ctx, http.MethodGet, "location/cities", nil, nil)
	}
	return s.snapshot("cities_mapping.json")
}

// Regions returns the carrier's region catalog.
func (s *LocationService) Regions(ctx context.Context, opts LocationOptions) (any, error) {
	if opts.LiveData {
		return s.client.request(ctx, http.MethodGet, "location/regions", nil, nil)
	}
	return s.snapshot("regions_mapping.json")
}

// Offices returns the carrier's pickup point catalog.
func (s *LocationService) Offices(ctx context.Context, opts LocationOptions) (any, error) {
	if opts.LiveData {
		return s.client.request(ctx, http.MethodGet, "deliverypoints", nil, nil)
	}
	return s.snapshot("offices_mapping.json")
}

// PostalCodes returns postal codes, optionally filtered by city code.
func (s *LocationService) PostalCodes(ctx context.Context, opts LocationOptions) (any, error) {
	if opts.LiveData {
		var query url.Values
		if opts.CityCode != 0 {
			query = url.Values{}
			query.Set("code", strconv.Itoa(opts.CityCode))
		}
		return s.client.request(ctx, http.MethodGet, "location/postalcodes", nil, query)
	}
	return s.snapshot("postal_codes_mapping.json")
}

// snapshot reads one bundled reference file. Failures are normalized into
// *APIError the same way remote failures are, never raised.
func (s *LocationService) snapshot(name string) (any, error) {
	data, err := snapshots.ReadFile("data/" + name)
	if err != nil {
		s.client.logger.Error("cdek: failed to read snapshot", slog.String("file", name), slog.Any("error", err))
		return nil, &APIError{Message: err.Error()}
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		s.client.logger.Error("cdek: failed to parse snapshot", slog.String("file", name), slog.Any("error", err))
		return nil, &APIError{Message: "Failed to parse JSON body: " + err.Error()}
	}
	return payload, nil
}
