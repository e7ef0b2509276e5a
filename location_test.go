package cdek_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shippinglabs/cdek"
)

func TestLocationSnapshots(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("snapshot lookup must not hit the API, got %s %s", r.Method, r.URL.Path)
	})

	tests := []struct {
		name   string
		lookup func(context.Context, cdek.LocationOptions) (any, error)
	}{
		{name: "cities", lookup: client.Location.Cities},
		{name: "regions", lookup: client.Location.Regions},
		{name: "offices", lookup: client.Location.Offices},
		{name: "postal codes", lookup: client.Location.PostalCodes},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := tt.lookup(context.Background(), cdek.LocationOptions{})
			require.NoError(t, err)

			list, ok := result.([]any)
			require.True(t, ok)
			assert.NotEmpty(t, list)
		})
	}
}

func TestLocationLiveData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lookup   func(*cdek.Client, context.Context, cdek.LocationOptions) (any, error)
		opts     cdek.LocationOptions
		wantPath string
		wantCode string
	}{
		{
			name: "cities",
			lookup: func(c *cdek.Client, ctx context.Context, o cdek.LocationOptions) (any, error) {
				return c.Location.Cities(ctx, o)
			},
			opts:     cdek.LocationOptions{LiveData: true},
			wantPath: "/location/cities",
		},
		{
			name: "regions",
			lookup: func(c *cdek.Client, ctx context.Context, o cdek.LocationOptions) (any, error) {
				return c.Location.Regions(ctx, o)
			},
			opts:     cdek.LocationOptions{LiveData: true},
			wantPath: "/location/regions",
		},
		{
			name: "offices",
			lookup: func(c *cdek.Client, ctx context.Context, o cdek.LocationOptions) (any, error) {
				return c.Location.Offices(ctx, o)
			},
			opts:     cdek.LocationOptions{LiveData: true},
			wantPath: "/deliverypoints",
		},
		{
			name: "postal codes filtered",
			lookup: func(c *cdek.Client, ctx context.Context, o cdek.LocationOptions) (any, error) {
				return c.Location.PostalCodes(ctx, o)
			},
			opts:     cdek.LocationOptions{LiveData: true, CityCode: 44},
			wantPath: "/location/postalcodes",
			wantCode: "44",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, tt.wantCode, r.URL.Query().Get("code"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[{"code": 44}]`))
			})

			result, err := tt.lookup(client, context.Background(), tt.opts)
			require.NoError(t, err)
			assert.NotNil(t, result)
		})
	}
}
