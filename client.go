package cdek

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Client owns the bearer token and performs all HTTP communication with the
// carrier API. Construct it with New; the zero value is not usable.
//
// The token is fetched once during construction and never mutated afterwards,
// so a single Client is safe for concurrent use across goroutines.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	token      string

	// Resource facades, one per API resource group.
	Order      *OrderService
	TrackOrder *TrackOrderService
	Tariff     *TariffService
	Location   *LocationService
	Webhook    *WebhookService
	Courier    *CourierService
	Payment    *PaymentService
	Print      *PrintService
}

// Option customizes client construction.
type Option func(*Client)

// WithLogger sets a custom logger for the client. Requests, token metadata,
// and embedded API errors are logged through it.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient sets a custom HTTP client, for custom transports, proxies,
// or testing.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// New builds a client for the configured environment and authenticates
// immediately via the OAuth2 client-credentials flow. A failed token
// exchange returns *AuthError and no client.
func New(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	base, err := cfg.baseURL()
	if err != nil {
		return nil, err
	}

	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.authenticate(ctx, cfg); err != nil {
		return nil, err
	}

	c.Order = &OrderService{client: c}
	c.TrackOrder = &TrackOrderService{client: c}
	c.Tariff = &TariffService{client: c}
	c.Location = &LocationService{client: c}
	c.Webhook = &WebhookService{client: c}
	c.Courier = &CourierService{client: c}
	c.Payment = &PaymentService{client: c}
	c.Print = &PrintService{client: c}

	return c, nil
}

var (
	defaultOnce   sync.Once
	defaultClient *Client
	defaultErr    error
)

// Default returns a process-wide client built from environment configuration.
// The client is constructed on first use and reused afterwards; prefer New
// for anything beyond quick scripts.
func Default(ctx context.Context) (*Client, error) {
	defaultOnce.Do(func() {
		cfg, err := LoadConfig()
		if err != nil {
			defaultErr = err
			return
		}
		defaultClient, defaultErr = New(ctx, cfg)
	})
	return defaultClient, defaultErr
}
