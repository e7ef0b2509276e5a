package cdek

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/shippinglabs/cdek/entities"
)

// authenticate performs the OAuth2 client-credentials exchange against the
// token endpoint and stores the bearer token for the client's lifetime.
// Token expiry is not enforced and there is no re-authentication on 401.
func (c *Client) authenticate(ctx context.Context, cfg Config) error {
	conf := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     c.baseURL + "/oauth/token",
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := conf.Token(ctx)
	if err != nil {
		return authErrorFrom(err)
	}

	c.token = token.AccessToken
	c.logTokenMetadata(token)
	return nil
}

// authErrorFrom maps a token exchange failure to *AuthError: structured
// {error, error_description} bodies when the carrier sent one, raw status
// and body otherwise.
func authErrorFrom(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if !errors.As(err, &retrieveErr) {
		return &AuthError{Body: err.Error()}
	}
	if retrieveErr.ErrorCode != "" {
		return &AuthError{
			Code:        retrieveErr.ErrorCode,
			Description: retrieveErr.ErrorDescription,
		}
	}
	if resp := decodeAuthErrorBody(retrieveErr.Body); resp != nil {
		return &AuthError{Code: resp.Err, Description: resp.Description}
	}
	status := 0
	if retrieveErr.Response != nil {
		status = retrieveErr.Response.StatusCode
	}
	return &AuthError{Status: status, Body: string(retrieveErr.Body)}
}

// decodeAuthErrorBody recovers the carrier's documented error body when it
// was served with a content type the token exchange did not parse. Returns
// nil unless the body is the complete {error, error_description} shape.
func decodeAuthErrorBody(body []byte) *entities.AuthErrorResponse {
	var decoded entities.AuthErrorResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil
	}
	resp, err := entities.NewAuthErrorResponse(decoded)
	if err != nil {
		return nil
	}
	return resp
}

// logTokenMetadata records the token's observability fields. The carrier's
// token payload is validated into an AuthResponse when complete; partial
// payloads are logged as-is.
func (c *Client) logTokenMetadata(token *oauth2.Token) {
	scope, _ := token.Extra("scope").(string)
	jti, _ := token.Extra("jti").(string)

	resp, err := entities.NewAuthResponse(entities.AuthResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.Type(),
		ExpiresIn:   extraInt(token, "expires_in"),
		Scope:       scope,
		JTI:         jti,
	})
	if err != nil {
		c.logger.Debug("cdek: authenticated with partial token metadata",
			slog.String("token_type", token.Type()))
		return
	}
	c.logger.Info("cdek: authenticated",
		slog.String("token_type", resp.TokenType),
		slog.Int("expires_in", resp.ExpiresIn),
		slog.String("scope", resp.Scope),
		slog.String("jti", resp.JTI),
	)
}

// extraInt reads a numeric extra field from a token payload; JSON decoding
// may surface it as a float or json.Number.
func extraInt(token *oauth2.Token, key string) int {
	switch v := token.Extra(key).(type) {
	case float64:
		return int(v)
	case int:
		return v
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	default:
		return 0
	}
}

// request sends one API call and normalizes every outcome: the decoded JSON
// payload on success, *APIError for anything else. It never returns a raw
// transport or parser error.
func (c *Client) request(ctx context.Context, method, path string, body any, query url.Values) (any, error) {
	status, data, err := c.send(ctx, method, path, body, query)
	if err != nil {
		c.logger.Error("cdek: request failed",
			slog.String("method", method), slog.String("path", path), slog.Any("error", err))
		return nil, &APIError{Message: err.Error()}
	}
	return c.normalize(status, data)
}

// requestRaw sends one API call expecting a binary payload (PDF documents).
// Success returns the raw bytes; failures fall through to the standard
// normalization path.
func (c *Client) requestRaw(ctx context.Context, method, path string) ([]byte, error) {
	status, data, err := c.send(ctx, method, path, nil, nil)
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return data, nil
	}
	_, normErr := c.normalize(status, data)
	if normErr == nil {
		normErr = &APIError{Status: status}
	}
	return nil, normErr
}

// send performs the HTTP round-trip and returns the status and raw body.
func (c *Client) send(ctx context.Context, method, path string, body any, query url.Values) (int, []byte, error) {
	endpoint := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, data, nil
}

// normalize folds a raw response into parsed data or *APIError. A 2xx body
// carrying an embedded error object is surfaced the same way as a transport
// failure, because the carrier sometimes reports failures inside successful
// statuses.
func (c *Client) normalize(status int, body []byte) (any, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &APIError{
			Status:  status,
			Message: "Failed to parse JSON body: " + err.Error(),
		}
	}

	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		if object, ok := payload.(map[string]any); ok {
			if embedded, exists := object["error"]; exists {
				c.logger.Error("cdek: api returned embedded error", slog.Any("error", embedded))
				return nil, &APIError{Status: status, Payload: embedded}
			}
		}
		return payload, nil
	}

	return nil, &APIError{Status: status, Payload: payload}
}

// validateUUID checks an identifier against the canonical UUID v4 shape
// before it is interpolated into a request path.
func validateUUID(id string) error {
	if len(id) != 36 || id[8] != '-' || id[13] != '-' || id[18] != '-' || id[23] != '-' {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.Version() != 4 || parsed.Variant() != uuid.RFC4122 {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}
