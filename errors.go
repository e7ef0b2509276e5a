package cdek

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUUID is returned for identifiers that are not well-formed
	// UUID v4 values, before any request is attempted.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrUnknownEnvironment is returned when the configured environment name
	// does not match a known API endpoint.
	ErrUnknownEnvironment = errors.New("unknown environment")

	// ErrMissingCredentials is returned when the client id or secret is empty.
	ErrMissingCredentials = errors.New("client id and client secret are required")
)

// AuthError is returned from New when the OAuth2 token exchange fails. It is
// the one failure mode that is not normalized into *APIError, because it
// happens before a usable client exists.
type AuthError struct {
	// Code and Description carry the carrier's structured error body when it
	// could be parsed.
	Code        string
	Description string
	// Status and Body carry the raw response when the error body was not the
	// documented {error, error_description} shape.
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	if e.Code != "" {
		if e.Description != "" {
			return fmt.Sprintf("authentication failed: %s: %s", e.Code, e.Description)
		}
		return "authentication failed: " + e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("authentication failed: status %d: %s", e.Status, e.Body)
	}
	return "authentication failed: " + e.Body
}

// APIError is the uniform error shape returned for every failed remote call:
// network failures, non-2xx statuses, unparsable bodies, and 2xx responses
// carrying an embedded error object.
type APIError struct {
	// Status is the HTTP status code, when a response was received.
	Status int
	// Payload is the parsed error body or embedded error value, when the
	// response carried one.
	Payload any
	// Message describes transport and parse failures that produced no
	// structured payload.
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Payload != nil {
		return fmt.Sprintf("api error: %v", e.Payload)
	}
	return fmt.Sprintf("api error: status %d", e.Status)
}
