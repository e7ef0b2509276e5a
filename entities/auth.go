package entities

import "github.com/shippinglabs/cdek/pkg/validation"

// AuthResponse is the token payload returned by a successful OAuth2
// client-credentials exchange. The expiry, scope, and jti fields are retained
// for observability only; the client never enforces them.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
	JTI         string `json:"jti"`
}

var authResponseRules = validation.RuleSet{
	{Attribute: "access_token", Kind: validation.String, Required: true},
	{Attribute: "token_type", Kind: validation.String, Required: true},
	{Attribute: "expires_in", Kind: validation.Int, Required: true},
	{Attribute: "scope", Kind: validation.String, Required: true},
	{Attribute: "jti", Kind: validation.String, Required: true},
}

// NewAuthResponse validates a decoded token payload.
func NewAuthResponse(r AuthResponse) (*AuthResponse, error) {
	if err := validation.Validate(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *AuthResponse) ValidationRules() validation.RuleSet { return authResponseRules }

func (r *AuthResponse) Attributes() map[string]any {
	return map[string]any{
		"access_token": r.AccessToken,
		"token_type":   r.TokenType,
		"expires_in":   r.ExpiresIn,
		"scope":        r.Scope,
		"jti":          r.JTI,
	}
}

// AuthErrorResponse is the error payload returned by a failed token exchange.
type AuthErrorResponse struct {
	Err         string `json:"error"`
	Description string `json:"error_description"`
}

var authErrorResponseRules = validation.RuleSet{
	{Attribute: "error", Kind: validation.String, Required: true},
	{Attribute: "error_description", Kind: validation.String, Required: true},
}

// NewAuthErrorResponse validates a decoded token error payload.
func NewAuthErrorResponse(r AuthErrorResponse) (*AuthErrorResponse, error) {
	if err := validation.Validate(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *AuthErrorResponse) ValidationRules() validation.RuleSet { return authErrorResponseRules }

func (r *AuthErrorResponse) Attributes() map[string]any {
	return map[string]any{
		"error":             r.Err,
		"error_description": r.Description,
	}
}
