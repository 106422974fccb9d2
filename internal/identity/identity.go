package identity

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired access token")
)

// Identity is an authenticated subject as known to the identity provider.
// It carries two independent metadata bags: UserMetadata is self-reported
// and mutable by the subject, AppMetadata is privileged and written only by
// administrative tooling. Either bag may carry the role marker.
type Identity struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
	AppMetadata  map[string]interface{} `json:"app_metadata"`
}

// Provider is the narrow capability surface the rest of the system depends
// on. Authentication, password storage, and token issuance all live behind
// it; the concrete provider is swappable.
type Provider interface {
	// Authenticate verifies credentials and returns the identity together
	// with an access token bound to it. Returns ErrInvalidCredentials when
	// the provider rejects the credentials.
	Authenticate(ctx context.Context, email, password string) (*Identity, string, error)

	// GetIdentity resolves the identity currently bound to an access token.
	// Returns ErrInvalidToken for unknown, expired, or revoked tokens.
	GetIdentity(ctx context.Context, token string) (*Identity, error)

	// Revoke invalidates an access token. Revoking an already-invalid token
	// is not an error.
	Revoke(ctx context.Context, token string) error
}
