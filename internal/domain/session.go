package domain

import (
	"context"
	"time"
)

// SessionTTL is the fixed lifetime of a session token. Expiry is passive,
// enforced by the key-value store; there is no renewal on access.
const SessionTTL = 24 * time.Hour

// SessionStore issues, resolves, and revokes opaque session tokens.
// Resolve returns ErrUnauthorized for unknown and expired tokens alike.
// Revoke is idempotent.
type SessionStore interface {
	Issue(ctx context.Context, userID string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}
