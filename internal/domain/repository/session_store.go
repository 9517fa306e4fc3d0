package repository

import (
	"context"
	"time"
)

// SessionStore maps opaque session tokens to user ids.
// Lookup returns ErrNotFound for unknown or expired tokens.
type SessionStore interface {
	Create(ctx context.Context, token, userID string, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
