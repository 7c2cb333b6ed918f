package ports

import (
	"context"
	"time"

	"foodcourt/internal/core/domain"
)

// TokenManager issues and verifies the bearer tokens the HTTP guards rely
// on. Revocation is persistent and bounded: revoked entries expire with
// the token they invalidate.
type TokenManager interface {
	Generate(userID, role string) (token string, expiresAt time.Time, err error)
	Validate(ctx context.Context, token string) (*domain.Identity, error)
	Revoke(ctx context.Context, token string) error
}

// RevocationSet stores revoked token identifiers until their natural
// expiry. Backed by Redis in production.
type RevocationSet interface {
	Add(ctx context.Context, tokenID string, ttl time.Duration) error
	Contains(ctx context.Context, tokenID string) (bool, error)
}
