// Package auth implements the bearer-token manager: HS256 JWTs carrying
// the caller's id and role, with persistent revocation.
//
// Revoked tokens are tracked by their jti claim in an external set whose
// entries expire with the token itself, so the set stays bounded and
// survives process restarts.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"foodcourt/internal/core/domain"
	"foodcourt/internal/core/ports"
)

// TokenTTL matches the original 7-day token lifetime.
const TokenTTL = 7 * 24 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token has been revoked")
)

// Manager implements ports.TokenManager.
type Manager struct {
	secret  []byte
	issuer  string
	ttl     time.Duration
	revoked ports.RevocationSet
}

var _ ports.TokenManager = (*Manager)(nil)

func NewManager(secret, issuer string, ttl time.Duration, revoked ports.RevocationSet) *Manager {
	return &Manager{
		secret:  []byte(secret),
		issuer:  issuer,
		ttl:     ttl,
		revoked: revoked,
	}
}

// Generate issues a signed token for the given identity.
func (m *Manager) Generate(userID, role string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(m.ttl)

	claims := jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"jti":    uuid.NewString(),
		"iss":    m.issuer,
		"iat":    jwt.NewNumericDate(now),
		"exp":    jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("auth: sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Validate verifies the signature, expiry, and issuer, checks the
// revocation set, and returns the embedded identity.
func (m *Manager) Validate(ctx context.Context, token string) (*domain.Identity, error) {
	claims, err := m.parse(token)
	if err != nil {
		return nil, err
	}

	jti, _ := claims["jti"].(string)
	if jti != "" {
		revoked, err := m.revoked.Contains(ctx, jti)
		if err != nil {
			return nil, fmt.Errorf("auth: revocation check: %w", err)
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	userID, _ := claims["userId"].(string)
	role, _ := claims["role"].(string)
	if userID == "" {
		return nil, ErrInvalidToken
	}
	return &domain.Identity{UserID: userID, Role: role}, nil
}

// Revoke marks the token's jti as revoked until the token would have
// expired anyway. Revoking an already-revoked token is an error the
// boundary maps to 400.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return domain.Validation("invalid token")
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return domain.Validation("invalid token")
	}

	revoked, err := m.revoked.Contains(ctx, jti)
	if err != nil {
		return fmt.Errorf("auth: revocation check: %w", err)
	}
	if revoked {
		return domain.Validation("token is already revoked")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return domain.Validation("invalid token")
	}

	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		// Already expired; nothing to persist.
		return nil
	}
	return m.revoked.Add(ctx, jti, ttl)
}

func (m *Manager) parse(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
