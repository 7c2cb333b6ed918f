package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"foodcourt/internal/core/domain"
	"foodcourt/internal/core/ports"
)

// Users handles login and logout. Credentials are verified here; from
// then on the guards trust the token's claims.
type Users struct {
	store  ports.Store
	tokens ports.TokenManager
}

func NewUsers(store ports.Store, tokens ports.TokenManager) *Users {
	return &Users{store: store, tokens: tokens}
}

// Login verifies the credentials and issues a bearer token. Both failure
// modes map to 400: an unknown username is not distinguished from a wrong
// password by status code.
func (s *Users) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	if username == "" || password == "" {
		return nil, domain.Validation("invalid data")
	}

	user, err := s.store.Users().GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Validation("username is not registered")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.Validation("wrong password")
		}
		return nil, err
	}

	token, expiresAt, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &domain.Session{Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the presented token for the remainder of its lifetime.
func (s *Users) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}
