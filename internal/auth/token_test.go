package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"foodcourt/internal/core/domain"
)

type memoryRevocationSet struct {
	entries map[string]time.Time
}

func newMemoryRevocationSet() *memoryRevocationSet {
	return &memoryRevocationSet{entries: make(map[string]time.Time)}
}

func (s *memoryRevocationSet) Add(ctx context.Context, tokenID string, ttl time.Duration) error {
	s.entries[tokenID] = time.Now().Add(ttl)
	return nil
}

func (s *memoryRevocationSet) Contains(ctx context.Context, tokenID string) (bool, error) {
	deadline, ok := s.entries[tokenID]
	return ok && time.Now().Before(deadline), nil
}

func newTestManager() (*Manager, *memoryRevocationSet) {
	revoked := newMemoryRevocationSet()
	return NewManager("test-secret", "foodcourt", time.Hour, revoked), revoked
}

func TestGenerateAndValidate(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager()

	token, expiresAt, err := manager.Generate("user-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if remaining := time.Until(expiresAt); remaining < 55*time.Minute || remaining > time.Hour {
		t.Errorf("unexpected expiry: %v from now", remaining)
	}

	identity, err := manager.Validate(ctx, token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if identity.UserID != "user-1" || identity.Role != domain.RoleAdmin {
		t.Errorf("identity = %+v", identity)
	}
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager()

	token, _, err := manager.Generate("user-1", domain.RoleUser)
	if err != nil {
		t.Fatal(err)
	}

	// Break the signature.
	tampered := token + "x"
	if _, err := manager.Validate(ctx, tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}

	if _, err := manager.Validate(ctx, "not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager()
	other := NewManager("other-secret", "foodcourt", time.Hour, newMemoryRevocationSet())

	token, _, err := other.Generate("user-1", domain.RoleUser)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := manager.Validate(ctx, token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestValidateRejectsWrongIssuer(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager()
	other := NewManager("test-secret", "someone-else", time.Hour, newMemoryRevocationSet())

	token, _, err := other.Generate("user-1", domain.RoleUser)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := manager.Validate(ctx, token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	manager, revoked := newTestManager()

	token, _, err := manager.Generate("user-1", domain.RoleUser)
	if err != nil {
		t.Fatal(err)
	}

	if err := manager.Revoke(ctx, token); err != nil {
		t.Fatalf("Revoke returned error: %v", err)
	}
	if len(revoked.entries) != 1 {
		t.Fatalf("revocation set has %d entries, want 1", len(revoked.entries))
	}

	if _, err := manager.Validate(ctx, token); !errors.Is(err, ErrTokenRevoked) {
		t.Errorf("err = %v, want ErrTokenRevoked", err)
	}

	// A second revocation is a client error.
	err = manager.Revoke(ctx, token)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if !strings.Contains(ve.Message, "already revoked") {
		t.Errorf("message = %q", ve.Message)
	}
}

func TestRevokeGarbage(t *testing.T) {
	manager, _ := newTestManager()

	err := manager.Revoke(context.Background(), "garbage")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("err = %v, want ValidationError", err)
	}
}
