package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"foodcourt/internal/adapters/memory"
	"foodcourt/internal/core/domain"
)

type fakeTokenManager struct {
	revoked []string
}

func (m *fakeTokenManager) Generate(userID, role string) (string, time.Time, error) {
	return "token-" + userID, time.Now().Add(time.Hour), nil
}

func (m *fakeTokenManager) Validate(ctx context.Context, token string) (*domain.Identity, error) {
	return &domain.Identity{UserID: "user-1", Role: domain.RoleUser}, nil
}

func (m *fakeTokenManager) Revoke(ctx context.Context, token string) error {
	m.revoked = append(m.revoked, token)
	return nil
}

func seedUser(t *testing.T, store *memory.Store, username, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	err = store.Users().Create(context.Background(), &domain.User{
		ID:       "user-1",
		Username: username,
		Password: string(hash),
		Role:     role,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedUser(t, store, "alice", "s3cret", domain.RoleUser)
	users := NewUsers(store, &fakeTokenManager{})

	session, err := users.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if session.Token == "" {
		t.Error("empty token in session")
	}
	if !session.ExpiresAt.After(time.Now()) {
		t.Errorf("expiry in the past: %v", session.ExpiresAt)
	}
}

func TestLoginRejections(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedUser(t, store, "alice", "s3cret", domain.RoleUser)
	users := NewUsers(store, &fakeTokenManager{})

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"empty credentials", "", ""},
		{"unknown username", "bob", "s3cret"},
		{"wrong password", "alice", "nope"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := users.Login(ctx, tc.username, tc.password)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
		})
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	tokens := &fakeTokenManager{}
	users := NewUsers(memory.NewStore(), tokens)

	if err := users.Logout(context.Background(), "token-user-1"); err != nil {
		t.Fatal(err)
	}
	if len(tokens.revoked) != 1 || tokens.revoked[0] != "token-user-1" {
		t.Errorf("revoked = %v, want [token-user-1]", tokens.revoked)
	}
}
