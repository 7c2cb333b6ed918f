package httpx

import (
	"context"
	"net/http"
	"strings"

	"foodcourt/internal/core/domain"
	"foodcourt/internal/core/ports"
)

type ctxKey int

const identityKey ctxKey = iota

// IdentityFrom extracts the authenticated caller placed in the context by
// AuthGuard. The comma-ok form is false on routes without the guard.
func IdentityFrom(ctx context.Context) (*domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*domain.Identity)
	return id, ok
}

// bearerToken returns the token from an "Authorization: Bearer x" header,
// or "" when the header is absent or malformed.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// AuthGuard rejects requests without a valid bearer token and stores the
// caller's identity in the request context.
func AuthGuard(tokens ports.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeFailure(w, http.StatusUnauthorized, "No token provided")
				return
			}

			identity, err := tokens.Validate(r.Context(), token)
			if err != nil {
				writeFailure(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminGuard only passes callers whose token carries the admin role.
// It must run after AuthGuard.
func AdminGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFrom(r.Context())
		if !ok || identity.Role != domain.RoleAdmin {
			writeFailure(w, http.StatusForbidden, "Forbidden resource")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CORS answers preflight requests and stamps the permissive headers the
// browser clients expect.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
