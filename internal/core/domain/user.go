package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account. Password holds the bcrypt hash, never the plain text.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// Session is the result of a successful login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Identity is the caller resolved from a verified token. Handlers trust it;
// the core does not re-validate credentials.
type Identity struct {
	UserID string
	Role   string
}
