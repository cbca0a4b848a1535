package ports

import (
	"context"

	"github.com/jobtrack/jobtrack/internal/core/domain"
)

// AuthService covers signup, login and session lifecycle.
type AuthService interface {
	Signup(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed session token
	// suitable for a cookie value, together with the user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout destroys the session referenced by token. Idempotent: an
	// invalid token or an already-destroyed session is a no-op.
	Logout(ctx context.Context, token string) error
	// Resolve validates token and returns the live session behind it.
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}
