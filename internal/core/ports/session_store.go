package ports

import (
	"context"
	"time"

	"github.com/jobtrack/jobtrack/internal/core/domain"
)

// SessionStore holds server-side session state. Implementations must make
// Delete idempotent: deleting an absent session is not an error.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
