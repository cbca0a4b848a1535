package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jobtrack/jobtrack/internal/core/domain"
)

// SessionStore keeps server-side session state in Redis.
// Key schema: session:<sid> is a hash of user_id, username. Keys carry the
// session TTL, so abandoned sessions expire without a reaper.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *SessionStore) Create(ctx context.Context, session *domain.Session, ttl time.Duration) error {
	key := sessionKey(session.ID)

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"user_id":  session.UserID,
		"username": session.Username,
	})
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	fields, err := s.client.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrSessionNotFound
	}

	return &domain.Session{
		ID:       id,
		UserID:   fields["user_id"],
		Username: fields["username"],
	}, nil
}

// Delete removes the session. Deleting an absent session is a no-op.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
