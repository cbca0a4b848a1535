package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobtrack/jobtrack/internal/core/domain"
	"github.com/jobtrack/jobtrack/internal/core/ports"
)

// AuthService implements signup, login and session lifecycle.
//
// Sessions are held server-side (SessionStore); the browser carries an
// HS256-signed token referencing the session ID. Logout deletes the
// server-side record, so a stolen token dies with the session.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	secret     string
	sessionTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, secret string, sessionTTL time.Duration, logger zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		secret:     secret,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

func (s *AuthService) Signup(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Msg("user signed up")
	return created, nil
}

// Login verifies credentials and establishes a session. Unknown username
// and wrong password both return ErrInvalidCredentials so the form cannot
// be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		ID:       newSessionID(),
		UserID:   user.ID,
		Username: user.Username,
	}
	if err := s.sessions.Create(ctx, session, s.sessionTTL); err != nil {
		return "", nil, err
	}

	token, err := s.signToken(session)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", username).Msg("user logged in")
	return token, user, nil
}

// Logout destroys the session behind token. Idempotent: a malformed token
// or an already-expired session is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	sid, _, err := s.parseToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, sid)
}

// Resolve validates token and returns the live session it references.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	sid, uid, err := s.parseToken(token)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	session, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return nil, err
	}
	// A session bound to a different user than the token claims means the
	// token was tampered with or the sid was reused.
	if session.UserID != uid {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *AuthService) signToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid": session.ID,
		"sub": session.UserID,
		"exp": time.Now().Add(s.sessionTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

func (s *AuthService) parseToken(token string) (sid, uid string, err error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !tkn.Valid {
		return "", "", fmt.Errorf("parse session token: %w", err)
	}

	sid, _ = claims["sid"].(string)
	uid, _ = claims["sub"].(string)
	if sid == "" || uid == "" {
		return "", "", jwt.ErrTokenInvalidClaims
	}
	return sid, uid, nil
}

func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// fallback: time-derived id
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
