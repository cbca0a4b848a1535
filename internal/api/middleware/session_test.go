package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jobtrack/jobtrack/internal/core/domain"
)

type stubResolver struct {
	session *domain.Session
	err     error
}

func (s *stubResolver) Resolve(_ context.Context, token string) (*domain.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

func TestSessionMiddleware_ValidCookie(t *testing.T) {
	e := echo.New()
	resolver := &stubResolver{session: &domain.Session{ID: "sid", UserID: "user-1", Username: "alice"}}

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Session(resolver)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "user-1" {
			t.Fatalf("user_id not set")
		}
		if c.Get("username") != "alice" {
			t.Fatalf("username not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler was not called")
	}
}

func TestSessionMiddleware_MissingCookieRedirects(t *testing.T) {
	e := echo.New()
	resolver := &stubResolver{err: domain.ErrSessionNotFound}

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(resolver)(func(c echo.Context) error {
		t.Fatalf("next handler must not be called")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %s", loc)
	}
}

func TestSessionMiddleware_ExpiredSessionRedirects(t *testing.T) {
	e := echo.New()
	resolver := &stubResolver{err: domain.ErrSessionNotFound}

	req := httptest.NewRequest(http.MethodGet, "/track", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(resolver)(func(c echo.Context) error { return nil })

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}

func TestSessionMiddleware_APIRouteGets401(t *testing.T) {
	e := echo.New()
	resolver := &stubResolver{err: domain.ErrSessionNotFound}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(resolver)(func(c echo.Context) error { return nil })

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}
