package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/booking-system/internal/core/domain"
	"github.com/hotelhub/booking-system/internal/core/ports"
)

// stubTokens validates exactly one token string.
type stubTokens struct {
	token    string
	identity ports.Identity
}

func (s *stubTokens) Issue(user *domain.User) (string, time.Time, error) {
	return s.token, time.Now().Add(time.Hour), nil
}

func (s *stubTokens) Validate(token string) (*ports.Identity, bool) {
	if token != s.token {
		return nil, false
	}
	id := s.identity
	return &id, true
}

func newAuthContext(e *echo.Echo, header string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := &stubTokens{
		token:    "good-token",
		identity: ports.Identity{UserID: 7, Username: "alice", Role: "Admin"},
	}
	c, rec := newAuthContext(e, "Bearer good-token")

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		if got := c.Get(CtxUserID); got != uint(7) {
			t.Fatalf("user id not set, got %v", got)
		}
		if c.Get(CtxUsername) != "alice" {
			t.Fatalf("username not set")
		}
		if c.Get(CtxRole) != "Admin" {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeaderStaysAnonymous(t *testing.T) {
	e := echo.New()
	tokens := &stubTokens{token: "good-token"}
	c, rec := newAuthContext(e, "")

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		if c.Get(CtxRole) != nil {
			t.Fatalf("role should not be set for anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("anonymous request must still reach the handler")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_InvalidTokenStaysAnonymous(t *testing.T) {
	e := echo.New()
	tokens := &stubTokens{token: "good-token"}

	for _, header := range []string{"Bearer forged", "Token abc", "Bearer"} {
		c, _ := newAuthContext(e, header)
		handler := Auth(tokens)(func(c echo.Context) error {
			if c.Get(CtxRole) != nil {
				t.Fatalf("header %q: role must not be set", header)
			}
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("header %q: handler error: %v", header, err)
		}
	}
}

func TestRequireAuth(t *testing.T) {
	e := echo.New()

	t.Run("authenticated passes", func(t *testing.T) {
		c, rec := newAuthContext(e, "")
		c.Set(CtxRole, "User")

		handler := RequireAuth()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		c, _ := newAuthContext(e, "")

		handler := RequireAuth()(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})
		err := handler(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 HTTPError, got %v", err)
		}
	})
}
