package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
)

type stubUserFinder struct {
	users map[string]*domain.User
}

func (f *stubUserFinder) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func runAdminGuard(t *testing.T, finder UserFinder, email string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if email != "" {
		c.Set("email", email)
	}

	called := false
	handler := RequireAdmin(finder)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	finder := &stubUserFinder{users: map[string]*domain.User{
		"admin@smartadmin.com": {Email: "admin@smartadmin.com", IsAdmin: true, IsActive: true},
	}}

	rec, called := runAdminGuard(t, finder, "admin@smartadmin.com")
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAdmin_NonAdminForbidden(t *testing.T) {
	finder := &stubUserFinder{users: map[string]*domain.User{
		"bob@x.com": {Email: "bob@x.com", IsAdmin: false, IsActive: true},
	}}

	rec, called := runAdminGuard(t, finder, "bob@x.com")
	if called {
		t.Fatalf("next should not be called")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireAdmin_InactiveAdminForbidden(t *testing.T) {
	finder := &stubUserFinder{users: map[string]*domain.User{
		"old@x.com": {Email: "old@x.com", IsAdmin: true, IsActive: false},
	}}

	rec, _ := runAdminGuard(t, finder, "old@x.com")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireAdmin_MissingClaims(t *testing.T) {
	rec, _ := runAdminGuard(t, &stubUserFinder{}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdmin_UnknownAccount(t *testing.T) {
	rec, _ := runAdminGuard(t, &stubUserFinder{}, "ghost@x.com")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
