package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
)

// UserFinder looks up the account behind an authenticated subject.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RequireAdmin restricts a route to active admin accounts. The token only
// asserts the subject email, so the caller's record is loaded to check the
// admin and active flags. Must run after Auth.
func RequireAdmin(users UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			user, err := users.FindByEmail(c.Request().Context(), email)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown account")
			}
			if !user.IsActive || !user.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}

			return next(c)
		}
	}
}
