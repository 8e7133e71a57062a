package ports

import (
	"context"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
)

type AuthService interface {
	// Register creates a new account with is_admin=false, is_active=true.
	// An existing account with the same email yields domain.ErrEmailTaken.
	Register(ctx context.Context, email, username, fullName, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token. Unknown
	// email and wrong password are indistinguishable: both yield
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
}
