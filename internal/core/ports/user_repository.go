package ports

import (
	"context"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with ID and timestamps set.
	// A store-level unique violation on email yields domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail retrieves a user by exact, case-sensitive email match.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// List returns up to limit users, skipping the first skip rows.
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)
	// Update applies the non-nil fields of patch to the stored user.
	Update(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// UserPatch carries a partial user update; nil fields are left untouched.
type UserPatch struct {
	Email    *string
	Username *string
	FullName *string
	IsActive *bool
}
