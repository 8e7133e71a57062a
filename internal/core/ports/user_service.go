package ports

import (
	"context"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
)

// UserService exposes the admin-facing user operations.
type UserService interface {
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
