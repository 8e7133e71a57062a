package ports

import (
	"context"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
)

// ActivityRepository handles the append-only activity feed shown on the
// dashboard.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
	// Latest returns up to n activities, most recent first.
	Latest(ctx context.Context, n int) ([]*domain.Activity, error)
}
