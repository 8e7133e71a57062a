package ports

import (
	"context"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, skip, limit int) ([]*domain.Project, error)
	// Update applies the non-nil fields of patch and refreshes updated_at
	// server-side.
	Update(ctx context.Context, id int64, patch ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, status domain.ProjectStatus) (int64, error)
}

// ProjectPatch carries a partial project update; nil fields are left untouched.
type ProjectPatch struct {
	Name        *string
	Description *string
	Status      *domain.ProjectStatus
	Priority    *domain.ProjectPriority
}
