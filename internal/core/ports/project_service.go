package ports

import (
	"context"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
)

// CreateProjectInput is the DTO passed from the transport layer when creating
// a project. Empty Status/Priority fall back to their defaults.
type CreateProjectInput struct {
	Name        string
	Description string
	Status      string
	Priority    string
	OwnerID     int64
}

// ProjectService exposes project CRUD operations.
type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	List(ctx context.Context, skip, limit int) ([]*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	Update(ctx context.Context, id int64, patch ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}
