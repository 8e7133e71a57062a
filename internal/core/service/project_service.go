package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/ports"
)

// ProjectService implements project CRUD.
type ProjectService struct {
	repo       ports.ProjectRepository
	users      ports.UserRepository
	activities ActivityRecorder
	log        zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, users ports.UserRepository, activities ActivityRecorder, log zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, users: users, activities: activities, log: log}
}

// Create persists a new project. Status and priority default to active/medium
// when omitted, matching the store defaults.
func (s *ProjectService) Create(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	status := domain.ProjectStatus(in.Status)
	if in.Status == "" {
		status = domain.StatusActive
	}
	priority := domain.ProjectPriority(in.Priority)
	if in.Priority == "" {
		priority = domain.PriorityMedium
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidProjectData, in.Status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: priority %q", domain.ErrInvalidProjectData, in.Priority)
	}

	project := &domain.Project{
		Name:        in.Name,
		Description: in.Description,
		Status:      status,
		Priority:    priority,
		OwnerID:     in.OwnerID,
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	ownerName := ""
	if owner, err := s.users.FindByID(ctx, created.OwnerID); err == nil {
		ownerName = owner.FullName
	}
	s.activities.Record(domain.Activity{
		User:      ownerName,
		Action:    "Created new project",
		Project:   created.Name,
		CreatedAt: time.Now().UTC(),
	})

	return created, nil
}

func (s *ProjectService) List(ctx context.Context, skip, limit int) ([]*domain.Project, error) {
	skip, limit = clampPage(skip, limit)
	return s.repo.List(ctx, skip, limit)
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) Update(ctx context.Context, id int64, patch ports.ProjectPatch) (*domain.Project, error) {
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidProjectData, *patch.Status)
	}
	if patch.Priority != nil && !patch.Priority.IsValid() {
		return nil, fmt.Errorf("%w: priority %q", domain.ErrInvalidProjectData, *patch.Priority)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	action := "Updated project"
	if patch.Status != nil && *patch.Status == domain.StatusCompleted {
		action = "Completed task"
	}
	s.activities.Record(domain.Activity{
		Action:    action,
		Project:   updated.Name,
		CreatedAt: time.Now().UTC(),
	})
	return updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("project_id", id).Msg("project deleted")
	return nil
}
