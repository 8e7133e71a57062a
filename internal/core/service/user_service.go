package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/ports"
)

const (
	defaultListLimit = 100
	maxListLimit     = 100
)

// ActivityRecorder enqueues activity entries for the dashboard feed without
// blocking the request path.
type ActivityRecorder interface {
	Record(activity domain.Activity)
}

// UserService implements the admin-facing user operations.
type UserService struct {
	repo       ports.UserRepository
	activities ActivityRecorder
	log        zerolog.Logger
}

func NewUserService(repo ports.UserRepository, activities ActivityRecorder, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, activities: activities, log: log}
}

func (s *UserService) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	skip, limit = clampPage(skip, limit)
	return s.repo.List(ctx, skip, limit)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id int64, patch ports.UserPatch) (*domain.User, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.activities.Record(domain.Activity{
		User:      updated.FullName,
		Action:    "Updated user profile",
		Project:   "User Management",
		CreatedAt: time.Now().UTC(),
	})
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

// clampPage normalizes skip/limit query values: negatives become zero and
// limit is capped at maxListLimit.
func clampPage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return skip, limit
}
