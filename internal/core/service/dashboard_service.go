package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/ports"
)

// Placeholder values shown while the store is empty. The policy is explicit:
// a real count is used when it is greater than zero, otherwise the documented
// placeholder takes its place.
const (
	placeholderTotalUsers        = 42
	placeholderActiveProjects    = 15
	placeholderCompletedProjects = 28
	placeholderPausedProjects    = 3
	placeholderMonthlyRevenue    = 48750.50
)

const recentActivityCount = 3

// SnapshotCache caches the assembled dashboard payload for a short TTL.
// Failures are tolerated; the dashboard falls back to direct computation.
type SnapshotCache interface {
	Get(ctx context.Context, out *ports.DashboardData) (bool, error)
	Set(ctx context.Context, data *ports.DashboardData) error
}

// DashboardService assembles the metrics payload from real counts, the
// activity feed, and documented demo placeholders.
type DashboardService struct {
	users      ports.UserRepository
	projects   ports.ProjectRepository
	activities ports.ActivityRepository
	cache      SnapshotCache
	log        zerolog.Logger
}

func NewDashboardService(
	users ports.UserRepository,
	projects ports.ProjectRepository,
	activities ports.ActivityRepository,
	cache SnapshotCache,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		users:      users,
		projects:   projects,
		activities: activities,
		cache:      cache,
		log:        log,
	}
}

func (s *DashboardService) Metrics(ctx context.Context) (*ports.DashboardData, error) {
	if s.cache != nil {
		var cached ports.DashboardData
		hit, err := s.cache.Get(ctx, &cached)
		if err != nil {
			s.log.Warn().Err(err).Msg("dashboard cache read failed, computing directly")
		} else if hit {
			return &cached, nil
		}
	}

	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: count users: %w", err)
	}
	active, err := s.projects.CountByStatus(ctx, domain.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("dashboard: count active projects: %w", err)
	}
	completed, err := s.projects.CountByStatus(ctx, domain.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("dashboard: count completed projects: %w", err)
	}
	paused, err := s.projects.CountByStatus(ctx, domain.StatusPaused)
	if err != nil {
		return nil, fmt.Errorf("dashboard: count paused projects: %w", err)
	}

	data := &ports.DashboardData{
		Metrics: ports.DashboardMetrics{
			TotalUsers:        orPlaceholder(totalUsers, placeholderTotalUsers),
			ActiveProjects:    orPlaceholder(active, placeholderActiveProjects),
			CompletedProjects: orPlaceholder(completed, placeholderCompletedProjects),
			MonthlyRevenue:    placeholderMonthlyRevenue,
		},
		UserGrowth: ports.ChartData{
			Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
			Data:   []float64{10, 15, 22, 28, 35, 42},
		},
		ProjectStatus: map[string]int64{
			"active":    orPlaceholder(active, placeholderActiveProjects),
			"completed": orPlaceholder(completed, placeholderCompletedProjects),
			"paused":    orPlaceholder(paused, placeholderPausedProjects),
		},
		RecentActivities: s.recentActivities(ctx),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, data); err != nil {
			s.log.Warn().Err(err).Msg("dashboard cache write failed")
		}
	}

	return data, nil
}

// recentActivities reads the newest feed entries; an empty or unreachable
// feed yields the fixed demo trio instead.
func (s *DashboardService) recentActivities(ctx context.Context) []ports.ActivityItem {
	entries, err := s.activities.Latest(ctx, recentActivityCount)
	if err != nil {
		s.log.Warn().Err(err).Msg("activity feed read failed, using placeholders")
	}
	if len(entries) == 0 {
		return placeholderActivities()
	}

	items := make([]ports.ActivityItem, 0, len(entries))
	for i, a := range entries {
		items = append(items, ports.ActivityItem{
			ID:      i + 1,
			User:    a.User,
			Action:  a.Action,
			Project: a.Project,
			Time:    relativeTime(time.Since(a.CreatedAt)),
		})
	}
	return items
}

func placeholderActivities() []ports.ActivityItem {
	return []ports.ActivityItem{
		{ID: 1, User: "Rafael García", Action: "Created new project", Project: "ERP Module", Time: "2 hours ago"},
		{ID: 2, User: "Ana López", Action: "Completed task", Project: "Dashboard UI", Time: "4 hours ago"},
		{ID: 3, User: "Carlos Ruiz", Action: "Updated user profile", Project: "User Management", Time: "6 hours ago"},
	}
}

// relativeTime renders an elapsed duration the way the dashboard feed shows
// it ("5 minutes ago", "2 hours ago", "3 days ago").
func relativeTime(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	default:
		return plural(int(d.Hours()/24), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

func orPlaceholder(count, placeholder int64) int64 {
	if count > 0 {
		return count
	}
	return placeholder
}
