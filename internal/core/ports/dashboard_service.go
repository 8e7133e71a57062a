package ports

import "context"

// DashboardMetrics holds the headline counters. Counts come from the store
// when positive; zero counts fall back to documented demo placeholders.
type DashboardMetrics struct {
	TotalUsers        int64   `json:"total_users"`
	ActiveProjects    int64   `json:"active_projects"`
	CompletedProjects int64   `json:"completed_projects"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
}

// ChartData is a label/value series for the dashboard charts.
type ChartData struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// ActivityItem is one row of the recent-activity feed, with a human-readable
// relative time.
type ActivityItem struct {
	ID      int    `json:"id"`
	User    string `json:"user"`
	Action  string `json:"action"`
	Project string `json:"project"`
	Time    string `json:"time"`
}

// DashboardData is the full payload of GET /api/dashboard/metrics.
type DashboardData struct {
	Metrics          DashboardMetrics `json:"metrics"`
	UserGrowth       ChartData        `json:"user_growth"`
	ProjectStatus    map[string]int64 `json:"project_status"`
	RecentActivities []ActivityItem   `json:"recent_activities"`
}

// DashboardService assembles the dashboard metrics payload.
type DashboardService interface {
	Metrics(ctx context.Context) (*DashboardData, error)
}
