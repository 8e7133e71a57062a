package domain

import "time"

// Activity records a notable action for the dashboard feed, e.g.
// "Rafael García / Created new project / ERP Module".
type Activity struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Action    string    `json:"action"`
	Project   string    `json:"project"`
	CreatedAt time.Time `json:"created_at"`
}
