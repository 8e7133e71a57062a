package domain

import (
	"errors"
	"time"
)

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	StatusActive    ProjectStatus = "active"
	StatusCompleted ProjectStatus = "completed"
	StatusPaused    ProjectStatus = "paused"
)

// ProjectPriority represents the urgency assigned to a project.
type ProjectPriority string

const (
	PriorityLow    ProjectPriority = "low"
	PriorityMedium ProjectPriority = "medium"
	PriorityHigh   ProjectPriority = "high"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidProjectData = errors.New("invalid project status or priority")
)

// IsValid reports whether s is one of the known project statuses.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusPaused:
		return true
	}
	return false
}

// IsValid reports whether p is one of the known project priorities.
func (p ProjectPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Project is a unit of work tracked on the dashboard. OwnerID references the
// owning user; the column is nullable but every write path sets it.
type Project struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Status      ProjectStatus   `json:"status"`
	Priority    ProjectPriority `json:"priority"`
	OwnerID     int64           `json:"owner_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at"`
}
