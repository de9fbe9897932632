package repository

import (
	"time"

	"remindly/pkg/schedule"
)

// CreateTaskOptions holds the parameters for inserting a task row.
type CreateTaskOptions struct {
	Title       string
	DisplayText string
	ListID      string
	Priority    string
	Recurrence  *schedule.Recurrence
	RemindAt    *time.Time
}

// ListTasksOptions holds the parameters for listing task rows.
type ListTasksOptions struct {
	ListID string // Filter by list (optional)
	Done   *bool  // Filter by completion state (optional)
	Limit  int    // Max number of results (default 20)
	Offset int    // Pagination offset
}

// UpdateTaskOptions holds the parameters for a partial task row update.
// Nil pointers mean "leave unchanged".
type UpdateTaskOptions struct {
	ID            string
	Title         *string
	DisplayText   *string
	Done          *bool
	ListID        *string
	Priority      *string
	Recurrence    *schedule.Recurrence
	RemindAt      *time.Time
	ClearSchedule bool // Drop both recurrence and reminder columns
}
