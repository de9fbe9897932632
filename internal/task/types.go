package task

import (
	"time"

	"remindly/internal/model"
	"remindly/pkg/schedule"
)

// CreateInput is the input for task creation.
// UserID lives in model.Scope, not here.
type CreateInput struct {
	Text   string // Raw natural-language text from the user
	ListID string // Optional list to file the task under
}

// CreateOutput is the result of task creation.
type CreateOutput struct {
	Task model.Task
}

// ListInput is the input for listing tasks.
type ListInput struct {
	ListID string // Filter by list (optional)
	Done   *bool  // Filter by completion state (optional)
	Limit  int    // Max results (default 20)
	Offset int    // Pagination offset
}

// ListOutput is the result of listing tasks.
type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

// DetailOutput is the result of fetching a single task.
type DetailOutput struct {
	Task model.Task
}

// UpdateInput is the input for a partial task update.
// Nil pointers mean "leave unchanged".
type UpdateInput struct {
	ID         string
	Title      *string
	Done       *bool
	ListID     *string
	Priority   *string
	Recurrence *schedule.Recurrence // Replaces the schedule; clears RemindAt
	RemindAt   *time.Time           // Replaces the reminder time; clears Recurrence
}

// UpdateOutput is the result of a task update.
type UpdateOutput struct {
	Task model.Task
}
