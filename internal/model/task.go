package model

import (
	"time"

	"remindly/pkg/schedule"
)

// Priority levels a task can carry.
const (
	PriorityNow  = "now"
	PriorityHigh = "high"
	PriorityLow  = "low"
)

// ValidPriority reports whether p is one of the known priority levels.
func ValidPriority(p string) bool {
	return p == PriorityNow || p == PriorityHigh || p == PriorityLow
}

// Task represents a single reminder stored in the hosted database.
type Task struct {
	ID          string               // Row UUID
	UserID      string               // Owning user UUID
	Title       string               // Cleaned task title (schedule phrase removed)
	DisplayText string               // Human-readable schedule, e.g. "Every Tuesday at 6:00 PM"
	ListID      string               // Optional list the task belongs to
	Priority    string               // "now", "high" or "low"
	Done        bool                 // Completion flag
	Recurrence  *schedule.Recurrence // Recurring schedule (nil for one-off tasks)
	RemindAt    *time.Time           // Absolute reminder time (nil for recurring tasks)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// List is a named group of tasks.
type List struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}
