package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyText       = errors.New("task text is empty")
	ErrNotFound        = errors.New("task not found")
	ErrInvalidPriority = errors.New("priority must be one of: now, high, low")
)
