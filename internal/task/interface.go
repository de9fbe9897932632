package task

import (
	"context"

	"remindly/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create extracts any schedule from the raw text, normalizes the title,
	// and stores the task.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// List returns the caller's tasks with optional filters.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Detail returns a single task by ID.
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)

	// Update applies a partial update to a task.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)

	// Delete permanently removes a task.
	Delete(ctx context.Context, sc model.Scope, id string) error
}
