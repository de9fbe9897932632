package repository

import (
	"context"

	"remindly/internal/model"
)

// TaskRepository is the interface for task row access in the hosted database.
type TaskRepository interface {
	CreateTask(ctx context.Context, sc model.Scope, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	ListTasks(ctx context.Context, sc model.Scope, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, sc model.Scope, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, sc model.Scope, id string) error
}

// ListRepository reads the caller's lists, used for LLM list matching.
type ListRepository interface {
	ListLists(ctx context.Context, sc model.Scope) ([]model.List, error)
}
