package supabase

import (
	"remindly/internal/task/repository"
	pkgLog "remindly/pkg/log"
)

const (
	tasksTable = "tasks"
	listsTable = "lists"
)

type implRepository struct {
	l      pkgLog.Logger
	client *Client
}

// New creates a repository backed by the hosted database REST interface.
func New(l pkgLog.Logger, client *Client) *implRepository {
	return &implRepository{
		l:      l,
		client: client,
	}
}

var (
	_ repository.TaskRepository = (*implRepository)(nil)
	_ repository.ListRepository = (*implRepository)(nil)
)
