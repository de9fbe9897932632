package http

import (
	"remindly/internal/task"
	"remindly/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       task.UseCase
	timezone string
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase, timezone string) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		timezone: timezone,
	}
}
