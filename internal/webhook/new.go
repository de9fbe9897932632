package webhook

import (
	"remindly/internal/task/repository"
	pkgLog "remindly/pkg/log"
)

type Handler struct {
	repo     repository.TaskRepository
	security *SecurityValidator
	l        pkgLog.Logger
}

func NewHandler(
	repo repository.TaskRepository,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		repo:     repo,
		security: NewSecurityValidator(securityConfig),
		l:        l,
	}
}
