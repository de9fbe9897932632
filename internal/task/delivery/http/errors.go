package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"remindly/internal/task"
	"remindly/pkg/response"
)

var (
	errMissingID        = errors.New("id is required")
	errScheduleConflict = errors.New("recurrence and remind_at are mutually exclusive")
)

// respondError translates domain errors into HTTP responses. Unknown errors
// become an opaque 500 so store internals never leak to clients.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyText), errors.Is(err, task.ErrInvalidPriority):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
