package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"remindly/internal/middleware"
	taskHTTP "remindly/internal/task/delivery/http"
)

// setupTaskDomain wires the task HTTP handlers onto the API group.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase in main and pass it through Config
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	mw := middleware.New(srv.l)

	h := taskHTTP.New(srv.l, srv.taskUC, srv.timezone)
	taskHTTP.RegisterRoutes(api.Group("/tasks"), h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
