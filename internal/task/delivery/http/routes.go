package http

import (
	"github.com/gin-gonic/gin"

	"remindly/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("", mw.Auth(), h.Create)
	rg.GET("", mw.Auth(), h.List)
	rg.GET("/:id", mw.Auth(), h.Detail)
	rg.PUT("/:id", mw.Auth(), h.Update)
	rg.DELETE("/:id", mw.Auth(), h.Delete)
}
