package employee

import (
	"hivedesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	employees := r.Group("/employees")
	{
		employees.GET("", middleware.RequireAccess(enforcer, "employees", "read"), handler.List)
		employees.GET("/:id", middleware.RequireAccess(enforcer, "employees", "read"), handler.Detail)
		employees.PATCH("/:id", middleware.RequireAccess(enforcer, "employees", "write"), handler.Update)
		employees.DELETE("/:id", middleware.RequireAccess(enforcer, "employees", "write"), handler.Delete)
	}
}
