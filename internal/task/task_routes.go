package task

import (
	"hivedesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes mounts the HR-facing task endpoints.
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	tasks := r.Group("/tasks")
	{
		tasks.GET("", middleware.RequireAccess(enforcer, "tasks", "read"), handler.List)
		tasks.POST("", middleware.RequireAccess(enforcer, "tasks", "manage"), handler.Create)
		tasks.POST("/assign", middleware.RequireAccess(enforcer, "tasks", "manage"), handler.Assign)
		tasks.GET("/assignments", middleware.RequireAccess(enforcer, "tasks", "read"), handler.ListAssignments)
	}
}

// RegisterEmployeeRoutes mounts the employee checklist endpoints under the
// name/role scoped group.
func RegisterEmployeeRoutes(r *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	r.GET("/tasks", middleware.RequireAccess(enforcer, "tasks", "read"), handler.ListMine)
	r.POST("/tasks/complete", middleware.RequireAccess(enforcer, "tasks", "complete"), handler.Complete)
}
