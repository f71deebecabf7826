package dashboard

import (
	"hivedesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	r.GET("/dashboard", middleware.RequireAccess(enforcer, "dashboard", "read"), handler.HRSummary)
}

func RegisterEmployeeRoutes(r *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	r.GET("/dashboard", middleware.RequireAccess(enforcer, "dashboard", "read"), handler.EmployeeSummary)
}
