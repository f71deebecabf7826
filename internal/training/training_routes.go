package training

import (
	"hivedesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	group := r.Group("/training")
	{
		group.GET("/modules", middleware.RequireAccess(enforcer, "training", "read"), handler.ListModules)
		group.POST("/modules", middleware.RequireAccess(enforcer, "training", "manage"), handler.CreateModule)
	}
}

func RegisterEmployeeRoutes(r *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	r.GET("/training", middleware.RequireAccess(enforcer, "training", "read"), handler.ListMine)
	r.POST("/training/progress", middleware.RequireAccess(enforcer, "training", "update"), handler.UpdateProgress)
}
