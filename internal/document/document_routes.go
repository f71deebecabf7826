package document

import (
	"hivedesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	docs := r.Group("/documents")
	{
		docs.GET("", middleware.RequireAccess(enforcer, "documents", "read"), handler.ListAll)
		docs.POST("/:id/verify", middleware.RequireAccess(enforcer, "documents", "verify"), handler.Verify)
		docs.GET("/:id/download", middleware.RequireAccess(enforcer, "documents", "read"), handler.Download)
	}
}

func RegisterEmployeeRoutes(r *gin.RouterGroup, handler *Handler, enforcer middleware.Enforcer) {
	r.GET("/documents", middleware.RequireAccess(enforcer, "documents", "read"), handler.ListMine)
	r.POST("/documents/upload", middleware.RequireAccess(enforcer, "documents", "upload"), handler.Upload)
	r.GET("/documents/:id/download", middleware.RequireAccess(enforcer, "documents", "read"), handler.Download)
}
