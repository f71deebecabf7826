package auth

import (
	"hivedesk/internal/middleware"
	"hivedesk/internal/token"
	"hivedesk/internal/user"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	tokens token.Service,
	users user.Repository,
	enforcer middleware.Enforcer,
) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
		authGroup.GET("/me", middleware.Authenticate(tokens, users), handler.Me)
		authGroup.POST("/register",
			middleware.Authenticate(tokens, users),
			middleware.RequireAccess(enforcer, "users", "register"),
			handler.Register,
		)
	}
}
