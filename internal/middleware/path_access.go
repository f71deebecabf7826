package middleware

import (
	"hivedesk/internal/authz"
	"hivedesk/internal/shared/apperror"
	"hivedesk/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// VerifyPathAccess gates the employee-scoped route group. Requests carry a
// (name, role) claim in the path; the policy decision runs before any
// handler touches lifecycle state.
func VerifyPathAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := authz.Identity{
			ID:   c.GetString("user_id"),
			Name: c.GetString("user_name"),
			Role: c.GetString("role"),
		}

		if !authz.Authorize(caller, c.Param("name"), c.Param("role")) {
			response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
