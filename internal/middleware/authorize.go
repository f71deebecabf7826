package middleware

import (
	"strings"

	"hivedesk/internal/shared/apperror"
	"hivedesk/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Enforcer is a local interface; anything with casbin's Enforce signature
// fits.
type Enforcer interface {
	Enforce(rvals ...interface{}) (bool, error)
}

// RequireAccess checks the caller's role against the static resource:action
// policy. It runs after Authenticate.
func RequireAccess(e Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := strings.ToLower(c.GetString("role"))
		if role == "" {
			response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		allowed, err := e.Enforce(role, resource, action)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
