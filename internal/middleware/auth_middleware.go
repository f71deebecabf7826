package middleware

import (
	"net/http"
	"strings"

	"hivedesk/internal/shared/contextutil"
	"hivedesk/internal/shared/response"
	"hivedesk/internal/token"
	tokenerrors "hivedesk/internal/token/errors"
	"hivedesk/internal/user"

	"github.com/gin-gonic/gin"
)

// Authenticate validates the bearer token and resolves its subject against
// the credential store. Deactivated users are rejected even while their
// tokens are still within lifetime. A missing, malformed and expired token
// all produce the same 401 body.
func Authenticate(tokens token.Service, users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, tokenerrors.ErrInvalidToken.Code, tokenerrors.ErrInvalidToken.Message, nil)
			c.Abort()
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, tokenerrors.ErrInvalidToken.Code, tokenerrors.ErrInvalidToken.Message, nil)
			c.Abort()
			return
		}

		u, err := users.GetActiveByID(c.Request.Context(), claims.Subject)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, tokenerrors.ErrInvalidToken.Code, tokenerrors.ErrInvalidToken.Message, nil)
			c.Abort()
			return
		}

		c.Set("user_id", u.ID.String())
		c.Set("user_name", u.Name)
		c.Set("role", u.Role)

		ctx := contextutil.WithUserID(c.Request.Context(), u.ID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
