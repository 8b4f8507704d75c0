package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"employee-records/internal/response"
	"employee-records/internal/token"
)

// Context keys set by RequireAuth
const (
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "email"
)

// RequireAuth validates the bearer access token and sets the decoded
// claims in the gin context. A missing header is 401, a present but
// invalid or expired token is 403.
func RequireAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, response.CodeMissingToken, "Authorization header is required")
			c.Abort()
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) || len(authHeader) == len(bearerPrefix) {
			response.Forbidden(c, response.CodeInvalidToken, "Invalid authorization header format")
			c.Abort()
			return
		}
		tokenString := authHeader[len(bearerPrefix):]

		claims, err := tokens.VerifyAccess(tokenString)
		if err != nil {
			response.Forbidden(c, response.CodeInvalidToken, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)
		c.Next()
	}
}

// GetUserID returns the authenticated user id from the gin context
func GetUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextKeyUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
