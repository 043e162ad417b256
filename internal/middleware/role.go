package middleware

import (
	"net/http"
	"slices"

	"autoloco/internal/pkg/response"
	"autoloco/internal/status"

	"github.com/gin-gonic/gin"
)

// RequireRole lets the request through when the authenticated user has one
// of the given roles. Admins pass every check.
func RequireRole(roles ...status.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, exists := c.Get("role")
		if !exists {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			return
		}
		role, _ := raw.(string)
		userType := status.UserType(role)

		if userType != status.UserAdmin && !slices.Contains(roles, userType) {
			response.Abort(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}

// AdminOnly middleware requires admin role
func AdminOnly() gin.HandlerFunc {
	return RequireRole(status.UserAdmin)
}
