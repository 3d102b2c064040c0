package middleware

import (
	"net/http"

	"fieldserve/internal/domain"
	"fieldserve/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole lets the request through only when the token's role is one of
// the given roles.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Fail(c, http.StatusUnauthorized, "role not found in token")
			c.Abort()
			return
		}

		for _, r := range roles {
			if role.(string) == string(r) {
				c.Next()
				return
			}
		}

		response.Fail(c, http.StatusForbidden, "insufficient permissions")
		c.Abort()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin, domain.RoleSuperAdmin)
}
