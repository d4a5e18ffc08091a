package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/models"
)

// RequireRoles rejects callers whose role is not listed. It must run after AuthMiddleware.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	allowedSet := map[models.Role]struct{}{}
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "Not authorized, no token")
			return
		}
		if _, ok := allowedSet[actor.Role]; !ok {
			abort(c, http.StatusForbidden, "Access denied. Admin only.")
			return
		}
		c.Next()
	}
}
