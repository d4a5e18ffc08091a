package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/apperrors"
	"taskboard/internal/authz"
	"taskboard/internal/logger"
	"taskboard/internal/models"
)

const (
	ctxUserKey  = "auth_user"
	ctxActorKey = "auth_actor"
)

// Authenticator resolves a bearer token to an active user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware requires a valid bearer token naming an active user and stores the
// caller in the gin context.
func AuthMiddleware(auth Authenticator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abort(c, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if apperrors.Is(err, apperrors.KindAuth) {
				abort(c, http.StatusUnauthorized, err.Error())
				return
			}
			logger.WithRequestID(c.Request.Context(), log).Error("[auth][middleware] lookup failed", zap.Error(err))
			abort(c, http.StatusInternalServerError, "Server error")
			return
		}

		c.Set(ctxUserKey, user)
		c.Set(ctxActorKey, authz.Actor{ID: user.ID, Role: user.Role})
		c.Next()
	}
}

// ActorFromContext returns the caller stored by AuthMiddleware.
func ActorFromContext(c *gin.Context) (authz.Actor, bool) {
	v, ok := c.Get(ctxActorKey)
	if !ok {
		return authz.Actor{}, false
	}
	actor, ok := v.(authz.Actor)
	return actor, ok
}

func UserFromContext(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}
