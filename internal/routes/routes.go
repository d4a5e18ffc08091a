package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/handlers"
	"taskboard/internal/middleware"
	"taskboard/internal/models"
)

func SetupRoutes(
	r *gin.Engine,
	log *zap.Logger,
	authenticator middleware.Authenticator,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	userHandler *handlers.UserHandler,
	statsHandler *handlers.StatsHandler,
) *gin.Engine {
	api := r.Group("/api")

	// ---- public
	api.GET("/health", handlers.Health)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// ---- protected
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authenticator, log))

	auth := protected.Group("/auth")
	{
		auth.GET("/me", authHandler.Me)
		auth.PUT("/profile", authHandler.UpdateProfile)
		auth.PATCH("/profile", authHandler.UpdateProfile)
		auth.PATCH("/password", authHandler.ChangePassword)
	}

	tasks := protected.Group("/tasks")
	{
		tasks.GET("", taskHandler.List)
		tasks.POST("", taskHandler.Create)
		tasks.GET("/:id", taskHandler.GetByID)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
	}

	users := protected.Group("/users")
	users.Use(middleware.RequireRoles(models.RoleAdmin))
	{
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.GetByID)
		users.PATCH("/:id/role", userHandler.UpdateRole)
		users.PATCH("/:id/deactivate", userHandler.Deactivate)
		users.PATCH("/:id/activate", userHandler.Activate)
		users.DELETE("/:id", userHandler.Delete)
	}

	stats := protected.Group("/stats")
	{
		stats.GET("/overview", statsHandler.Overview)
	}

	return r
}
