package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "taskboard/docs"
	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/handlers"
	"taskboard/internal/logger"
	"taskboard/internal/middleware"
	"taskboard/internal/repositories"
	"taskboard/internal/repositories/memory"
	"taskboard/internal/routes"
	"taskboard/internal/services"
)

// Run loads configuration, wires the server and blocks until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load(configPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// === Store ===
	userRepo, taskRepo, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	router := NewRouter(cfg, log, userRepo, taskRepo)

	// === Run ===
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[server] listening", zap.String("addr", srv.Addr), zap.String("store", cfg.Store))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		log.Info("[server] shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("[server] stopped")
	return nil
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return config.DefaultPath
}

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (repositories.UserRepository, repositories.TaskRepository, func(), error) {
	if cfg.Store == config.StoreMemory {
		log.Warn("[store] using in-memory store; data is lost on restart")
		store := memory.NewStore()
		return store.Users(), store.Tasks(), func() {}, nil
	}

	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		return nil, nil, nil, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Warn("[store] close database", zap.Error(err))
		}
	}
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db, log); err != nil {
			closeDB()
			return nil, nil, nil, err
		}
	}
	return repositories.NewUserRepository(db), repositories.NewTaskRepository(db), closeDB, nil
}

// NewRouter builds the gin engine with every service wired over the given repositories.
func NewRouter(cfg *config.Config, log *zap.Logger, userRepo repositories.UserRepository, taskRepo repositories.TaskRepository) *gin.Engine {
	// === Services ===
	authService := services.NewAuthService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpiresIn, cfg.BcryptRounds)
	emailService := services.NewEmailService(cfg.Email)
	accountService := services.NewAccountService(userRepo, authService, emailService, log)
	taskService := services.NewTaskService(taskRepo, userRepo)
	userService := services.NewUserService(userRepo)
	statsService := services.NewStatsService(taskRepo)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(accountService, log)
	taskHandler := handlers.NewTaskHandler(taskService, log)
	userHandler := handlers.NewUserHandler(userService, log)
	statsHandler := handlers.NewStatsHandler(statsService, log)

	// === Gin ===
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(corsMiddleware(cfg.CORS.AllowedOrigins))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return routes.SetupRoutes(router, log, accountService, authHandler, taskHandler, userHandler, statsHandler)
}

func corsMiddleware(allowed []string) gin.HandlerFunc {
	allowAll := false
	origins := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			allowAll = true
		}
		origins[o] = struct{}{}
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := origins[origin]; ok || (allowAll && origin != "") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Add("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
