package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yukikurage/task-tracker-api/internal/handlers"
	"github.com/yukikurage/task-tracker-api/internal/middleware"
	"github.com/yukikurage/task-tracker-api/internal/repository"
	"github.com/yukikurage/task-tracker-api/internal/services"
	"github.com/yukikurage/task-tracker-api/internal/utils"
	"gorm.io/gorm"
)

// Options configures the application wiring
type Options struct {
	JWTSecret  string
	BcryptCost int
	Clock      utils.Clock
}

// App holds the services built by New
type App struct {
	Router           *gin.Engine
	AuthService      *services.AuthService
	TaskService      *services.TaskService
	IdentityResolver *services.IdentityResolver
	TokenService     *services.TokenService
}

// New is the composition root: it builds the stores on db, the services on
// top of them and the gin router exposing them.
func New(db *gorm.DB, logger *slog.Logger, opts Options) *App {
	clock := opts.Clock
	if clock == nil {
		clock = utils.NewRealClock()
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	tokenService := services.NewTokenService(opts.JWTSecret, clock)
	hasher := services.NewBcryptHasher(opts.BcryptCost)
	authService := services.NewAuthService(userRepo, hasher, tokenService, logger)
	resolver := services.NewIdentityResolver(tokenService, userRepo, logger)
	taskService := services.NewTaskService(taskRepo, logger)

	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Task Tracker API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/signin", authHandler.Signin)
		auth.GET("/me", middleware.RequireAuth(resolver), authHandler.GetCurrentUser)
	}

	// Task routes (protected)
	tasks := r.Group("/tasks")
	tasks.Use(middleware.RequireAuth(resolver))
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:id", middleware.RequireTaskAccess(taskService), taskHandler.GetTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
		tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
	}

	return &App{
		Router:           r,
		AuthService:      authService,
		TaskService:      taskService,
		IdentityResolver: resolver,
		TokenService:     tokenService,
	}
}
