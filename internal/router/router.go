package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/taskforge-dev/taskforge/internal/handlers"
	"github.com/taskforge-dev/taskforge/internal/middleware"
	"github.com/taskforge-dev/taskforge/internal/store"
)

func NewRouter(st *store.Store, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := handlers.NewAuthHandler(st)
	projectHandler := handlers.NewProjectHandler(st)
	taskHandler := handlers.NewTaskHandler(st)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthMiddleware(st), authHandler.Me)
		}

		projects := api.Group("/projects", middleware.AuthMiddleware(st))
		{
			projects.POST("", projectHandler.Create)
			projects.GET("", projectHandler.List)
			projects.PUT("/:project_id", projectHandler.Update)
			projects.DELETE("/:project_id", projectHandler.Delete)

			// Task listing nests under the owning project.
			projects.GET("/:project_id/tasks", taskHandler.ListByProject)
		}

		tasks := api.Group("/tasks", middleware.AuthMiddleware(st))
		{
			tasks.POST("", taskHandler.Create)
			tasks.PUT("/:task_id", taskHandler.Update)
			tasks.DELETE("/:task_id", taskHandler.Delete)
			tasks.GET("/stats/user", taskHandler.Stats)
		}
	}

	return r
}
