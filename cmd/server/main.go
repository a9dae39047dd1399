package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	internalauth "github.com/yukikurage/hr-onboarding-api/internal/auth"
	"github.com/yukikurage/hr-onboarding-api/internal/config"
	"github.com/yukikurage/hr-onboarding-api/internal/constants"
	"github.com/yukikurage/hr-onboarding-api/internal/database"
	"github.com/yukikurage/hr-onboarding-api/internal/handlers"
	"github.com/yukikurage/hr-onboarding-api/internal/middleware"
	"github.com/yukikurage/hr-onboarding-api/internal/repository"
	"github.com/yukikurage/hr-onboarding-api/internal/services"
	"github.com/yukikurage/hr-onboarding-api/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default accounts
	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Document storage on local disk
	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload directory: %v", err)
	}

	tokens := internalauth.NewTokenManager(cfg.JWTSecret, constants.TokenExpiryMinutes*time.Minute)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	docRepo := repository.NewDocumentRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo, taskRepo, docRepo)
	taskService := services.NewTaskService(taskRepo, userRepo)
	docService := services.NewDocumentService(docRepo, store)
	trainingService := services.NewTrainingService(trainingRepo)
	performanceService := services.NewPerformanceService(userRepo, taskRepo, docRepo, trainingRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	employeeHandler := handlers.NewEmployeeHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	docHandler := handlers.NewDocumentHandler(docService)
	trainingHandler := handlers.NewTrainingHandler(trainingService)
	performanceHandler := handlers.NewPerformanceHandler(performanceService, userService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "HR Onboarding API is running",
		})
	})

	// Auth routes (public, registration gated inside the handler chain)
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", middleware.RequireAuth(tokens, userRepo), middleware.RequireHR(), authHandler.Register)
	}

	// Every workspace route carries the caller's name and role in the path;
	// the path identity must match the authenticated principal.
	workspace := r.Group("/:name/:role")
	workspace.Use(middleware.RequireAuth(tokens, userRepo), middleware.RequirePathIdentity())
	{
		workspace.GET("/dashboard", performanceHandler.Dashboard)

		workspace.GET("/tasks", taskHandler.List)
		workspace.POST("/tasks", middleware.RequireHR(), taskHandler.Create)
		workspace.DELETE("/tasks/:task_id", middleware.RequireHR(), taskHandler.Delete)
		workspace.POST("/assign-task", middleware.RequireHR(), taskHandler.Assign)
		workspace.POST("/tasks/complete", taskHandler.Complete)

		workspace.GET("/employees", middleware.RequireHR(), employeeHandler.List)
		workspace.GET("/manage/:employee_id", middleware.RequireHR(), employeeHandler.Get)
		workspace.PUT("/manage/:employee_id", middleware.RequireHR(), employeeHandler.Update)
		workspace.DELETE("/manage/:employee_id", middleware.RequireHR(), employeeHandler.Delete)

		workspace.GET("/documents", docHandler.List)
		workspace.POST("/documents/upload", docHandler.Upload)
		workspace.POST("/documents/:document_id/verify", middleware.RequireHR(), docHandler.Verify)

		workspace.GET("/training", trainingHandler.List)
		workspace.POST("/training", middleware.RequireHR(), trainingHandler.Create)
		workspace.POST("/training/progress", trainingHandler.UpdateProgress)

		workspace.GET("/performance", middleware.RequireHR(), performanceHandler.Overall)
		workspace.GET("/performance/:employee_id", middleware.RequireHR(), performanceHandler.ForEmployee)
	}

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
