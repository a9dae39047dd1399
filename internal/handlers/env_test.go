package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	internalauth "github.com/yukikurage/hr-onboarding-api/internal/auth"
	"github.com/yukikurage/hr-onboarding-api/internal/constants"
	"github.com/yukikurage/hr-onboarding-api/internal/models"
	"github.com/yukikurage/hr-onboarding-api/internal/policy"
	"github.com/yukikurage/hr-onboarding-api/internal/repository"
	"github.com/yukikurage/hr-onboarding-api/internal/services"
	"github.com/yukikurage/hr-onboarding-api/internal/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db *gorm.DB

	userRepo     repository.UserRepository
	taskRepo     repository.TaskRepository
	docRepo      repository.DocumentRepository
	trainingRepo repository.TrainingRepository

	authService        *services.AuthService
	userService        *services.UserService
	taskService        *services.TaskService
	docService         *services.DocumentService
	trainingService    *services.TrainingService
	performanceService *services.PerformanceService
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.TaskAssignment{},
		&models.Document{},
		&models.TrainingModule{},
		&models.TrainingProgress{},
	)
	require.NoError(t, err)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	docRepo := repository.NewDocumentRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)

	tokens := internalauth.NewTokenManager("test-secret", 30*time.Minute)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{
		db:                 db,
		userRepo:           userRepo,
		taskRepo:           taskRepo,
		docRepo:            docRepo,
		trainingRepo:       trainingRepo,
		authService:        services.NewAuthService(userRepo, tokens),
		userService:        services.NewUserService(userRepo, taskRepo, docRepo),
		taskService:        services.NewTaskService(taskRepo, userRepo),
		docService:         services.NewDocumentService(docRepo, store),
		trainingService:    services.NewTrainingService(trainingRepo),
		performanceService: services.NewPerformanceService(userRepo, taskRepo, docRepo, trainingRepo),
	}
}

func principalFor(user *models.User) policy.Principal {
	return policy.Principal{ID: user.ID, Name: user.Name, Role: user.Role}
}

// withPrincipal stands in for the auth middleware in handler tests.
func withPrincipal(p policy.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyPrincipal, p)
		c.Next()
	}
}

func (env testEnv) createUser(t *testing.T, name, email string, role models.UserRole) *models.User {
	t.Helper()

	user, err := env.authService.Register(context.Background(), services.RegisterInput{
		Name:     name,
		Email:    email,
		Password: "supersecret",
		Role:     string(role),
		IsActive: true,
	})
	require.NoError(t, err)
	return user
}

func (env testEnv) createTask(t *testing.T, title, creatorID string) *models.Task {
	t.Helper()

	task, err := env.taskService.CreateTask(context.Background(), services.CreateTaskInput{
		Title:     title,
		TaskType:  "general",
		IsActive:  true,
		CreatorID: creatorID,
	})
	require.NoError(t, err)
	return task
}
