package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/hr-onboarding-api/internal/constants"
	"github.com/yukikurage/hr-onboarding-api/internal/models"
	"github.com/yukikurage/hr-onboarding-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrModuleNotFound      = errors.New("training module not found")
	ErrInvalidPercentage   = errors.New("progress percentage must be between 0 and 100")
	ErrModuleTitleRequired = errors.New("module title is required")
)

// TrainingService handles training module and progress logic.
type TrainingService struct {
	trainingRepo repository.TrainingRepository
}

// NewTrainingService creates a new TrainingService.
func NewTrainingService(trainingRepo repository.TrainingRepository) *TrainingService {
	return &TrainingService{trainingRepo: trainingRepo}
}

// CreateModuleInput represents input for creating a training module.
type CreateModuleInput struct {
	Title           string
	Description     string
	Content         string
	DurationMinutes int
	IsMandatory     bool
	IsActive        bool
}

// CreateModule creates a new training module.
func (s *TrainingService) CreateModule(ctx context.Context, input CreateModuleInput) (*models.TrainingModule, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrModuleTitleRequired
	}

	module := &models.TrainingModule{
		Title:           input.Title,
		Description:     input.Description,
		Content:         input.Content,
		DurationMinutes: input.DurationMinutes,
		IsMandatory:     input.IsMandatory,
		IsActive:        input.IsActive,
	}

	if err := s.trainingRepo.CreateModule(ctx, module); err != nil {
		return nil, fmt.Errorf("failed to create module: %w", err)
	}

	return module, nil
}

// ListModules returns active modules for the HR catalog view.
func (s *TrainingService) ListModules(ctx context.Context, offset, limit int) ([]models.TrainingModule, int64, error) {
	modules, total, err := s.trainingRepo.ListActiveModules(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list modules: %w", err)
	}
	return modules, total, nil
}

// ModuleProgress is one active module joined with one employee's progress.
// Progress is nil when the employee has not started the module.
type ModuleProgress struct {
	Module   models.TrainingModule
	Progress *models.TrainingProgress
}

// ListModulesForEmployee returns active modules joined with the employee's
// own progress records.
func (s *TrainingService) ListModulesForEmployee(ctx context.Context, employeeID string, offset, limit int) ([]ModuleProgress, int64, error) {
	modules, total, err := s.trainingRepo.ListActiveModules(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list modules: %w", err)
	}

	result := make([]ModuleProgress, 0, len(modules))
	for _, module := range modules {
		progress, err := s.trainingRepo.FindProgress(ctx, employeeID, module.ID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, fmt.Errorf("failed to find progress: %w", err)
			}
			progress = nil
		}
		result = append(result, ModuleProgress{Module: module, Progress: progress})
	}

	return result, total, nil
}

// UpsertProgress records an employee's progress against a module. The status
// is recomputed from the percentage on every write: reaching 100 marks the
// record completed; a later write below 100 moves the status back to
// pending. Every write that reaches 100 refreshes completed_at; a write
// below 100 leaves the previous completed_at in place.
func (s *TrainingService) UpsertProgress(ctx context.Context, employeeID, moduleID string, percentage int) (*models.TrainingProgress, error) {
	if percentage < constants.MinProgressPercentage || percentage > constants.MaxProgressPercentage {
		return nil, ErrInvalidPercentage
	}

	if _, err := s.trainingRepo.FindModuleByID(ctx, moduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, fmt.Errorf("failed to find module: %w", err)
	}

	now := time.Now().UTC()

	progress, err := s.trainingRepo.FindProgress(ctx, employeeID, moduleID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to find progress: %w", err)
		}

		progress = &models.TrainingProgress{
			EmployeeID:         employeeID,
			TrainingModuleID:   moduleID,
			ProgressPercentage: percentage,
			Status:             models.ProgressStatusPending,
			StartedAt:          now,
		}
		if percentage >= constants.MaxProgressPercentage {
			progress.Status = models.ProgressStatusCompleted
			progress.CompletedAt = &now
		}

		if err := s.trainingRepo.CreateProgress(ctx, progress); err != nil {
			return nil, fmt.Errorf("failed to create progress: %w", err)
		}
		return progress, nil
	}

	progress.ProgressPercentage = percentage
	if percentage >= constants.MaxProgressPercentage {
		progress.Status = models.ProgressStatusCompleted
		progress.CompletedAt = &now
	} else {
		progress.Status = models.ProgressStatusPending
	}

	if err := s.trainingRepo.UpdateProgress(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}

	return progress, nil
}
