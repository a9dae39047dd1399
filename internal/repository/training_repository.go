package repository

import (
	"context"

	"github.com/yukikurage/hr-onboarding-api/internal/models"
	"gorm.io/gorm"
)

// GormTrainingRepository is a GORM implementation of TrainingRepository
type GormTrainingRepository struct {
	db *gorm.DB
}

// NewTrainingRepository creates a new TrainingRepository
func NewTrainingRepository(db *gorm.DB) TrainingRepository {
	return &GormTrainingRepository{db: db}
}

// CreateModule creates a new training module
func (r *GormTrainingRepository) CreateModule(ctx context.Context, module *models.TrainingModule) error {
	return r.db.WithContext(ctx).Create(module).Error
}

// FindModuleByID finds a training module by ID
func (r *GormTrainingRepository) FindModuleByID(ctx context.Context, id string) (*models.TrainingModule, error) {
	var module models.TrainingModule
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&module).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

// ListActiveModules lists active modules, paginated
func (r *GormTrainingRepository) ListActiveModules(ctx context.Context, offset, limit int) ([]models.TrainingModule, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.TrainingModule{}).
		Where("is_active = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var modules []models.TrainingModule
	listQuery := query.Order("created_at ASC")
	if limit > 0 {
		listQuery = listQuery.Offset(offset).Limit(limit)
	}
	if err := listQuery.Find(&modules).Error; err != nil {
		return nil, 0, err
	}

	return modules, total, nil
}

// CountActiveModules counts active modules
func (r *GormTrainingRepository) CountActiveModules(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TrainingModule{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

// FindProgress finds the progress record for one (employee, module) pair
func (r *GormTrainingRepository) FindProgress(ctx context.Context, employeeID, moduleID string) (*models.TrainingProgress, error) {
	var progress models.TrainingProgress
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND training_module_id = ?", employeeID, moduleID).
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// CreateProgress creates a progress record
func (r *GormTrainingRepository) CreateProgress(ctx context.Context, progress *models.TrainingProgress) error {
	return r.db.WithContext(ctx).Create(progress).Error
}

// UpdateProgress updates a progress record
func (r *GormTrainingRepository) UpdateProgress(ctx context.Context, progress *models.TrainingProgress) error {
	return r.db.WithContext(ctx).Save(progress).Error
}

// CountProgress returns total and completed progress-record counts
func (r *GormTrainingRepository) CountProgress(ctx context.Context, employeeID *string) (int64, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.TrainingProgress{})
	if employeeID != nil {
		base = base.Where("employee_id = ?", *employeeID)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, 0, err
	}

	var completed int64
	if err := base.Where("status = ?", models.ProgressStatusCompleted).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}

	return total, completed, nil
}
