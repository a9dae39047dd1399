package repository

import (
	"context"

	"github.com/yukikurage/hr-onboarding-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates a user
func (r *GormUserRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Delete removes a user and all data they own in a transaction
func (r *GormUserRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&models.TaskAssignment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("employee_id = ?", id).Delete(&models.Document{}).Error; err != nil {
			return err
		}

		if err := tx.Where("employee_id = ?", id).Delete(&models.TrainingProgress{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.User{}).Error
	})
}

// ListEmployees lists users with the employee role, paginated
func (r *GormUserRepository) ListEmployees(ctx context.Context, offset, limit int) ([]models.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", models.RoleEmployee)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []models.User
	listQuery := query.Order("created_at ASC")
	if limit > 0 {
		listQuery = listQuery.Offset(offset).Limit(limit)
	}
	if err := listQuery.Find(&employees).Error; err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// CountEmployees returns total and active employee counts
func (r *GormUserRepository) CountEmployees(ctx context.Context) (int64, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("role = ?", models.RoleEmployee).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}

	var active int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("role = ? AND is_active = ?", models.RoleEmployee, true).
		Count(&active).Error; err != nil {
		return 0, 0, err
	}

	return total, active, nil
}
