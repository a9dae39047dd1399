package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/hr-onboarding-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves the task catalog, paginated
func (r *GormTaskRepository) List(ctx context.Context, offset, limit int) ([]models.Task, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Task{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	listQuery := query.Order("created_at DESC")
	if limit > 0 {
		listQuery = listQuery.Offset(offset).Limit(limit)
	}
	if err := listQuery.Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Delete removes a task and its assignments in a transaction. Assignments
// go first so no assignment row ever references a missing task.
func (r *GormTaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.TaskAssignment{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.Task{}).Error
	})
}

// CreateAssignment inserts a new assignment, rejecting duplicates for the
// same (task, employee) pair. The check and insert share one transaction;
// the unique index on the pair backs this under concurrent requests.
func (r *GormTaskRepository) CreateAssignment(ctx context.Context, assignment *models.TaskAssignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.TaskAssignment
		err := tx.Where("task_id = ? AND employee_id = ?", assignment.TaskID, assignment.EmployeeID).
			First(&existing).Error
		if err == nil {
			return ErrDuplicateAssignment
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(assignment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateAssignment
			}
			return err
		}
		return nil
	})
}

// FindAssignmentByID finds a task assignment by ID
func (r *GormTaskRepository) FindAssignmentByID(ctx context.Context, id string) (*models.TaskAssignment, error) {
	var assignment models.TaskAssignment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// UpdateAssignment updates a task assignment
func (r *GormTaskRepository) UpdateAssignment(ctx context.Context, assignment *models.TaskAssignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

// ListAssignmentsByEmployee lists an employee's assignments with task data preloaded
func (r *GormTaskRepository) ListAssignmentsByEmployee(ctx context.Context, employeeID string, offset, limit int) ([]models.TaskAssignment, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.TaskAssignment{}).
		Where("employee_id = ?", employeeID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var assignments []models.TaskAssignment
	listQuery := query.Preload("Task").Order("assigned_at ASC")
	if limit > 0 {
		listQuery = listQuery.Offset(offset).Limit(limit)
	}
	if err := listQuery.Find(&assignments).Error; err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}

// ListCompletedAssignments lists an employee's completed assignments
func (r *GormTaskRepository) ListCompletedAssignments(ctx context.Context, employeeID string) ([]models.TaskAssignment, error) {
	var assignments []models.TaskAssignment
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND status = ?", employeeID, models.AssignmentStatusCompleted).
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// CountAssignments returns total and completed assignment counts
func (r *GormTaskRepository) CountAssignments(ctx context.Context, employeeID *string) (int64, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.TaskAssignment{})
	if employeeID != nil {
		base = base.Where("employee_id = ?", *employeeID)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, 0, err
	}

	var completed int64
	if err := base.Where("status = ?", models.AssignmentStatusCompleted).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}

	return total, completed, nil
}

// CountPendingAssignments counts assignments still pending across all employees
func (r *GormTaskRepository) CountPendingAssignments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TaskAssignment{}).
		Where("status = ?", models.AssignmentStatusPending).
		Count(&count).Error
	return count, err
}
