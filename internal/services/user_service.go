package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/hr-onboarding-api/internal/models"
	"github.com/yukikurage/hr-onboarding-api/internal/repository"
	"gorm.io/gorm"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// UserService handles employee management business logic.
type UserService struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
	docRepo  repository.DocumentRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, taskRepo repository.TaskRepository, docRepo repository.DocumentRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		taskRepo: taskRepo,
		docRepo:  docRepo,
	}
}

// EmployeeOverview is one row of the HR employee list, joined with task stats.
type EmployeeOverview struct {
	Employee       models.User
	TotalTasks     int64
	CompletedTasks int64
	CompletionRate float64
}

// ListEmployees returns a page of employees with their task statistics.
func (s *UserService) ListEmployees(ctx context.Context, offset, limit int) ([]EmployeeOverview, int64, error) {
	employees, total, err := s.userRepo.ListEmployees(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	overviews := make([]EmployeeOverview, 0, len(employees))
	for _, employee := range employees {
		id := employee.ID
		totalTasks, completedTasks, err := s.taskRepo.CountAssignments(ctx, &id)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to count assignments: %w", err)
		}

		overviews = append(overviews, EmployeeOverview{
			Employee:       employee,
			TotalTasks:     totalTasks,
			CompletedTasks: completedTasks,
			CompletionRate: rate(completedTasks, totalTasks),
		})
	}

	return overviews, total, nil
}

// EmployeeDetail is the HR manage view: the employee joined with everything
// they own.
type EmployeeDetail struct {
	Employee    models.User
	Assignments []models.TaskAssignment
	Documents   []models.Document
}

// GetEmployee returns one employee with their assignments and documents.
// A missing id, or an id belonging to a non-employee, is reported the same
// way.
func (s *UserService) GetEmployee(ctx context.Context, id string) (*EmployeeDetail, error) {
	employee, err := s.findEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	assignments, _, err := s.taskRepo.ListAssignmentsByEmployee(ctx, id, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	documents, err := s.docRepo.ListByEmployee(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return &EmployeeDetail{
		Employee:    *employee,
		Assignments: assignments,
		Documents:   documents,
	}, nil
}

// UpdateEmployeeInput carries the mutable employee fields.
type UpdateEmployeeInput struct {
	Name     *string
	Email    *string
	IsActive *bool
}

// UpdateEmployee mutates an employee's profile fields.
func (s *UserService) UpdateEmployee(ctx context.Context, id string, input UpdateEmployeeInput) (*models.User, error) {
	employee, err := s.findEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Email != nil {
		employee.Email = *input.Email
	}
	if input.IsActive != nil {
		employee.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee, nil
}

// DeleteEmployee removes an employee and all records they own.
func (s *UserService) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.findEmployee(ctx, id); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func (s *UserService) findEmployee(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	if user.Role != models.RoleEmployee {
		return nil, ErrEmployeeNotFound
	}

	return user, nil
}

// rate computes completed/total as a percentage, defined as 0 when total is 0.
func rate(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
