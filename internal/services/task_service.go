package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/hr-onboarding-api/internal/models"
	"github.com/yukikurage/hr-onboarding-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrAssignmentNotFound  = errors.New("task assignment not found")
	ErrTaskAlreadyAssigned = errors.New("task already assigned")
	ErrTitleRequired       = errors.New("title is required")
	ErrInvalidDocumentType = errors.New("invalid document type")
)

// TaskService handles task catalog and assignment lifecycle logic.
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// CreateTaskInput represents input for creating a catalog task.
type CreateTaskInput struct {
	Title                string
	Description          string
	TaskType             string
	Content              string
	RequiredDocumentType *string
	IsActive             bool
	CreatorID            string
}

// CreateTask creates a new catalog task.
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	var requiredDocType *models.DocumentType
	if input.RequiredDocumentType != nil {
		docType, ok := models.ParseDocumentType(*input.RequiredDocumentType)
		if !ok {
			return nil, ErrInvalidDocumentType
		}
		requiredDocType = &docType
	}

	task := &models.Task{
		Title:                input.Title,
		Description:          input.Description,
		TaskType:             input.TaskType,
		Content:              input.Content,
		RequiredDocumentType: requiredDocType,
		IsActive:             input.IsActive,
		CreatorID:            input.CreatorID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task and all assignments referencing it.
func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// ListTasks returns the task catalog, paginated.
func (s *TaskService) ListTasks(ctx context.Context, offset, limit int) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// ListEmployeeAssignments returns an employee's assignments with task data.
func (s *TaskService) ListEmployeeAssignments(ctx context.Context, employeeID string, offset, limit int) ([]models.TaskAssignment, int64, error) {
	assignments, total, err := s.taskRepo.ListAssignmentsByEmployee(ctx, employeeID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, total, nil
}

// AssignTaskInput represents input for assigning a task to an employee.
type AssignTaskInput struct {
	TaskID     string
	EmployeeID string
	AssignerID string
}

// AssignTask creates a pending assignment for one (task, employee) pair.
// Assigning the same pair twice is a conflict, not a merge.
func (s *TaskService) AssignTask(ctx context.Context, input AssignTaskInput) (*models.TaskAssignment, error) {
	if _, err := s.taskRepo.FindByID(ctx, input.TaskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	employee, err := s.userRepo.FindByID(ctx, input.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	if employee.Role != models.RoleEmployee {
		return nil, ErrEmployeeNotFound
	}

	assignment := &models.TaskAssignment{
		TaskID:       input.TaskID,
		EmployeeID:   input.EmployeeID,
		AssignedByID: input.AssignerID,
		Status:       models.AssignmentStatusPending,
		AssignedAt:   time.Now().UTC(),
	}

	if err := s.taskRepo.CreateAssignment(ctx, assignment); err != nil {
		if errors.Is(err, repository.ErrDuplicateAssignment) {
			return nil, ErrTaskAlreadyAssigned
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return assignment, nil
}

// CompleteTask marks an assignment as completed. Only the assigned employee
// may complete it; anyone else gets the same answer as a missing record.
// Completing an already-completed assignment re-stamps completed_at.
func (s *TaskService) CompleteTask(ctx context.Context, assignmentID, requesterID string) (*models.TaskAssignment, error) {
	assignment, err := s.taskRepo.FindAssignmentByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}

	if assignment.EmployeeID != requesterID {
		return nil, ErrAssignmentNotFound
	}

	now := time.Now().UTC()
	assignment.Status = models.AssignmentStatusCompleted
	assignment.CompletedAt = &now

	if err := s.taskRepo.UpdateAssignment(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to complete assignment: %w", err)
	}

	return assignment, nil
}
