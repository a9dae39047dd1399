package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/hr-onboarding-api/internal/repository"
)

// PerformanceService composes read-only statistics from task, document, and
// training state. It never mutates anything.
type PerformanceService struct {
	userRepo     repository.UserRepository
	taskRepo     repository.TaskRepository
	docRepo      repository.DocumentRepository
	trainingRepo repository.TrainingRepository
}

// NewPerformanceService creates a new PerformanceService.
func NewPerformanceService(
	userRepo repository.UserRepository,
	taskRepo repository.TaskRepository,
	docRepo repository.DocumentRepository,
	trainingRepo repository.TrainingRepository,
) *PerformanceService {
	return &PerformanceService{
		userRepo:     userRepo,
		taskRepo:     taskRepo,
		docRepo:      docRepo,
		trainingRepo: trainingRepo,
	}
}

// OverallPerformance holds company-wide onboarding statistics.
type OverallPerformance struct {
	TotalEmployees         int64   `json:"total_employees"`
	ActiveEmployees        int64   `json:"active_employees"`
	TotalAssignments       int64   `json:"total_task_assignments"`
	CompletedAssignments   int64   `json:"completed_task_assignments"`
	TaskCompletionRate     float64 `json:"overall_task_completion_rate"`
	ActiveTrainingModules  int64   `json:"total_active_training_modules"`
	TrainingCompletionRate float64 `json:"training_completion_rate"`
	PendingDocuments       int64   `json:"pending_documents"`
}

// Overall computes company-wide statistics. Every rate is defined as 0 when
// its denominator is empty. The training rate is computed over all progress
// records, not over employees multiplied by modules.
func (s *PerformanceService) Overall(ctx context.Context) (*OverallPerformance, error) {
	totalEmployees, activeEmployees, err := s.userRepo.CountEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	totalAssignments, completedAssignments, err := s.taskRepo.CountAssignments(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}

	activeModules, err := s.trainingRepo.CountActiveModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count modules: %w", err)
	}

	totalProgress, completedProgress, err := s.trainingRepo.CountProgress(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count training progress: %w", err)
	}

	pendingDocs, err := s.docRepo.CountPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending documents: %w", err)
	}

	return &OverallPerformance{
		TotalEmployees:         totalEmployees,
		ActiveEmployees:        activeEmployees,
		TotalAssignments:       totalAssignments,
		CompletedAssignments:   completedAssignments,
		TaskCompletionRate:     rate(completedAssignments, totalAssignments),
		ActiveTrainingModules:  activeModules,
		TrainingCompletionRate: rate(completedProgress, totalProgress),
		PendingDocuments:       pendingDocs,
	}, nil
}

// EmployeePerformance holds one employee's onboarding statistics.
type EmployeePerformance struct {
	EmployeeID             string  `json:"employee_id"`
	TotalTasks             int64   `json:"total_tasks"`
	CompletedTasks         int64   `json:"completed_tasks"`
	PendingTasks           int64   `json:"pending_tasks"`
	TaskCompletionRate     float64 `json:"task_completion_rate"`
	AvgCompletionDays      *int    `json:"avg_completion_days"`
	TotalTraining          int64   `json:"total_training"`
	CompletedTraining      int64   `json:"completed_training"`
	TrainingCompletionRate float64 `json:"training_completion_rate"`
}

// ForEmployee computes one employee's statistics. The average completion
// time is the mean of day-truncated (completed_at - assigned_at) intervals
// over completed assignments carrying both timestamps; it is absent when no
// such assignment exists.
func (s *PerformanceService) ForEmployee(ctx context.Context, employeeID string) (*EmployeePerformance, error) {
	totalTasks, completedTasks, err := s.taskRepo.CountAssignments(ctx, &employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}

	completed, err := s.taskRepo.ListCompletedAssignments(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed assignments: %w", err)
	}

	var avgDays *int
	var sumDays, counted int
	for _, a := range completed {
		if a.CompletedAt == nil {
			continue
		}
		sumDays += int(a.CompletedAt.Sub(a.AssignedAt).Hours() / 24)
		counted++
	}
	if counted > 0 {
		days := sumDays / counted
		avgDays = &days
	}

	totalTraining, completedTraining, err := s.trainingRepo.CountProgress(ctx, &employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to count training progress: %w", err)
	}

	return &EmployeePerformance{
		EmployeeID:             employeeID,
		TotalTasks:             totalTasks,
		CompletedTasks:         completedTasks,
		PendingTasks:           totalTasks - completedTasks,
		TaskCompletionRate:     rate(completedTasks, totalTasks),
		AvgCompletionDays:      avgDays,
		TotalTraining:          totalTraining,
		CompletedTraining:      completedTraining,
		TrainingCompletionRate: rate(completedTraining, totalTraining),
	}, nil
}

// HRDashboard holds the counters shown on the HR landing view.
type HRDashboard struct {
	TotalEmployees   int64 `json:"total_employees"`
	PendingTasks     int64 `json:"pending_tasks"`
	PendingDocuments int64 `json:"pending_documents"`
}

// DashboardForHR returns the HR landing counters.
func (s *PerformanceService) DashboardForHR(ctx context.Context) (*HRDashboard, error) {
	totalEmployees, _, err := s.userRepo.CountEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	pendingTasks, err := s.taskRepo.CountPendingAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending assignments: %w", err)
	}

	pendingDocs, err := s.docRepo.CountPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending documents: %w", err)
	}

	return &HRDashboard{
		TotalEmployees:   totalEmployees,
		PendingTasks:     pendingTasks,
		PendingDocuments: pendingDocs,
	}, nil
}

// EmployeeDashboard holds one employee's landing counters.
type EmployeeDashboard struct {
	TotalTasks     int64   `json:"total_tasks"`
	CompletedTasks int64   `json:"completed_tasks"`
	PendingTasks   int64   `json:"pending_tasks"`
	CompletionRate float64 `json:"completion_rate"`
}

// DashboardForEmployee returns the employee landing counters.
func (s *PerformanceService) DashboardForEmployee(ctx context.Context, employeeID string) (*EmployeeDashboard, error) {
	total, completed, err := s.taskRepo.CountAssignments(ctx, &employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}

	return &EmployeeDashboard{
		TotalTasks:     total,
		CompletedTasks: completed,
		PendingTasks:   total - completed,
		CompletionRate: rate(completed, total),
	}, nil
}
