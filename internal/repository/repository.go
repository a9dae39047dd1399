package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/hr-onboarding-api/internal/models"
)

var (
	// ErrDuplicateAssignment is returned when an assignment already exists
	// for the same (task, employee) pair.
	ErrDuplicateAssignment = errors.New("task repository: assignment already exists")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// Update updates a user
	Update(ctx context.Context, user *models.User) error

	// Delete removes a user and all their assignments, documents, and
	// training progress within a single transaction
	Delete(ctx context.Context, id string) error

	// ListEmployees lists users with the employee role, paginated
	ListEmployees(ctx context.Context, offset, limit int) ([]models.User, int64, error)

	// CountEmployees returns total and active employee counts
	CountEmployees(ctx context.Context) (total, active int64, err error)
}

// TaskRepository defines the interface for task and assignment data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task by ID
	FindByID(ctx context.Context, id string) (*models.Task, error)

	// List retrieves the task catalog, paginated
	List(ctx context.Context, offset, limit int) ([]models.Task, int64, error)

	// Delete removes a task and its assignments within a single transaction
	Delete(ctx context.Context, id string) error

	// CreateAssignment checks for an existing (task, employee) assignment
	// and inserts a new one inside one transaction. Returns
	// ErrDuplicateAssignment if the pair already exists.
	CreateAssignment(ctx context.Context, assignment *models.TaskAssignment) error

	// FindAssignmentByID finds a task assignment by ID
	FindAssignmentByID(ctx context.Context, id string) (*models.TaskAssignment, error)

	// UpdateAssignment updates a task assignment
	UpdateAssignment(ctx context.Context, assignment *models.TaskAssignment) error

	// ListAssignmentsByEmployee lists an employee's assignments with task
	// data preloaded. A zero limit disables pagination.
	ListAssignmentsByEmployee(ctx context.Context, employeeID string, offset, limit int) ([]models.TaskAssignment, int64, error)

	// ListCompletedAssignments lists an employee's completed assignments
	ListCompletedAssignments(ctx context.Context, employeeID string) ([]models.TaskAssignment, error)

	// CountAssignments returns total and completed assignment counts,
	// optionally scoped to one employee
	CountAssignments(ctx context.Context, employeeID *string) (total, completed int64, err error)

	// CountPendingAssignments counts assignments still pending across all employees
	CountPendingAssignments(ctx context.Context) (int64, error)
}

// DocumentFilter holds filtering options for listing documents
type DocumentFilter struct {
	EmployeeID *string
	Offset     int
	Limit      int
}

// DocumentRepository defines the interface for document data access
type DocumentRepository interface {
	// Create creates a new document record
	Create(ctx context.Context, doc *models.Document) error

	// FindByID finds a document by ID
	FindByID(ctx context.Context, id string) (*models.Document, error)

	// Update updates a document
	Update(ctx context.Context, doc *models.Document) error

	// List retrieves documents matching the filter; the returned total
	// counts all matching rows regardless of the pagination window
	List(ctx context.Context, filter DocumentFilter) ([]models.Document, int64, error)

	// ListByEmployee lists all documents owned by one employee
	ListByEmployee(ctx context.Context, employeeID string) ([]models.Document, error)

	// CountPending counts documents awaiting verification
	CountPending(ctx context.Context) (int64, error)
}

// TrainingRepository defines the interface for training data access
type TrainingRepository interface {
	// CreateModule creates a new training module
	CreateModule(ctx context.Context, module *models.TrainingModule) error

	// FindModuleByID finds a training module by ID
	FindModuleByID(ctx context.Context, id string) (*models.TrainingModule, error)

	// ListActiveModules lists active modules, paginated
	ListActiveModules(ctx context.Context, offset, limit int) ([]models.TrainingModule, int64, error)

	// CountActiveModules counts active modules
	CountActiveModules(ctx context.Context) (int64, error)

	// FindProgress finds the progress record for one (employee, module) pair
	FindProgress(ctx context.Context, employeeID, moduleID string) (*models.TrainingProgress, error)

	// CreateProgress creates a progress record
	CreateProgress(ctx context.Context, progress *models.TrainingProgress) error

	// UpdateProgress updates a progress record
	UpdateProgress(ctx context.Context, progress *models.TrainingProgress) error

	// CountProgress returns total and completed progress-record counts,
	// optionally scoped to one employee
	CountProgress(ctx context.Context, employeeID *string) (total, completed int64, err error)
}
