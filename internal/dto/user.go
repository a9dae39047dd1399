package dto

import (
	"time"

	"github.com/yukikurage/hr-onboarding-api/internal/models"
	"github.com/yukikurage/hr-onboarding-api/internal/services"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

// LoginResponse represents a successful authentication
type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	User        UserDTO `json:"user"`
}

// EmployeeOverviewDTO is one row of the HR employee list
type EmployeeOverviewDTO struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	IsActive       bool    `json:"is_active"`
	TotalTasks     int64   `json:"total_tasks"`
	CompletedTasks int64   `json:"completed_tasks"`
	CompletionRate float64 `json:"completion_rate"`
}

// EmployeeListResponse represents a paginated employee list
type EmployeeListResponse struct {
	Employees []EmployeeOverviewDTO `json:"employees"`
	Total     int64                 `json:"total"`
	Page      int                   `json:"page"`
	PageSize  int                   `json:"page_size"`
}

// EmployeeManageResponse is the HR view of one employee and what they own
type EmployeeManageResponse struct {
	Employee  UserDTO         `json:"employee"`
	Tasks     []AssignmentDTO `json:"tasks"`
	Documents []DocumentDTO   `json:"documents"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// ToEmployeeOverviewDTO converts an EmployeeOverview to its response shape
func ToEmployeeOverviewDTO(overview services.EmployeeOverview) EmployeeOverviewDTO {
	return EmployeeOverviewDTO{
		ID:             overview.Employee.ID,
		Name:           overview.Employee.Name,
		Email:          overview.Employee.Email,
		IsActive:       overview.Employee.IsActive,
		TotalTasks:     overview.TotalTasks,
		CompletedTasks: overview.CompletedTasks,
		CompletionRate: overview.CompletionRate,
	}
}

// ToEmployeeListResponse converts a page of employee overviews
func ToEmployeeListResponse(overviews []services.EmployeeOverview, page, pageSize int, total int64) EmployeeListResponse {
	items := make([]EmployeeOverviewDTO, len(overviews))
	for i, overview := range overviews {
		items[i] = ToEmployeeOverviewDTO(overview)
	}

	return EmployeeListResponse{
		Employees: items,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}
}

// ToEmployeeManageResponse converts an EmployeeDetail to its response shape
func ToEmployeeManageResponse(detail services.EmployeeDetail) EmployeeManageResponse {
	tasks := make([]AssignmentDTO, len(detail.Assignments))
	for i, assignment := range detail.Assignments {
		tasks[i] = ToAssignmentDTO(assignment)
	}

	documents := make([]DocumentDTO, len(detail.Documents))
	for i, doc := range detail.Documents {
		documents[i] = ToDocumentDTO(doc)
	}

	return EmployeeManageResponse{
		Employee:  ToUserDTO(detail.Employee),
		Tasks:     tasks,
		Documents: documents,
	}
}
