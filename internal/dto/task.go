package dto

import (
	"time"

	"github.com/yukikurage/hr-onboarding-api/internal/models"
)

// TaskDTO represents a catalog task in API responses
type TaskDTO struct {
	ID                   string               `json:"id"`
	Title                string               `json:"title"`
	Description          string               `json:"description"`
	TaskType             string               `json:"task_type"`
	Content              string               `json:"content,omitempty"`
	RequiredDocumentType *models.DocumentType `json:"required_document_type,omitempty"`
	IsActive             bool                 `json:"is_active"`
	CreatedAt            time.Time            `json:"created_at"`
}

// AssignmentDTO represents a task assignment joined with its task
type AssignmentDTO struct {
	AssignmentID string                  `json:"assignment_id"`
	TaskID       string                  `json:"task_id"`
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	TaskType     string                  `json:"task_type"`
	Content      string                  `json:"content,omitempty"`
	Status       models.AssignmentStatus `json:"status"`
	AssignedAt   time.Time               `json:"assigned_at"`
	CompletedAt  *time.Time              `json:"completed_at"`
}

// TaskListResponse is the paginated task catalog (HR view)
type TaskListResponse struct {
	Tasks    []TaskDTO `json:"tasks"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

// AssignmentListResponse is the paginated assignment list (employee view)
type AssignmentListResponse struct {
	Tasks    []AssignmentDTO `json:"tasks"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:                   task.ID,
		Title:                task.Title,
		Description:          task.Description,
		TaskType:             task.TaskType,
		Content:              task.Content,
		RequiredDocumentType: task.RequiredDocumentType,
		IsActive:             task.IsActive,
		CreatedAt:            task.CreatedAt,
	}
}

// ToAssignmentDTO converts a TaskAssignment with preloaded task data
func ToAssignmentDTO(assignment models.TaskAssignment) AssignmentDTO {
	return AssignmentDTO{
		AssignmentID: assignment.ID,
		TaskID:       assignment.TaskID,
		Title:        assignment.Task.Title,
		Description:  assignment.Task.Description,
		TaskType:     assignment.Task.TaskType,
		Content:      assignment.Task.Content,
		Status:       assignment.Status,
		AssignedAt:   assignment.AssignedAt,
		CompletedAt:  assignment.CompletedAt,
	}
}

// ToTaskListResponse converts a page of catalog tasks
func ToTaskListResponse(tasks []models.Task, page, pageSize int, total int64) TaskListResponse {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}

	return TaskListResponse{
		Tasks:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

// ToAssignmentListResponse converts a page of assignments
func ToAssignmentListResponse(assignments []models.TaskAssignment, page, pageSize int, total int64) AssignmentListResponse {
	items := make([]AssignmentDTO, len(assignments))
	for i, assignment := range assignments {
		items[i] = ToAssignmentDTO(assignment)
	}

	return AssignmentListResponse{
		Tasks:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
