package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-onboarding-api/internal/dto"
	apierrors "github.com/yukikurage/hr-onboarding-api/internal/errors"
	"github.com/yukikurage/hr-onboarding-api/internal/middleware"
	"github.com/yukikurage/hr-onboarding-api/internal/policy"
	"github.com/yukikurage/hr-onboarding-api/internal/services"
	"github.com/yukikurage/hr-onboarding-api/internal/utils"
)

// TaskHandler coordinates task catalog and assignment handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// List returns the task catalog to HR, and the caller's own assignments to
// an employee.
func (h *TaskHandler) List(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)

	if policy.IsHR(principal) {
		tasks, total, err := h.taskService.ListTasks(c.Request.Context(), params.Offset, params.PageSize)
		if err != nil {
			apierrors.InternalError(c, "")
			return
		}
		c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, params.Page, params.PageSize, total))
		return
	}

	assignments, total, err := h.taskService.ListEmployeeAssignments(c.Request.Context(), principal.ID, params.Offset, params.PageSize)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssignmentListResponse(assignments, params.Page, params.PageSize, total))
}

// Create adds a task to the catalog. HR only.
func (h *TaskHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateRequest struct {
		Title                string  `json:"title" binding:"required"`
		Description          string  `json:"description"`
		TaskType             string  `json:"task_type"`
		Content              string  `json:"content"`
		RequiredDocumentType *string `json:"required_document_type"`
		IsActive             *bool   `json:"is_active"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), services.CreateTaskInput{
		Title:                req.Title,
		Description:          req.Description,
		TaskType:             req.TaskType,
		Content:              req.Content,
		RequiredDocumentType: req.RequiredDocumentType,
		IsActive:             isActive,
		CreatorID:            principal.ID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// Delete removes a task and all assignments referencing it. HR only.
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.taskService.DeleteTask(c.Request.Context(), c.Param("task_id")); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// Assign creates a pending assignment for one (task, employee) pair. HR only.
func (h *TaskHandler) Assign(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type AssignRequest struct {
		TaskID     string `json:"task_id" binding:"required"`
		EmployeeID string `json:"employee_id" binding:"required"`
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	assignment, err := h.taskService.AssignTask(c.Request.Context(), services.AssignTaskInput{
		TaskID:     req.TaskID,
		EmployeeID: req.EmployeeID,
		AssignerID: principal.ID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssignmentDTO(*assignment))
}

// Complete marks one of the caller's own assignments as completed.
func (h *TaskHandler) Complete(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CompleteRequest struct {
		AssignmentID string `json:"assignment_id" binding:"required"`
	}

	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	assignment, err := h.taskService.CompleteTask(c.Request.Context(), req.AssignmentID, principal.ID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentDTO(*assignment))
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidDocumentType):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrAssignmentNotFound),
		errors.Is(err, services.ErrEmployeeNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskAlreadyAssigned):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
