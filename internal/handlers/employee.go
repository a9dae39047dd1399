package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-onboarding-api/internal/dto"
	apierrors "github.com/yukikurage/hr-onboarding-api/internal/errors"
	"github.com/yukikurage/hr-onboarding-api/internal/services"
	"github.com/yukikurage/hr-onboarding-api/internal/utils"
)

// EmployeeHandler coordinates HR employee-management handlers.
type EmployeeHandler struct {
	userService *services.UserService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(userService *services.UserService) *EmployeeHandler {
	return &EmployeeHandler{
		userService: userService,
	}
}

// List returns a page of employees with their task statistics. HR only.
func (h *EmployeeHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	overviews, total, err := h.userService.ListEmployees(c.Request.Context(), params.Offset, params.PageSize)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeListResponse(overviews, params.Page, params.PageSize, total))
}

// Get returns one employee with their assignments and documents. HR only.
func (h *EmployeeHandler) Get(c *gin.Context) {
	detail, err := h.userService.GetEmployee(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		respondEmployeeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeManageResponse(*detail))
}

// Update mutates an employee's profile fields. HR only.
func (h *EmployeeHandler) Update(c *gin.Context) {
	type UpdateRequest struct {
		Name     *string `json:"name"`
		Email    *string `json:"email" binding:"omitempty,email"`
		IsActive *bool   `json:"is_active"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.userService.UpdateEmployee(c.Request.Context(), c.Param("employee_id"), services.UpdateEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondEmployeeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*employee))
}

// Delete removes an employee and everything they own. HR only.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.userService.DeleteEmployee(c.Request.Context(), c.Param("employee_id")); err != nil {
		respondEmployeeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

func respondEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmployeeNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
