package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/hr-onboarding-api/internal/errors"
	"github.com/yukikurage/hr-onboarding-api/internal/middleware"
	"github.com/yukikurage/hr-onboarding-api/internal/policy"
	"github.com/yukikurage/hr-onboarding-api/internal/services"
)

// PerformanceHandler coordinates dashboard and statistics handlers.
type PerformanceHandler struct {
	performanceService *services.PerformanceService
	userService        *services.UserService
}

// NewPerformanceHandler creates a new PerformanceHandler.
func NewPerformanceHandler(performanceService *services.PerformanceService, userService *services.UserService) *PerformanceHandler {
	return &PerformanceHandler{
		performanceService: performanceService,
		userService:        userService,
	}
}

// Dashboard returns the landing counters for the caller's role.
func (h *PerformanceHandler) Dashboard(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if policy.IsHR(principal) {
		stats, err := h.performanceService.DashboardForHR(c.Request.Context())
		if err != nil {
			apierrors.InternalError(c, "")
			return
		}
		c.JSON(http.StatusOK, stats)
		return
	}

	stats, err := h.performanceService.DashboardForEmployee(c.Request.Context(), principal.ID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Overall returns company-wide onboarding statistics. HR only.
func (h *PerformanceHandler) Overall(c *gin.Context) {
	stats, err := h.performanceService.Overall(c.Request.Context())
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ForEmployee returns one employee's onboarding statistics. HR only.
func (h *PerformanceHandler) ForEmployee(c *gin.Context) {
	employeeID := c.Param("employee_id")

	// Resolve the employee first so a bad id is a 404, not a zeroed report.
	if _, err := h.userService.GetEmployee(c.Request.Context(), employeeID); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	stats, err := h.performanceService.ForEmployee(c.Request.Context(), employeeID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, stats)
}
