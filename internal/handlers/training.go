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

// TrainingHandler coordinates training module and progress handlers.
type TrainingHandler struct {
	trainingService *services.TrainingService
}

// NewTrainingHandler creates a new TrainingHandler.
func NewTrainingHandler(trainingService *services.TrainingService) *TrainingHandler {
	return &TrainingHandler{
		trainingService: trainingService,
	}
}

// List returns active modules. For an employee each module is joined with
// the caller's own progress; for HR the modules come back bare.
func (h *TrainingHandler) List(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)

	if policy.IsHR(principal) {
		modules, total, err := h.trainingService.ListModules(c.Request.Context(), params.Offset, params.PageSize)
		if err != nil {
			apierrors.InternalError(c, "")
			return
		}
		c.JSON(http.StatusOK, dto.ToModuleListResponse(modules, params.Page, params.PageSize, total))
		return
	}

	joined, total, err := h.trainingService.ListModulesForEmployee(c.Request.Context(), principal.ID, params.Offset, params.PageSize)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, dto.ToModuleProgressListResponse(joined, params.Page, params.PageSize, total))
}

// Create adds a training module. HR only.
func (h *TrainingHandler) Create(c *gin.Context) {
	type CreateRequest struct {
		Title           string `json:"title" binding:"required"`
		Description     string `json:"description"`
		Content         string `json:"content"`
		DurationMinutes int    `json:"duration_minutes"`
		IsMandatory     bool   `json:"is_mandatory"`
		IsActive        *bool  `json:"is_active"`
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

	module, err := h.trainingService.CreateModule(c.Request.Context(), services.CreateModuleInput{
		Title:           req.Title,
		Description:     req.Description,
		Content:         req.Content,
		DurationMinutes: req.DurationMinutes,
		IsMandatory:     req.IsMandatory,
		IsActive:        isActive,
	})
	if err != nil {
		respondTrainingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToModuleDTO(*module))
}

// UpdateProgress records the caller's completion percentage for a module.
func (h *TrainingHandler) UpdateProgress(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type ProgressRequest struct {
		ModuleID             string `json:"module_id" binding:"required"`
		CompletionPercentage *int   `json:"completion_percentage" binding:"required"`
	}

	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	progress, err := h.trainingService.UpsertProgress(c.Request.Context(), principal.ID, req.ModuleID, *req.CompletionPercentage)
	if err != nil {
		respondTrainingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProgressRecordDTO(*progress))
}

func respondTrainingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrModuleTitleRequired),
		errors.Is(err, services.ErrInvalidPercentage):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrModuleNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
