package dto

import (
	"time"

	"github.com/yukikurage/hr-onboarding-api/internal/models"
	"github.com/yukikurage/hr-onboarding-api/internal/services"
)

// ModuleDTO is the HR catalog view of a training module
type ModuleDTO struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Content         string    `json:"content"`
	DurationMinutes int       `json:"duration_minutes"`
	IsMandatory     bool      `json:"is_mandatory"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProgressDTO is the employee's progress against one module. An absent
// record is reported as pending at zero percent with no timestamps.
type ProgressDTO struct {
	Status             models.ProgressStatus `json:"status"`
	ProgressPercentage int                   `json:"progress_percentage"`
	StartedAt          *time.Time            `json:"started_at"`
	CompletedAt        *time.Time            `json:"completed_at"`
}

// ProgressRecordDTO is the full progress record returned after an update
type ProgressRecordDTO struct {
	ID                 string                `json:"id"`
	ModuleID           string                `json:"module_id"`
	EmployeeID         string                `json:"employee_id"`
	Status             models.ProgressStatus `json:"status"`
	ProgressPercentage int                   `json:"progress_percentage"`
	StartedAt          time.Time             `json:"started_at"`
	CompletedAt        *time.Time            `json:"completed_at"`
}

// ModuleWithProgressDTO is the employee view of a module
type ModuleWithProgressDTO struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	DurationMinutes int         `json:"duration_minutes"`
	IsMandatory     bool        `json:"is_mandatory"`
	Progress        ProgressDTO `json:"progress"`
}

// ModuleListResponse is the paginated HR module catalog
type ModuleListResponse struct {
	TrainingModules []ModuleDTO `json:"training_modules"`
	Total           int64       `json:"total"`
	Page            int         `json:"page"`
	PageSize        int         `json:"page_size"`
}

// ModuleProgressListResponse is the paginated employee training view
type ModuleProgressListResponse struct {
	TrainingModules []ModuleWithProgressDTO `json:"training_modules"`
	Total           int64                   `json:"total"`
	Page            int                     `json:"page"`
	PageSize        int                     `json:"page_size"`
}

// ToModuleDTO converts a TrainingModule to the HR catalog shape
func ToModuleDTO(module models.TrainingModule) ModuleDTO {
	return ModuleDTO{
		ID:              module.ID,
		Title:           module.Title,
		Description:     module.Description,
		Content:         module.Content,
		DurationMinutes: module.DurationMinutes,
		IsMandatory:     module.IsMandatory,
		CreatedAt:       module.CreatedAt,
	}
}

// ToProgressRecordDTO converts a stored progress record
func ToProgressRecordDTO(progress models.TrainingProgress) ProgressRecordDTO {
	return ProgressRecordDTO{
		ID:                 progress.ID,
		ModuleID:           progress.TrainingModuleID,
		EmployeeID:         progress.EmployeeID,
		Status:             progress.Status,
		ProgressPercentage: progress.ProgressPercentage,
		StartedAt:          progress.StartedAt,
		CompletedAt:        progress.CompletedAt,
	}
}

// ToModuleWithProgressDTO converts a module joined with optional progress
func ToModuleWithProgressDTO(mp services.ModuleProgress) ModuleWithProgressDTO {
	progress := ProgressDTO{
		Status:             models.ProgressStatusPending,
		ProgressPercentage: 0,
	}
	if mp.Progress != nil {
		started := mp.Progress.StartedAt
		progress = ProgressDTO{
			Status:             mp.Progress.Status,
			ProgressPercentage: mp.Progress.ProgressPercentage,
			StartedAt:          &started,
			CompletedAt:        mp.Progress.CompletedAt,
		}
	}

	return ModuleWithProgressDTO{
		ID:              mp.Module.ID,
		Title:           mp.Module.Title,
		Description:     mp.Module.Description,
		DurationMinutes: mp.Module.DurationMinutes,
		IsMandatory:     mp.Module.IsMandatory,
		Progress:        progress,
	}
}

// ToModuleListResponse converts a page of modules
func ToModuleListResponse(modules []models.TrainingModule, page, pageSize int, total int64) ModuleListResponse {
	items := make([]ModuleDTO, len(modules))
	for i, module := range modules {
		items[i] = ToModuleDTO(module)
	}

	return ModuleListResponse{
		TrainingModules: items,
		Total:           total,
		Page:            page,
		PageSize:        pageSize,
	}
}

// ToModuleProgressListResponse converts a page of modules with progress
func ToModuleProgressListResponse(mps []services.ModuleProgress, page, pageSize int, total int64) ModuleProgressListResponse {
	items := make([]ModuleWithProgressDTO, len(mps))
	for i, mp := range mps {
		items[i] = ToModuleWithProgressDTO(mp)
	}

	return ModuleProgressListResponse{
		TrainingModules: items,
		Total:           total,
		Page:            page,
		PageSize:        pageSize,
	}
}
