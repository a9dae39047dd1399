package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressStatus string

const (
	ProgressStatusPending   ProgressStatus = "pending"
	ProgressStatusCompleted ProgressStatus = "completed"
)

// TrainingProgress tracks one employee against one training module.
// At most one record exists per (employee, module) pair.
type TrainingProgress struct {
	ID                 string         `gorm:"type:varchar(36);primarykey" json:"id"`
	EmployeeID         string         `gorm:"type:varchar(36);not null;uniqueIndex:idx_progress_employee_module" json:"employee_id"`
	TrainingModuleID   string         `gorm:"type:varchar(36);not null;uniqueIndex:idx_progress_employee_module" json:"training_module_id"`
	ProgressPercentage int            `gorm:"not null;default:0" json:"progress_percentage"`
	Status             ProgressStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	StartedAt          time.Time      `json:"started_at"`
	CompletedAt        *time.Time     `json:"completed_at"`

	// Relations
	Employee User           `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Module   TrainingModule `gorm:"foreignKey:TrainingModuleID" json:"module,omitempty"`
}

func (p *TrainingProgress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
