package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentStatus string

const (
	AssignmentStatusPending   AssignmentStatus = "pending"
	AssignmentStatusCompleted AssignmentStatus = "completed"
)

// TaskAssignment links one task to one employee. The composite unique index
// backs the one-assignment-per-(task, employee) invariant at the storage
// level, so a concurrent duplicate insert fails instead of racing past the
// existence check.
type TaskAssignment struct {
	ID           string           `gorm:"type:varchar(36);primarykey" json:"id"`
	TaskID       string           `gorm:"type:varchar(36);not null;uniqueIndex:idx_assignment_task_employee" json:"task_id"`
	EmployeeID   string           `gorm:"type:varchar(36);not null;uniqueIndex:idx_assignment_task_employee" json:"employee_id"`
	AssignedByID string           `gorm:"type:varchar(36);not null" json:"assigned_by_id"`
	Status       AssignmentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	AssignedAt   time.Time        `json:"assigned_at"`
	CompletedAt  *time.Time       `json:"completed_at"`

	// Relations
	Task       Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Employee   User `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	AssignedBy User `gorm:"foreignKey:AssignedByID" json:"assigned_by,omitempty"`
}

func (a *TaskAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
