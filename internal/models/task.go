package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID                   string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Title                string         `gorm:"type:varchar(255);not null" json:"title"`
	Description          string         `gorm:"type:text" json:"description"`
	TaskType             string         `gorm:"type:varchar(50);not null" json:"task_type"`
	Content              string         `gorm:"type:text" json:"content"`
	RequiredDocumentType *DocumentType  `gorm:"type:varchar(50)" json:"required_document_type,omitempty"`
	IsActive             bool           `gorm:"not null;default:true" json:"is_active"`
	CreatorID            string         `gorm:"type:varchar(36);not null" json:"creator_id"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Creator     User             `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Assignments []TaskAssignment `gorm:"foreignKey:TaskID" json:"assignments,omitempty"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
