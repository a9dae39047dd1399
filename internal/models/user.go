package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleHR       UserRole = "hr"
	RoleEmployee UserRole = "employee"
)

// ParseRole matches a role string case-insensitively against the closed set.
func ParseRole(s string) (UserRole, bool) {
	switch UserRole(strings.ToLower(s)) {
	case RoleHR:
		return RoleHR, true
	case RoleEmployee:
		return RoleEmployee, true
	default:
		return "", false
	}
}

type User struct {
	ID           string         `gorm:"type:varchar(36);primarykey" json:"id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	Role         UserRole       `gorm:"type:varchar(20);not null" json:"role"`
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Assignments []TaskAssignment   `gorm:"foreignKey:EmployeeID" json:"-"`
	Documents   []Document         `gorm:"foreignKey:EmployeeID" json:"-"`
	Training    []TrainingProgress `gorm:"foreignKey:EmployeeID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
