package database

import (
	"fmt"
	"log"

	"github.com/yukikurage/hr-onboarding-api/internal/auth"
	"github.com/yukikurage/hr-onboarding-api/internal/models"
	"gorm.io/gorm"
)

const defaultHREmail = "john.hr@company.com"

// Seed creates the default HR account and sample employees if the HR
// account does not exist yet.
func Seed(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", defaultHREmail).First(&existing).Error
	if err == nil {
		log.Println("Default users already exist, skipping seed")
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to check default users: %w", err)
	}

	hash, err := auth.HashPassword("password123")
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}

	users := []models.User{
		{Name: "John HR", Email: defaultHREmail, PasswordHash: hash, Role: models.RoleHR, IsActive: true},
		{Name: "Jane Employee", Email: "jane.employee@company.com", PasswordHash: hash, Role: models.RoleEmployee, IsActive: true},
		{Name: "Bob Employee", Email: "bob.employee@company.com", PasswordHash: hash, Role: models.RoleEmployee, IsActive: true},
		{Name: "Alice Employee", Email: "alice.employee@company.com", PasswordHash: hash, Role: models.RoleEmployee, IsActive: true},
	}

	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to create default users: %w", err)
	}

	log.Println("Default users created")
	return nil
}
