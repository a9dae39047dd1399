package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/hr-onboarding-api/internal/models"
)

func TestAuthorize(t *testing.T) {
	jane := Principal{ID: "u1", Name: "Jane Employee", Role: models.RoleEmployee}
	john := Principal{ID: "u2", Name: "John HR", Role: models.RoleHR}

	tests := []struct {
		name       string
		principal  Principal
		targetName string
		targetRole string
		want       bool
	}{
		{"exact match", jane, "Jane Employee", "employee", true},
		{"role case-insensitive", jane, "Jane Employee", "EMPLOYEE", true},
		{"role mixed case", john, "John HR", "Hr", true},
		{"wrong role", jane, "Jane Employee", "hr", false},
		{"wrong name", jane, "Bob Employee", "employee", false},
		{"name is case-sensitive", jane, "jane employee", "employee", false},
		{"both wrong", jane, "John HR", "hr", false},
		{"unknown role string", jane, "Jane Employee", "admin", false},
		{"empty target", jane, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.principal, tt.targetName, tt.targetRole))
		})
	}
}

func TestIsHR(t *testing.T) {
	assert.True(t, IsHR(Principal{Role: models.RoleHR}))
	assert.False(t, IsHR(Principal{Role: models.RoleEmployee}))
	assert.False(t, IsHR(Principal{}))
}
