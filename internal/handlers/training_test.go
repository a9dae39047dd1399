package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hr-onboarding-api/internal/dto"
	"github.com/yukikurage/hr-onboarding-api/internal/models"
	"github.com/yukikurage/hr-onboarding-api/internal/services"
)

func TestTrainingHandler_Create(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewTrainingHandler(env.trainingService)

	hr := env.createUser(t, "John HR", "john.hr@company.com", models.RoleHR)

	r := gin.New()
	r.POST("/training", withPrincipal(principalFor(hr)), handler.Create)

	body, err := json.Marshal(map[string]any{
		"title":            "Security 101",
		"description":      "Mandatory security basics",
		"duration_minutes": 45,
		"is_mandatory":     true,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/training", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.ModuleDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Security 101", response.Title)
	require.Equal(t, 45, response.DurationMinutes)
	require.True(t, response.IsMandatory)
}

func TestTrainingHandler_UpdateProgress(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewTrainingHandler(env.trainingService)

	employee := env.createUser(t, "Jane Employee", "jane@company.com", models.RoleEmployee)
	module, err := env.trainingService.CreateModule(context.Background(), services.CreateModuleInput{
		Title:    "Security 101",
		IsActive: true,
	})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/training/progress", withPrincipal(principalFor(employee)), handler.UpdateProgress)

	send := func(percentage int) (*httptest.ResponseRecorder, dto.ProgressRecordDTO) {
		body, err := json.Marshal(map[string]any{
			"module_id":             module.ID,
			"completion_percentage": percentage,
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/training/progress", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var record dto.ProgressRecordDTO
		if w.Code == http.StatusOK {
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
		}
		return w, record
	}

	w, record := send(40)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, models.ProgressStatusPending, record.Status)
	require.Equal(t, 40, record.ProgressPercentage)
	require.Nil(t, record.CompletedAt)

	w, record = send(100)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, models.ProgressStatusCompleted, record.Status)
	require.NotNil(t, record.CompletedAt)
	completedAt := *record.CompletedAt

	// Dropping back below 100 reverts the status but keeps the original
	// completion timestamp.
	w, record = send(40)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, models.ProgressStatusPending, record.Status)
	require.Equal(t, 40, record.ProgressPercentage)
	require.NotNil(t, record.CompletedAt)
	require.WithinDuration(t, completedAt, *record.CompletedAt, time.Second)

	// Reaching 100 again refreshes the completion timestamp.
	time.Sleep(5 * time.Millisecond)
	w, record = send(100)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, models.ProgressStatusCompleted, record.Status)
	require.NotNil(t, record.CompletedAt)
	require.True(t, record.CompletedAt.After(completedAt))
}

func TestTrainingHandler_UpdateProgress_Validation(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewTrainingHandler(env.trainingService)

	employee := env.createUser(t, "Jane Employee", "jane@company.com", models.RoleEmployee)
	module, err := env.trainingService.CreateModule(context.Background(), services.CreateModuleInput{
		Title:    "Security 101",
		IsActive: true,
	})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/training/progress", withPrincipal(principalFor(employee)), handler.UpdateProgress)

	cases := []struct {
		name     string
		moduleID string
		pct      int
		want     int
	}{
		{"negative percentage", module.ID, -1, http.StatusBadRequest},
		{"over one hundred", module.ID, 101, http.StatusBadRequest},
		{"unknown module", "no-such-module", 50, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, err := json.Marshal(map[string]any{
				"module_id":             tc.moduleID,
				"completion_percentage": tc.pct,
			})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/training/progress", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tc.want, w.Code)
		})
	}
}

func TestTrainingHandler_List_EmployeeJoinsProgress(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewTrainingHandler(env.trainingService)

	employee := env.createUser(t, "Jane Employee", "jane@company.com", models.RoleEmployee)

	started, err := env.trainingService.CreateModule(context.Background(), services.CreateModuleInput{
		Title:    "Security 101",
		IsActive: true,
	})
	require.NoError(t, err)
	untouched, err := env.trainingService.CreateModule(context.Background(), services.CreateModuleInput{
		Title:    "Code of Conduct",
		IsActive: true,
	})
	require.NoError(t, err)

	// Inactive modules stay out of the listing entirely.
	_, err = env.trainingService.CreateModule(context.Background(), services.CreateModuleInput{
		Title:    "Retired module",
		IsActive: false,
	})
	require.NoError(t, err)

	_, err = env.trainingService.UpsertProgress(context.Background(), employee.ID, started.ID, 60)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/training", withPrincipal(principalFor(employee)), handler.List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/training", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ModuleProgressListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, int64(2), response.Total)

	byID := make(map[string]dto.ModuleWithProgressDTO, len(response.TrainingModules))
	for _, m := range response.TrainingModules {
		byID[m.ID] = m
	}

	require.Equal(t, 60, byID[started.ID].Progress.ProgressPercentage)
	require.Equal(t, models.ProgressStatusPending, byID[started.ID].Progress.Status)
	require.NotNil(t, byID[started.ID].Progress.StartedAt)

	// A module never touched reads as pending at zero with no timestamps.
	require.Equal(t, 0, byID[untouched.ID].Progress.ProgressPercentage)
	require.Equal(t, models.ProgressStatusPending, byID[untouched.ID].Progress.Status)
	require.Nil(t, byID[untouched.ID].Progress.StartedAt)
	require.Nil(t, byID[untouched.ID].Progress.CompletedAt)
}

func TestTrainingHandler_List_HRSeesCatalog(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewTrainingHandler(env.trainingService)

	hr := env.createUser(t, "John HR", "john.hr@company.com", models.RoleHR)

	_, err := env.trainingService.CreateModule(context.Background(), services.CreateModuleInput{
		Title:    "Security 101",
		Content:  "Full course text",
		IsActive: true,
	})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/training", withPrincipal(principalFor(hr)), handler.List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/training", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ModuleListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, int64(1), response.Total)
	require.Equal(t, "Full course text", response.TrainingModules[0].Content)
}
