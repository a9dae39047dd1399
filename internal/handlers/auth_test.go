package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hr-onboarding-api/internal/dto"
	"github.com/yukikurage/hr-onboarding-api/internal/models"
)

func TestAuthHandler_Register(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewAuthHandler(env.authService)

	hr := env.createUser(t, "John HR", "john.hr@company.com", models.RoleHR)

	r := gin.New()
	r.POST("/auth/register", withPrincipal(principalFor(hr)), handler.Register)

	payload := map[string]string{
		"name":     "Jane Employee",
		"email":    "jane@company.com",
		"password": "supersecret",
		"role":     "employee",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, payload["name"], response.Name)
	require.Equal(t, payload["email"], response.Email)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewAuthHandler(env.authService)

	hr := env.createUser(t, "John HR", "john.hr@company.com", models.RoleHR)
	env.createUser(t, "Jane Employee", "jane@company.com", models.RoleEmployee)

	r := gin.New()
	r.POST("/auth/register", withPrincipal(principalFor(hr)), handler.Register)

	body, err := json.Marshal(map[string]string{
		"name":     "Second Jane",
		"email":    "jane@company.com",
		"password": "supersecret",
		"role":     "employee",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewAuthHandler(env.authService)

	hr := env.createUser(t, "John HR", "john.hr@company.com", models.RoleHR)

	r := gin.New()
	r.POST("/auth/register", withPrincipal(principalFor(hr)), handler.Register)

	body, err := json.Marshal(map[string]string{
		"name":     "Jane Employee",
		"email":    "jane@company.com",
		"password": "short",
		"role":     "employee",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewAuthHandler(env.authService)

	env.createUser(t, "Jane Employee", "jane@company.com", models.RoleEmployee)

	r := gin.New()
	r.POST("/auth/login", handler.Login)

	body, err := json.Marshal(map[string]string{
		"email":    "jane@company.com",
		"password": "supersecret",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.AccessToken)
	require.Equal(t, "bearer", response.TokenType)
	require.Equal(t, "jane@company.com", response.User.Email)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewAuthHandler(env.authService)

	env.createUser(t, "Jane Employee", "jane@company.com", models.RoleEmployee)

	r := gin.New()
	r.POST("/auth/login", handler.Login)

	body, err := json.Marshal(map[string]string{
		"email":    "jane@company.com",
		"password": "wrongpassword",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
