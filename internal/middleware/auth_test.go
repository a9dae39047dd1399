package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	internalauth "github.com/yukikurage/hr-onboarding-api/internal/auth"
	"github.com/yukikurage/hr-onboarding-api/internal/models"
	"github.com/yukikurage/hr-onboarding-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthMiddlewareTest(t *testing.T) (*gin.Engine, *internalauth.TokenManager, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	tokens := internalauth.NewTokenManager("test-secret", 30*time.Minute)
	users := repository.NewUserRepository(db)

	r := gin.New()
	r.GET("/:name/:role/dashboard", RequireAuth(tokens, users), RequirePathIdentity(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r, tokens, db
}

func createTestUser(t *testing.T, db *gorm.DB, name string, role models.UserRole, active bool) *models.User {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        name + "@company.com",
		PasswordHash: "irrelevant",
		Role:         role,
		IsActive:     active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestRequireAuth_MissingToken(t *testing.T) {
	r, _, _ := setupAuthMiddlewareTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/Jane/employee/dashboard", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	r, _, _ := setupAuthMiddlewareTest(t)

	req := httptest.NewRequest(http.MethodGet, "/Jane/employee/dashboard", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_DeactivatedAccount(t *testing.T) {
	r, tokens, db := setupAuthMiddlewareTest(t)

	user := createTestUser(t, db, "Jane", models.RoleEmployee, false)
	token, err := tokens.Issue(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/Jane/employee/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequirePathIdentity(t *testing.T) {
	r, tokens, db := setupAuthMiddlewareTest(t)

	user := createTestUser(t, db, "Jane", models.RoleEmployee, true)
	token, err := tokens.Issue(user)
	require.NoError(t, err)

	cases := []struct {
		name string
		path string
		want int
	}{
		{"exact match", "/Jane/employee/dashboard", http.StatusOK},
		{"role is case-insensitive", "/Jane/EMPLOYEE/dashboard", http.StatusOK},
		{"wrong role", "/Jane/hr/dashboard", http.StatusForbidden},
		{"someone else's name", "/Bob/employee/dashboard", http.StatusForbidden},
		{"name is case-sensitive", "/jane/employee/dashboard", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			require.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRequireHR(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	tokens := internalauth.NewTokenManager("test-secret", 30*time.Minute)
	users := repository.NewUserRepository(db)

	r := gin.New()
	r.GET("/:name/:role/employees", RequireAuth(tokens, users), RequirePathIdentity(), RequireHR(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	employee := createTestUser(t, db, "Jane", models.RoleEmployee, true)
	hr := createTestUser(t, db, "John", models.RoleHR, true)

	employeeToken, err := tokens.Issue(employee)
	require.NoError(t, err)
	hrToken, err := tokens.Issue(hr)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/Jane/employee/employees", nil)
	req.Header.Set("Authorization", "Bearer "+employeeToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/John/hr/employees", nil)
	req.Header.Set("Authorization", "Bearer "+hrToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
