package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-onboarding-api/internal/auth"
	"github.com/yukikurage/hr-onboarding-api/internal/constants"
	apierrors "github.com/yukikurage/hr-onboarding-api/internal/errors"
	"github.com/yukikurage/hr-onboarding-api/internal/policy"
	"github.com/yukikurage/hr-onboarding-api/internal/repository"
)

// RequireAuth validates the bearer token and resolves the principal. The
// user row is loaded so the principal always reflects current name, role,
// and active state rather than stale token claims.
func RequireAuth(tokens *auth.TokenManager, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.Subject)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}
		if !user.IsActive {
			apierrors.Unauthorized(c, "Account is deactivated")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyPrincipal, policy.Principal{
			ID:   user.ID,
			Name: user.Name,
			Role: user.Role,
		})
		c.Next()
	}
}

// GetPrincipal retrieves the authenticated principal from context.
func GetPrincipal(c *gin.Context) (policy.Principal, bool) {
	value, exists := c.Get(constants.ContextKeyPrincipal)
	if !exists {
		return policy.Principal{}, false
	}

	principal, ok := value.(policy.Principal)
	return principal, ok
}
