package middleware

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/hr-onboarding-api/internal/errors"
	"github.com/yukikurage/hr-onboarding-api/internal/policy"
)

// RequirePathIdentity checks the target identity claimed in the URL path
// against the authenticated principal. The denial is uniform: callers
// cannot tell whether the name or the role mismatched.
func RequirePathIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, exists := GetPrincipal(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if !policy.Authorize(principal, c.Param("name"), c.Param("role")) {
			apierrors.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireHR denies any principal that does not hold the HR role. It runs
// after RequirePathIdentity, so both gates must pass.
func RequireHR() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, exists := GetPrincipal(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if !policy.IsHR(principal) {
			apierrors.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
