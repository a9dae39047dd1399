// Package policy decides whether a request principal may act on a
// path-scoped target identity. It is pure: no storage, no side effects.
package policy

import (
	"strings"

	"github.com/yukikurage/hr-onboarding-api/internal/models"
)

// Principal is the authenticated identity making a request.
type Principal struct {
	ID   string
	Name string
	Role models.UserRole
}

// Authorize reports whether the principal matches the target identity
// claimed in the request path. The role comparison is case-insensitive;
// the name must equal the principal's display name exactly as stored.
// A mismatch on either is denied without distinguishing which check failed.
func Authorize(p Principal, targetName, targetRole string) bool {
	if !strings.EqualFold(targetRole, string(p.Role)) {
		return false
	}
	return targetName == p.Name
}

// IsHR reports whether the principal holds the HR role. Operations gated on
// HR evaluate this in addition to Authorize, not instead of it.
func IsHR(p Principal) bool {
	return p.Role == models.RoleHR
}
