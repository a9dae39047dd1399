package constants

// Context keys
const (
	ContextKeyPrincipal = "principal"
)

// Pagination
const (
	MinPage         = 1
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// Auth
const (
	MinPasswordLength  = 8
	TokenExpiryMinutes = 30
)

// Training progress bounds
const (
	MinProgressPercentage = 0
	MaxProgressPercentage = 100
)
