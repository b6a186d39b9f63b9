package constants

import "time"

// Context keys shared between middleware and handlers
const (
	ContextKeyUser = "user"
	ContextKeyTask = "task"
)

// Authentication
const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	TokenTTL            = 3600 * time.Second
)

// Credential limits
const (
	MinUsernameLength = 4
	MaxUsernameLength = 20
	MinPasswordLength = 8
	MaxPasswordLength = 32
)

// DefaultJWTSecret is only acceptable outside of production
const DefaultJWTSecret = "default-secret-key-change-me"
