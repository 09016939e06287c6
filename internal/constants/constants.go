package constants

// Context keys set by the auth middleware
const (
	ContextKeyUserID = "user_id"
	ContextKeyUser   = "current_user"
)

// Pagination bounds
const (
	MinPageSize     = 1
	DefaultPageSize = 50
	MaxPageSize     = 100
)
