package contextkeys

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// UserID is the context key for the authenticated user's ID (int64).
	UserID contextKey = "userID"
	// RequestID is the context key for the per-request correlation ID.
	RequestID contextKey = "requestID"
)
