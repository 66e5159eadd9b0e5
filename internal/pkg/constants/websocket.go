package constants

// WebSocket event types
const (
	EventError        = "error"
	EventPing         = "ping"
	EventPong         = "pong"
	EventNotification = "notification"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorInternal      = "internal_error"
)
