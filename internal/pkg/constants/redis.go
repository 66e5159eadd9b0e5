package constants

// Redis key prefixes
const (
	KeyRateLimit = "ratelimit"
)
