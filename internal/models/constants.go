package models

const (
	StatusWaiting  = "WAITING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

const (
	// DefaultRateLimitRequests requests allowed per window when config is silent
	DefaultRateLimitRequests = 50

	// DefaultRateLimitWindow rate limit window in seconds
	DefaultRateLimitWindow = 60
)
