package domain

import "time"

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetSupabaseURL() string
	GetSupabaseKey() string
	// GetSessionIdleThreshold is how long an untouched review pass stays
	// resumable before it is treated as absent.
	GetSessionIdleThreshold() time.Duration
}
