// Package constants provides shared constants used across the application
// to avoid circular dependencies between packages.
package constants

import "time"

// Timeout constants used across the application
const (
	// DefaultAPITimeout is the timeout for LLM API requests
	DefaultAPITimeout = 120 * time.Second
	// DefaultCommandTimeout is the timeout for shell tool execution
	DefaultCommandTimeout = 30 * time.Second
)

// Application defaults
const (
	DefaultSystemMessage = "You are a helpful assistant running in a terminal. Be precise and concise."
)
