// Package constants defines shared constants and environment configuration
// used throughout navstep.
package constants

import (
	"os"
	"strings"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// PushMultipleEnvVar overrides the platform capability probe.
// Accepts 1/true/yes/on and 0/false/no/off.
const PushMultipleEnvVar = "NAVSTEP_PUSH_MULTIPLE"

// StepDelayEnvVar overrides the delay between scheduled steps (time.ParseDuration syntax).
const StepDelayEnvVar = "NAVSTEP_STEP_DELAY"

// LogLevelEnvVar sets the application log level (debug, info, warn, error).
const LogLevelEnvVar = "NAVSTEP_LOG_LEVEL"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Default timing constants.
const (
	DefaultStepDelay = 650 * time.Millisecond // Wait between consecutive visible steps
)

// ParseBool reads the loose boolean forms accepted by the env vars above.
// ok is false when raw is empty or not recognised.
func ParseBool(raw string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}
