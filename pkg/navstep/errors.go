package navstep

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a configuration value is malformed or out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError represents a failure to load a configuration file.
type ConfigError struct {
	Path string // File being loaded
	Err  error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navstep: config %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("navstep: config %s", e.Path)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(path string, err error) *ConfigError {
	return &ConfigError{Path: path, Err: err}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
