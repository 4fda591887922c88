package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequiredField indicates a required setting is missing
	ErrMissingRequiredField = errors.New("missing required setting")

	// ErrInvalidValue indicates a setting has an invalid value
	ErrInvalidValue = errors.New("invalid setting value")
)

// ConfigError wraps a configuration problem with the setting name. Startup
// treats any ConfigError as fatal.
type ConfigError struct {
	Setting string
	Err     error
}

// Error returns formatted error message
func (e *ConfigError) Error() string {
	return fmt.Sprintf("setting %s: %v", e.Setting, e.Err)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Err
}

func missing(setting string) *ConfigError {
	return &ConfigError{Setting: setting, Err: ErrMissingRequiredField}
}

func invalid(setting string, detail string) *ConfigError {
	return &ConfigError{Setting: setting, Err: fmt.Errorf("%w: %s", ErrInvalidValue, detail)}
}
