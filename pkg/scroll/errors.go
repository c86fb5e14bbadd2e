package scroll

import (
	"errors"
	"fmt"
)

var (
	errNegativeDelay     = errors.New("delay must not be negative")
	errNegativeThreshold = errors.New("threshold must not be negative")
)

// ConfigError represents an invalid or unreadable widget configuration.
//
// Element-id lookups that fail at evaluation time are NOT errors; the engine
// falls back silently to the threshold and absolute-target branches. The only
// error surface of this package is configuration parsing and validation.
type ConfigError struct {
	// Op is the operation that failed (e.g., "scroll.LoadConfigFile").
	Op string
	// Field is the config field at fault, if a single one is.
	Field string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field %s: %v", e.Op, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
