package toast

import (
	"errors"
	"fmt"
)

// ConfigError reports an invalid or contradictory display parameter.
// All validation failures surface as this one kind, carrying a
// human-readable message naming the offending field and the violated
// constraint. Validation is all-or-nothing: a record either fully passes
// or is rejected before any rendering attempt.
type ConfigError struct {
	msg string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return e.msg
}

// configErrorf creates a ConfigError with a formatted message.
func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
