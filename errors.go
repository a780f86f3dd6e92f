package origin

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every ConfigError.
var ErrInvalidConfig = errors.New("origin: invalid config")

var errUnrecognisedPin = errors.New("origin: cell holds an unrecognised origin")

// ConfigError captures the offending field alongside the originating error.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("origin: config field=%s %s: %v", e.Field, describeValue(e.Value), e.Err)
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports ErrInvalidConfig as a match.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func describeValue(value string) string {
	if value == "" {
		return "value=<empty>"
	}
	return fmt.Sprintf("value=%q", value)
}

// wrapCellError tags a cell failure with the operation that produced it.
func wrapCellError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("origin: cell %s: %w", op, err)
}
