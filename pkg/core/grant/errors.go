package grant

import "fmt"

// InvalidInputError reports a parameter the engine refuses to compute with.
// The engine rejects malformed input outright; defaulting and clamping are
// the input supplier's job (schedule.Normalize, config validation) so that
// corrected values are never silently substituted here.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...interface{}) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
