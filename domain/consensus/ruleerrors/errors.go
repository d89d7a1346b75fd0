package ruleerrors

import "github.com/pkg/errors"

// RuleError is a consensus-rejection error carrying a Kind for
// programmatic matching, wrapping an underlying github.com/pkg/errors
// error for the human-readable message and stack trace.
type RuleError struct {
	Kind Kind
	err  error
}

// Error implements the error interface.
func (e *RuleError) Error() string {
	return e.err.Error()
}

// Cause supports github.com/pkg/errors.Cause unwrapping.
func (e *RuleError) Cause() error {
	return e.err
}

// Unwrap supports errors.Is/errors.As from the standard library.
func (e *RuleError) Unwrap() error {
	return e.err
}

// New constructs a RuleError of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *RuleError {
	return &RuleError{Kind: kind, err: errors.Errorf(format, args...)}
}

// Wrap constructs a RuleError of the given kind wrapping an existing error.
func Wrap(kind Kind, cause error, message string) *RuleError {
	return &RuleError{Kind: kind, err: errors.Wrap(cause, message)}
}

// Wrapf constructs a RuleError of the given kind wrapping an existing
// error with a formatted message.
func Wrapf(kind Kind, cause error, format string, args ...interface{}) *RuleError {
	return &RuleError{Kind: kind, err: errors.Wrapf(cause, format, args...)}
}

// KindOf returns the Kind of err if it is (or wraps) a *RuleError, and
// KindGeneric otherwise.
func KindOf(err error) Kind {
	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		return ruleErr.Kind
	}
	return KindGeneric
}
