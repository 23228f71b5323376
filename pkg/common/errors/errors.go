package errors

import (
	"errors"
	"fmt"
)

// Common error kinds returned by goguard guards

var (
	// ErrOutOfRange indicates that a value violates a numeric or length bound
	ErrOutOfRange = errors.New("argument out of range")

	// ErrInvalidArgument indicates that a value is absent or malformed
	// independent of any bound
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMisuse indicates that a guard itself was called with impossible
	// bounds. It is always reported together with ErrInvalidArgument.
	ErrMisuse = errors.New("guard misuse")
)

// ArgumentError is returned by every failing guard. It carries the name of
// the offending item and a rendered, human readable message.
type ArgumentError struct {
	// Kind is ErrOutOfRange or ErrInvalidArgument.
	Kind error

	// Item is the name of the argument, field or parameter under test.
	Item string

	// Message describes the violated constraint.
	Message string

	// Hint is an optional remedy appended to the error text.
	Hint string

	// Cause is an optional underlying error, such as a parse failure or ErrMisuse.
	Cause error
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	kind := e.Kind
	if kind == nil {
		kind = ErrInvalidArgument
	}
	msg := fmt.Sprintf("%s: %s (%s)", kind, e.Item, e.Message)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is and errors.As.
func (e *ArgumentError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// WithHint adds a remedy to the error and returns it for chaining.
func (e *ArgumentError) WithHint(hint string) *ArgumentError {
	e.Hint = hint
	return e
}

// WithCause records an underlying error and returns it for chaining.
func (e *ArgumentError) WithCause(cause error) *ArgumentError {
	e.Cause = cause
	return e
}

// NewOutOfRange creates an out-of-range error for item.
func NewOutOfRange(item, message string) *ArgumentError {
	return &ArgumentError{Kind: ErrOutOfRange, Item: item, Message: message}
}

// NewInvalidArgument creates an invalid-argument error for item.
func NewInvalidArgument(item, message string) *ArgumentError {
	return &ArgumentError{Kind: ErrInvalidArgument, Item: item, Message: message}
}

// NewMisuse creates an invalid-argument error that also matches ErrMisuse.
// Guards return it when they are handed impossible bounds.
func NewMisuse(item, message string) *ArgumentError {
	return &ArgumentError{Kind: ErrInvalidArgument, Item: item, Message: message, Cause: ErrMisuse}
}

// Constructor builds the error a guard returns on failure.
type Constructor func(item, message string) error

// OutOfRange is the Constructor for out-of-range failures.
var OutOfRange Constructor = func(item, message string) error {
	return NewOutOfRange(item, message)
}

// InvalidArgument is the Constructor for invalid-argument failures.
var InvalidArgument Constructor = func(item, message string) error {
	return NewInvalidArgument(item, message)
}

// IsOutOfRange reports whether err is a bound violation.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsInvalidArgument reports whether err is an absent or malformed value,
// including guard misuse.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsMisuse reports whether err was caused by calling a guard with impossible bounds.
func IsMisuse(err error) bool {
	return errors.Is(err, ErrMisuse)
}

// ItemOf returns the item name carried by err, or "" if err is not an ArgumentError.
func ItemOf(err error) string {
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return argErr.Item
	}
	return ""
}

// Reason returns a short label for the kind of err: "misuse",
// "out_of_range", "invalid_argument", or "" for nil and foreign errors.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case IsMisuse(err):
		return "misuse"
	case IsOutOfRange(err):
		return "out_of_range"
	case IsInvalidArgument(err):
		return "invalid_argument"
	default:
		return ""
	}
}
