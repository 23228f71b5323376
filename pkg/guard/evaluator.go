package guard

import (
	gerrors "github.com/vnykmshr/goguard/pkg/common/errors"
	"github.com/vnykmshr/goguard/pkg/message"
)

// Evaluator is the single control point every guard goes through.
//
// Test reports whether the desired state holds. It is run exactly once and
// must be deterministic and free of side effects visible to the caller.
// Message and NewError are only called when Test fails.
type Evaluator[T any] struct {
	Value    T
	Item     string
	Kind     message.Kind
	Test     func() bool
	Message  func(item string) string
	NewError gerrors.Constructor
}

// Evaluate runs the test. On success it returns Value unchanged and a nil
// error. On failure it returns the zero value of T and the constructed error.
func (e Evaluator[T]) Evaluate() (T, error) {
	var zero T

	if e.Test == nil {
		err := gerrors.NewMisuse(e.Item, "guard has no test")
		notify(e.Kind, e.Item, err)
		return zero, err
	}

	if e.Test() {
		notify(e.Kind, e.Item, nil)
		return e.Value, nil
	}

	msg := e.Item + " is invalid"
	if e.Message != nil {
		msg = e.Message(e.Item)
	}
	newErr := e.NewError
	if newErr == nil {
		newErr = gerrors.InvalidArgument
	}

	err := newErr(e.Item, msg)
	notify(e.Kind, e.Item, err)
	return zero, err
}

// Fixed returns a Message func that ignores the item name and yields msg.
func Fixed(msg string) func(string) string {
	return func(string) string {
		return msg
	}
}

// misuse reports a guard called with impossible bounds. The value under
// test is never examined.
func misuse[T any](kind message.Kind, item, msg string) (T, error) {
	var zero T
	err := gerrors.NewMisuse(item, msg)
	notify(kind, item, err)
	return zero, err
}
