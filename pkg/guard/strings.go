package guard

import (
	"strings"
	"unicode/utf8"

	gerrors "github.com/vnykmshr/goguard/pkg/common/errors"
	"github.com/vnykmshr/goguard/pkg/message"
)

// Lengths are counted in runes, so "héllo" has length 5.

func isSet(s string) bool {
	return strings.TrimSpace(s) != ""
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// IsSet returns value if it contains at least one non-whitespace character.
func IsSet(value, item string) (string, error) {
	return isSetGuard(value, item, func(item string) string {
		return message.For(item).WithActual(value).Prepare(message.NotSet)
	})
}

// IsSetWithMessage is IsSet with a caller supplied failure message.
func IsSetWithMessage(value, item, msg string) (string, error) {
	return isSetGuard(value, item, Fixed(msg))
}

func isSetGuard(value, item string, msg func(string) string) (string, error) {
	return Evaluator[string]{
		Value:    value,
		Item:     item,
		Kind:     message.KindIsSet,
		Test:     func() bool { return isSet(value) },
		Message:  msg,
		NewError: gerrors.InvalidArgument,
	}.Evaluate()
}

// IsSetPtr returns value if it is non-nil and points to a string accepted by IsSet.
// The returned pointer is the one passed in.
func IsSetPtr(value *string, item string) (*string, error) {
	return isSetPtr(value, item, func(item string) string {
		return message.For(item).Prepare(message.NotSet)
	})
}

// IsSetPtrWithMessage is IsSetPtr with a caller supplied failure message.
func IsSetPtrWithMessage(value *string, item, msg string) (*string, error) {
	return isSetPtr(value, item, Fixed(msg))
}

func isSetPtr(value *string, item string, msg func(string) string) (*string, error) {
	return Evaluator[*string]{
		Value:    value,
		Item:     item,
		Kind:     message.KindIsSet,
		Test:     func() bool { return value != nil && isSet(*value) },
		Message:  msg,
		NewError: gerrors.InvalidArgument,
	}.Evaluate()
}

// RequiredLength returns value if it is exactly requiredLength runes long.
// A requiredLength of zero or less is a misuse error whatever the value.
func RequiredLength(value, item string, requiredLength int) (string, error) {
	return requiredLengthGuard(value, item, requiredLength, func(item string) string {
		return message.For(item).
			WithActual(value).
			WithRequiredLength(requiredLength).
			Prepare(message.WrongLength)
	})
}

// RequiredLengthWithMessage is RequiredLength with a caller supplied failure message.
func RequiredLengthWithMessage(value, item string, requiredLength int, msg string) (string, error) {
	return requiredLengthGuard(value, item, requiredLength, Fixed(msg))
}

func requiredLengthGuard(value, item string, requiredLength int, msg func(string) string) (string, error) {
	if requiredLength <= 0 {
		return misuse[string](message.KindRequiredLength, "requiredLength", "required length must be greater than zero")
	}
	return Evaluator[string]{
		Value:    value,
		Item:     item,
		Kind:     message.KindRequiredLength,
		Test:     func() bool { return runeLen(value) == requiredLength },
		Message:  msg,
		NewError: gerrors.OutOfRange,
	}.Evaluate()
}

// Size returns value if it is set, as IsSet defines it, and between min and
// max runes long inclusive. An unset value is an invalid argument even when
// its length would fit the bounds; a set value of the wrong length is out of
// range.
func Size(value, item string, min, max int) (string, error) {
	return sizeGuard(value, item, min, max, func(item string) string {
		if !isSet(value) {
			return message.For(item).WithActual(value).Prepare(message.NotSet)
		}
		return message.For(item).
			WithActual(value).
			WithMinimum(min).
			WithMaximum(max).
			Prepare(message.WrongSize)
	})
}

// SizeWithMessage is Size with a caller supplied failure message.
func SizeWithMessage(value, item string, min, max int, msg string) (string, error) {
	return sizeGuard(value, item, min, max, Fixed(msg))
}

func sizeGuard(value, item string, min, max int, msg func(string) string) (string, error) {
	if err := checkBounds(min, max); err != nil {
		return misuse[string](message.KindSize, err.item, err.msg)
	}
	return Evaluator[string]{
		Value: value,
		Item:  item,
		Kind:  message.KindSize,
		Test: func() bool {
			if !isSet(value) {
				return false
			}
			n := runeLen(value)
			return n >= min && n <= max
		},
		Message: msg,
		NewError: func(item, msg string) error {
			if !isSet(value) {
				return gerrors.NewInvalidArgument(item, msg)
			}
			return gerrors.NewOutOfRange(item, msg)
		},
	}.Evaluate()
}

// MinLength returns value if it is at least min runes long.
func MinLength(value, item string, min int) (string, error) {
	return minLength(value, item, min, func(item string) string {
		return message.For(item).WithActual(value).WithMinimum(min).Prepare(message.TooShort)
	})
}

// MinLengthWithMessage is MinLength with a caller supplied failure message.
func MinLengthWithMessage(value, item string, min int, msg string) (string, error) {
	return minLength(value, item, min, Fixed(msg))
}

func minLength(value, item string, min int, msg func(string) string) (string, error) {
	return Evaluator[string]{
		Value:    value,
		Item:     item,
		Kind:     message.KindMinLength,
		Test:     func() bool { return runeLen(value) >= min },
		Message:  msg,
		NewError: gerrors.OutOfRange,
	}.Evaluate()
}

// MaxLength returns value if it is at most max runes long.
func MaxLength(value, item string, max int) (string, error) {
	return maxLength(value, item, max, func(item string) string {
		return message.For(item).WithActual(value).WithMaximum(max).Prepare(message.TooLong)
	})
}

// MaxLengthWithMessage is MaxLength with a caller supplied failure message.
func MaxLengthWithMessage(value, item string, max int, msg string) (string, error) {
	return maxLength(value, item, max, Fixed(msg))
}

func maxLength(value, item string, max int, msg func(string) string) (string, error) {
	if max < 0 {
		return misuse[string](message.KindMaxLength, "max", "maximum length cannot be negative")
	}
	return Evaluator[string]{
		Value:    value,
		Item:     item,
		Kind:     message.KindMaxLength,
		Test:     func() bool { return runeLen(value) <= max },
		Message:  msg,
		NewError: gerrors.OutOfRange,
	}.Evaluate()
}

// NotNil returns value if it is a non-nil pointer.
func NotNil[T any](value *T, item string) (*T, error) {
	return notNil(value, item, func(item string) string {
		return message.For(item).Prepare(message.IsNil)
	})
}

// NotNilWithMessage is NotNil with a caller supplied failure message.
func NotNilWithMessage[T any](value *T, item, msg string) (*T, error) {
	return notNil(value, item, Fixed(msg))
}

func notNil[T any](value *T, item string, msg func(string) string) (*T, error) {
	return Evaluator[*T]{
		Value:    value,
		Item:     item,
		Kind:     message.KindNotNil,
		Test:     func() bool { return value != nil },
		Message:  msg,
		NewError: gerrors.InvalidArgument,
	}.Evaluate()
}

type boundsError struct {
	item string
	msg  string
}

// checkBounds validates an inclusive [min, max] length range.
func checkBounds(min, max int) *boundsError {
	switch {
	case min < 0:
		return &boundsError{item: "min", msg: "minimum cannot be negative"}
	case max < min:
		return &boundsError{item: "max", msg: "maximum must not be less than minimum"}
	}
	return nil
}
