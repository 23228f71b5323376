package guard

import (
	"github.com/samber/lo"

	gerrors "github.com/vnykmshr/goguard/pkg/common/errors"
	"github.com/vnykmshr/goguard/pkg/message"
)

// NotEmpty returns value if it holds at least one element.
func NotEmpty[S ~[]E, E any](value S, item string) (S, error) {
	return notEmpty(value, item, func(item string) string {
		return message.For(item).Prepare(message.Empty)
	})
}

// NotEmptyWithMessage is NotEmpty with a caller supplied failure message.
func NotEmptyWithMessage[S ~[]E, E any](value S, item, msg string) (S, error) {
	return notEmpty(value, item, Fixed(msg))
}

func notEmpty[S ~[]E, E any](value S, item string, msg func(string) string) (S, error) {
	return Evaluator[S]{
		Value:    value,
		Item:     item,
		Kind:     message.KindNotEmpty,
		Test:     func() bool { return len(value) > 0 },
		Message:  msg,
		NewError: gerrors.InvalidArgument,
	}.Evaluate()
}

// Count returns value if it holds between min and max elements inclusive.
func Count[S ~[]E, E any](value S, item string, min, max int) (S, error) {
	return count(value, item, min, max, func(item string) string {
		return message.For(item).
			WithActual(len(value)).
			WithMinimum(min).
			WithMaximum(max).
			Prepare(message.WrongCount)
	})
}

// CountWithMessage is Count with a caller supplied failure message.
func CountWithMessage[S ~[]E, E any](value S, item string, min, max int, msg string) (S, error) {
	return count(value, item, min, max, Fixed(msg))
}

func count[S ~[]E, E any](value S, item string, min, max int, msg func(string) string) (S, error) {
	if err := checkBounds(min, max); err != nil {
		return misuse[S](message.KindCount, err.item, err.msg)
	}
	return Evaluator[S]{
		Value:    value,
		Item:     item,
		Kind:     message.KindCount,
		Test:     func() bool { return len(value) >= min && len(value) <= max },
		Message:  msg,
		NewError: gerrors.OutOfRange,
	}.Evaluate()
}

// OneOf returns value if it equals one of allowed. An empty allowed list is
// a misuse error.
func OneOf[T comparable](value T, item string, allowed ...T) (T, error) {
	return oneOf(value, item, allowed, func(item string) string {
		return message.For(item).WithActual(value).WithAllowed(allowed).Prepare(message.NotAllowed)
	})
}

// OneOfWithMessage is OneOf with a caller supplied failure message.
func OneOfWithMessage[T comparable](value T, item, msg string, allowed ...T) (T, error) {
	return oneOf(value, item, allowed, Fixed(msg))
}

func oneOf[T comparable](value T, item string, allowed []T, msg func(string) string) (T, error) {
	if len(allowed) == 0 {
		return misuse[T](message.KindOneOf, "allowed", "allowed values cannot be empty")
	}
	return Evaluator[T]{
		Value:    value,
		Item:     item,
		Kind:     message.KindOneOf,
		Test:     func() bool { return lo.Contains(allowed, value) },
		Message:  msg,
		NewError: gerrors.InvalidArgument,
	}.Evaluate()
}

// Distinct returns value if no element appears more than once.
func Distinct[S ~[]E, E comparable](value S, item string) (S, error) {
	return distinct(value, item, func(item string) string {
		return message.For(item).WithActual(lo.FindDuplicates(value)).Prepare(message.Duplicated)
	})
}

// DistinctWithMessage is Distinct with a caller supplied failure message.
func DistinctWithMessage[S ~[]E, E comparable](value S, item, msg string) (S, error) {
	return distinct(value, item, Fixed(msg))
}

func distinct[S ~[]E, E comparable](value S, item string, msg func(string) string) (S, error) {
	return Evaluator[S]{
		Value:    value,
		Item:     item,
		Kind:     message.KindDistinct,
		Test:     func() bool { return len(lo.Uniq(value)) == len(value) },
		Message:  msg,
		NewError: gerrors.InvalidArgument,
	}.Evaluate()
}
