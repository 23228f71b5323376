package guard

import (
	"cmp"

	"github.com/vnykmshr/goguard/pkg/common/compare"
	gerrors "github.com/vnykmshr/goguard/pkg/common/errors"
	"github.com/vnykmshr/goguard/pkg/message"
)

// Number is satisfied by the built-in integer and floating point types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Minimum returns value if it is not less than minimum. Floating point NaN
// orders before every number, as in cmp.Compare, so a NaN value fails.
func Minimum[T cmp.Ordered](value T, item string, minimum T) (T, error) {
	return MinimumFunc(value, item, minimum, compare.Ordered[T]())
}

// MinimumWithMessage is Minimum with a caller supplied failure message.
func MinimumWithMessage[T cmp.Ordered](value T, item string, minimum T, msg string) (T, error) {
	return atLeast(value, item, minimum, compare.Ordered[T](), Fixed(msg))
}

// MinimumFunc is Minimum for types ordered by order.
func MinimumFunc[T any](value T, item string, minimum T, order compare.Func[T]) (T, error) {
	return atLeast(value, item, minimum, order, func(item string) string {
		return message.For(item).WithActual(value).WithMinimum(minimum).Prepare(message.BelowMinimum)
	})
}

func atLeast[T any](value T, item string, minimum T, order compare.Func[T], msg func(string) string) (T, error) {
	return Evaluator[T]{
		Value:    value,
		Item:     item,
		Kind:     message.KindMinimum,
		Test:     func() bool { return !order.Less(value, minimum) },
		Message:  msg,
		NewError: gerrors.OutOfRange,
	}.Evaluate()
}

// Maximum returns value if it is not greater than maximum. Floating point
// NaN orders before every number, as in cmp.Compare, so a NaN value passes;
// use InRange to reject it.
func Maximum[T cmp.Ordered](value T, item string, maximum T) (T, error) {
	return MaximumFunc(value, item, maximum, compare.Ordered[T]())
}

// MaximumWithMessage is Maximum with a caller supplied failure message.
func MaximumWithMessage[T cmp.Ordered](value T, item string, maximum T, msg string) (T, error) {
	return atMost(value, item, maximum, compare.Ordered[T](), Fixed(msg))
}

// MaximumFunc is Maximum for types ordered by order.
func MaximumFunc[T any](value T, item string, maximum T, order compare.Func[T]) (T, error) {
	return atMost(value, item, maximum, order, func(item string) string {
		return message.For(item).WithActual(value).WithMaximum(maximum).Prepare(message.AboveMaximum)
	})
}

func atMost[T any](value T, item string, maximum T, order compare.Func[T], msg func(string) string) (T, error) {
	return Evaluator[T]{
		Value:    value,
		Item:     item,
		Kind:     message.KindMaximum,
		Test:     func() bool { return !order.Greater(value, maximum) },
		Message:  msg,
		NewError: gerrors.OutOfRange,
	}.Evaluate()
}

// InRange returns value if lower <= value <= upper. Calling it with
// lower > upper is a misuse error. A NaN value fails unless lower is NaN too.
func InRange[T cmp.Ordered](value T, item string, lower, upper T) (T, error) {
	return InRangeFunc(value, item, lower, upper, compare.Ordered[T]())
}

// InRangeWithMessage is InRange with a caller supplied failure message.
func InRangeWithMessage[T cmp.Ordered](value T, item string, lower, upper T, msg string) (T, error) {
	return inRange(value, item, lower, upper, compare.Ordered[T](), Fixed(msg))
}

// InRangeFunc is InRange for types ordered by order.
func InRangeFunc[T any](value T, item string, lower, upper T, order compare.Func[T]) (T, error) {
	return inRange(value, item, lower, upper, order, func(item string) string {
		return message.For(item).
			WithActual(value).
			WithMinimum(lower).
			WithMaximum(upper).
			Prepare(message.OutsideRange)
	})
}

func inRange[T any](value T, item string, lower, upper T, order compare.Func[T], msg func(string) string) (T, error) {
	if order.Greater(lower, upper) {
		return misuse[T](message.KindInRange, "upper", "upper bound must not be less than lower bound")
	}
	return Evaluator[T]{
		Value: value,
		Item:  item,
		Kind:  message.KindInRange,
		Test: func() bool {
			return !order.Less(value, lower) && !order.Greater(value, upper)
		},
		Message:  msg,
		NewError: gerrors.OutOfRange,
	}.Evaluate()
}

// Positive returns value if it is greater than zero.
func Positive[T Number](value T, item string) (T, error) {
	return positive(value, item, func(item string) string {
		return message.For(item).WithActual(value).Prepare(message.NotPositive)
	})
}

// PositiveWithMessage is Positive with a caller supplied failure message.
func PositiveWithMessage[T Number](value T, item, msg string) (T, error) {
	return positive(value, item, Fixed(msg))
}

func positive[T Number](value T, item string, msg func(string) string) (T, error) {
	return Evaluator[T]{
		Value:    value,
		Item:     item,
		Kind:     message.KindPositive,
		Test:     func() bool { return value > 0 },
		Message:  msg,
		NewError: gerrors.OutOfRange,
	}.Evaluate()
}

// NonNegative returns value if it is zero or greater. NaN fails.
func NonNegative[T Number](value T, item string) (T, error) {
	return nonNegative(value, item, func(item string) string {
		return message.For(item).WithActual(value).Prepare(message.Negative)
	})
}

// NonNegativeWithMessage is NonNegative with a caller supplied failure message.
func NonNegativeWithMessage[T Number](value T, item, msg string) (T, error) {
	return nonNegative(value, item, Fixed(msg))
}

func nonNegative[T Number](value T, item string, msg func(string) string) (T, error) {
	return Evaluator[T]{
		Value:    value,
		Item:     item,
		Kind:     message.KindNonNegative,
		Test:     func() bool { return value >= 0 },
		Message:  msg,
		NewError: gerrors.OutOfRange,
	}.Evaluate()
}
