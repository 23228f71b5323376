// Package compare provides the ordering primitives used by range guards.
package compare

import "cmp"

// LessThan reports whether a orders before b.
func LessThan[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

// GreaterThan reports whether a orders after b.
func GreaterThan[T cmp.Ordered](a, b T) bool {
	return cmp.Less(b, a)
}

// Equal reports whether a and b hold the same position in the order,
// derived as neither less than nor greater than.
func Equal[T cmp.Ordered](a, b T) bool {
	return !LessThan(a, b) && !GreaterThan(a, b)
}

// Func is a three-way comparison: negative when a < b, zero when equal,
// positive when a > b.
type Func[T any] func(a, b T) int

// Less reports whether a orders before b.
func (f Func[T]) Less(a, b T) bool {
	return f(a, b) < 0
}

// Greater reports whether a orders after b.
func (f Func[T]) Greater(a, b T) bool {
	return f(a, b) > 0
}

// Equal reports whether a and b are neither less nor greater than each other.
func (f Func[T]) Equal(a, b T) bool {
	return !f.Less(a, b) && !f.Greater(a, b)
}

// Ordering is implemented by user types that know how to compare themselves,
// such as time.Time.
type Ordering[T any] interface {
	Compare(other T) int
}

// Natural returns the Func defined by T's own Compare method.
func Natural[T Ordering[T]]() Func[T] {
	return func(a, b T) int {
		return a.Compare(b)
	}
}

// Ordered returns the Func for a built-in ordered type.
func Ordered[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}
