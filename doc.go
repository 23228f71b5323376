/*
Package goguard provides guard clauses for Go: small checks that return a
value unchanged when a precondition holds and a descriptive error when it
does not.

Guards (pkg/guard):
  - ordering: Minimum, Maximum, InRange, Positive, NonNegative
  - strings: IsSet, RequiredLength, Size, MinLength, MaxLength
  - collections and pointers: NotNil, NotEmpty, Count, OneOf, Distinct
  - formats: CronSpec, RedisURL, UUID

Supporting packages:
  - pkg/common/errors: OutOfRange / InvalidArgument error taxonomy
  - pkg/common/compare: comparators for ordered and user types
  - pkg/message: message templates and YAML catalogs
  - pkg/metrics: Prometheus observer
  - pkg/observe: slog observer

Example usage:

	import "github.com/vnykmshr/goguard/pkg/guard"

	func NewPool(size int, name string) (*Pool, error) {
		size, err := guard.InRange(size, "size", 1, 256)
		if err != nil {
			return nil, err
		}
		name, err = guard.Size(name, "name", 3, 32)
		if err != nil {
			return nil, err
		}
		return &Pool{size: size, name: name}, nil
	}
*/
package goguard
