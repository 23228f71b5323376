/*
Package guard provides guard clauses: small checks that hand a value back
unchanged when a precondition holds and return a descriptive error when it
does not.

Basic usage:

	func NewServer(addr string, port, workers int) (*Server, error) {
		addr, err := guard.IsSet(addr, "addr")
		if err != nil {
			return nil, err
		}
		port, err = guard.InRange(port, "port", 1, 65535)
		if err != nil {
			return nil, err
		}
		...
	}

Every guard X has a companion XWithMessage that takes a ready-made failure
message instead of rendering one from the built-in templates.

Guards:

Ordering guards work on any cmp.Ordered type, and on any other type through
the Func variants and a compare.Func:

  - Minimum, Maximum, InRange (inclusive on both ends)
  - MinimumFunc, MaximumFunc, InRangeFunc
  - Positive, NonNegative for numbers

String guards count length in runes:

  - IsSet, IsSetPtr: non-empty after trimming whitespace
  - RequiredLength: exact length
  - Size: set and within an inclusive length range
  - MinLength, MaxLength

Collection and pointer guards:

  - NotNil, NotEmpty, Count, OneOf, Distinct

Format guards keep the parser error as the cause:

  - CronSpec, CronSpecSeconds, RedisURL, UUID

Errors:

Failures are *errors.ArgumentError values from pkg/common/errors and match
exactly one of errors.ErrOutOfRange (a bound was violated) or
errors.ErrInvalidArgument (the value is absent or malformed). A guard called
with impossible bounds, such as RequiredLength with a length of zero or
InRange with lower > upper, fails with an invalid argument that also matches
errors.ErrMisuse, before the value is looked at. On failure the returned
value is the zero value of its type.

Chaining:

First runs checks in order and stops at the first failure:

	err := guard.First(
		func() error { return guard.Err(guard.IsSet(name, "name")) },
		func() error { return guard.Err(guard.Size(code, "code", 2, 3)) },
	)

Must turns a failure into a panic for initialisation code:

	var limit = guard.Must(guard.Positive(envLimit(), "limit"))

Observing:

SetObserver installs a process-wide Observer that sees every evaluation.
pkg/metrics provides a Prometheus observer and pkg/observe a slog one.
Without an observer guards do no work beyond the check itself.
*/
package guard
