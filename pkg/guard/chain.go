package guard

// First runs checks left to right and returns the first error. Later checks
// are not run once one fails.
func First(checks ...func() error) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// Err drops the value of a guard result, keeping the error.
//
//	err := guard.Err(guard.Minimum(n, "n", 1))
func Err[T any](_ T, err error) error {
	return err
}

// Must returns v, or panics with err. Use it where a failed guard is a
// programming fault, such as package initialisation.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
