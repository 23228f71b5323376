package testutil

import (
	"errors"
	"testing"

	gerrors "github.com/vnykmshr/goguard/pkg/common/errors"
)

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertEqual fails the test if got != want
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// AssertOutOfRange fails the test unless err is an out-of-range ArgumentError for item
func AssertOutOfRange(t *testing.T, err error, item string) {
	t.Helper()
	assertKind(t, err, gerrors.ErrOutOfRange, item)
}

// AssertInvalidArgument fails the test unless err is an invalid-argument ArgumentError for item
func AssertInvalidArgument(t *testing.T, err error, item string) {
	t.Helper()
	assertKind(t, err, gerrors.ErrInvalidArgument, item)
}

// AssertMisuse fails the test unless err reports a guard called with impossible bounds
func AssertMisuse(t *testing.T, err error) {
	t.Helper()
	AssertError(t, err)
	if !gerrors.IsMisuse(err) || !gerrors.IsInvalidArgument(err) {
		t.Fatalf("expected misuse error, got %v", err)
	}
}

// AssertPasses fails the test unless a guard returned want with no error
func AssertPasses[T comparable](t *testing.T, got T, err error, want T) {
	t.Helper()
	AssertNoError(t, err)
	AssertEqual(t, got, want)
}

func assertKind(t *testing.T, err, kind error, item string) {
	t.Helper()
	AssertError(t, err)

	var argErr *gerrors.ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *errors.ArgumentError, got %T: %v", err, err)
	}
	if !errors.Is(err, kind) {
		t.Fatalf("expected %v, got %v", kind, err)
	}
	if argErr.Item != item {
		t.Fatalf("item = %q, want %q", argErr.Item, item)
	}
	if argErr.Message == "" {
		t.Fatal("error message is empty")
	}
}
