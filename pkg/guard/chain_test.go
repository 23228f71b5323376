package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vnykmshr/goguard/internal/testutil"
)

func TestFirst_StopsAtFirstFailure(t *testing.T) {
	ran := []string{}
	step := func(name string, err error) func() error {
		return func() error {
			ran = append(ran, name)
			return err
		}
	}

	_, failure := Minimum(0, "count", 1)
	err := First(
		step("a", nil),
		step("b", failure),
		step("c", nil),
	)

	assert.Equal(t, failure, err)
	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestFirst_AllPass(t *testing.T) {
	name, code := "svc", "ab"
	err := First(
		func() error { return Err(IsSet(name, "name")) },
		func() error { return Err(Size(code, "code", 2, 3)) },
	)
	assert.NoError(t, err)
	assert.NoError(t, First())
}

func TestFirst_ReportsFailingGuard(t *testing.T) {
	err := First(
		func() error { return Err(IsSet("svc", "name")) },
		func() error { return Err(Size("a", "code", 2, 3)) },
		func() error { return Err(IsSet("", "owner")) },
	)
	testutil.AssertOutOfRange(t, err, "code")
}

func TestMust(t *testing.T) {
	assert.Equal(t, 5, Must(Positive(5, "n")))
	assert.Panics(t, func() {
		Must(Positive(0, "n"))
	})
}
