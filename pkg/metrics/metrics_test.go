package metrics

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/vnykmshr/goguard/pkg/common/errors"
	"github.com/vnykmshr/goguard/pkg/guard"
	"github.com/vnykmshr/goguard/pkg/message"
)

func TestRegistry_CountsGuards(t *testing.T) {
	reg := prometheus.NewRegistry()
	registry := NewRegistry(reg)

	guard.SetObserver(registry)
	t.Cleanup(func() { guard.SetObserver(nil) })

	_, _ = guard.Minimum(5, "count", 1)
	_, _ = guard.Minimum(0, "count", 1)
	_, _ = guard.IsSet("", "name")
	_, _ = guard.RequiredLength("x", "code", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(registry.GuardEvaluations.WithLabelValues("minimum")))
	assert.Equal(t, 1.0, testutil.ToFloat64(registry.GuardFailures.WithLabelValues("minimum", "out_of_range")))
	assert.Equal(t, 1.0, testutil.ToFloat64(registry.GuardFailures.WithLabelValues("is_set", "invalid_argument")))
	assert.Equal(t, 1.0, testutil.ToFloat64(registry.GuardFailures.WithLabelValues("required_length", "misuse")))
}

func TestRegistry_ForeignError(t *testing.T) {
	registry := NewRegistry(prometheus.NewRegistry())
	registry.ObserveGuard(message.KindMinimum, "x", stderrors.New("custom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(registry.GuardFailures.WithLabelValues("minimum", "other")))
}

func TestNewRegistryWithConfig(t *testing.T) {
	reg := prometheus.NewRegistry()
	registry := NewRegistryWithConfig(Config{
		Enabled:   true,
		Registry:  reg,
		Namespace: "myapp",
		Labels:    prometheus.Labels{"service": "billing"},
	})
	require.True(t, registry.Enabled())

	registry.ObserveGuard(message.KindSize, "nick", gerrors.NewOutOfRange("nick", "too long"))

	expected := `
# HELP myapp_guard_failures_total Total number of failed guard evaluations
# TYPE myapp_guard_failures_total counter
myapp_guard_failures_total{guard="size",reason="out_of_range",service="billing"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "myapp_guard_failures_total")
	assert.NoError(t, err)
}

func TestNewRegistryWithConfig_Disabled(t *testing.T) {
	registry := NewRegistryWithConfig(Config{Enabled: false})

	assert.False(t, registry.Enabled())
	assert.Nil(t, registry.GuardEvaluations)
	assert.NotPanics(t, func() {
		registry.ObserveGuard(message.KindMinimum, "x", gerrors.NewOutOfRange("x", "y"))
	})
}

func TestNewRegistryWithConfig_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewRegistry(reg)
	assert.Panics(t, func() {
		NewRegistry(reg)
	})
}
