// Package metrics provides Prometheus instrumentation for goguard guards.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	gerrors "github.com/vnykmshr/goguard/pkg/common/errors"
	"github.com/vnykmshr/goguard/pkg/message"
)

// Registry holds the guard metric instances. It implements guard.Observer.
type Registry struct {
	enabled bool

	// GuardEvaluations counts every evaluation, by guard kind.
	GuardEvaluations *prometheus.CounterVec

	// GuardFailures counts failed evaluations, by guard kind and reason.
	GuardFailures *prometheus.CounterVec
}

// NewRegistry creates a new metrics registry with the given Prometheus
// registerer and the default namespace.
func NewRegistry(reg prometheus.Registerer) *Registry {
	cfg := DefaultConfig()
	cfg.Registry = reg
	return NewRegistryWithConfig(cfg)
}

// NewRegistryWithConfig creates a metrics registry from cfg. When cfg is
// disabled nothing is registered and the registry ignores observations.
func NewRegistryWithConfig(cfg Config) *Registry {
	if !cfg.Enabled {
		return &Registry{}
	}

	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	namespace := cfg.Namespace
	if namespace == "" {
		namespace = "goguard"
	}
	factory := promauto.With(reg)

	return &Registry{
		enabled: true,

		GuardEvaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "guard",
				Name:        "evaluations_total",
				Help:        "Total number of guard evaluations",
				ConstLabels: cfg.Labels,
			},
			[]string{"guard"},
		),

		GuardFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "guard",
				Name:        "failures_total",
				Help:        "Total number of failed guard evaluations",
				ConstLabels: cfg.Labels,
			},
			[]string{"guard", "reason"},
		),
	}
}

// Enabled reports whether the registry records observations.
func (r *Registry) Enabled() bool {
	return r.enabled
}

// ObserveGuard records one evaluation.
func (r *Registry) ObserveGuard(kind message.Kind, _ string, err error) {
	if !r.enabled {
		return
	}

	r.GuardEvaluations.WithLabelValues(string(kind)).Inc()
	if err == nil {
		return
	}

	reason := gerrors.Reason(err)
	if reason == "" {
		reason = "other"
	}
	r.GuardFailures.WithLabelValues(string(kind), reason).Inc()
}
