// Package metrics provides Prometheus instrumentation for goguard guards.
//
// # Overview
//
// A Registry counts guard evaluations and failures. It implements
// guard.Observer, so installing it once at start-up instruments every guard
// in the process:
//
//	registry := metrics.NewRegistry(prometheus.DefaultRegisterer)
//	guard.SetObserver(registry)
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	observer := metrics.NewRegistryWithConfig(metrics.Config{
//		Enabled:   true,
//		Registry:  registry,
//		Namespace: "myapp",
//		Labels:    prometheus.Labels{"service": "billing"},
//	})
//
// # Available Metrics
//
//   - goguard_guard_evaluations_total: Total number of guard evaluations
//   - goguard_guard_failures_total: Total number of failed guard evaluations
//
// # Labels
//
//   - guard: guard kind, e.g. "minimum", "in_range", "is_set", "size"
//   - reason: "out_of_range", "invalid_argument" or "misuse"
//
// # Configuration
//
// A disabled Config yields a Registry that registers nothing and ignores
// every observation, which keeps call sites unconditional:
//
//	observer := metrics.NewRegistryWithConfig(metrics.Config{Enabled: false})
//	guard.SetObserver(observer) // no-op
//
// To log failures as well, combine the registry with a slog observer through
// observe.Multi.
package metrics
