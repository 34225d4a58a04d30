// Package metrics exposes Prometheus counters for offer synchronization and
// wish notifications, and the Fiber handler serving them on /metrics.
package metrics
