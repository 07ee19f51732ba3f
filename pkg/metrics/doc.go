// Package metrics exposes Prometheus counters and histograms for a
// generation run: node evaluation counts, pathfind query latency, and
// placement retry counts. It is safe to leave unwired; a nil *Metrics
// records nothing.
package metrics
