// Package metrics groups metrics adapters.
//
// Implementations:
//   - prometheus: request counters and latency histograms exposed on /metrics
package metrics
