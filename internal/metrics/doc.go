// Package metrics records requests that reach the fallback handler.
//
// In a correctly configured deployment the platform's static routing
// intercepts every request before it hits this process, so the hit count
// should stay at zero. A non-zero count is direct evidence of a routing
// gap, and the per-path and per-method breakdown narrows down which
// static handler rule is missing.
//
// Events flow through a buffered channel into a dedicated collector
// goroutine; the request path only performs a non-blocking send. The
// collector drains the channel on shutdown so counted hits are not lost.
//
// Example usage:
//
//	collector := metrics.NewCollector(256, logger)
//	collector.Start(ctx)
//
//	// Emit an event while handling a request
//	collector.EventChannel() <- metrics.HitEvent{
//		Path:      "/missing/asset.css",
//		Method:    "GET",
//		Timestamp: time.Now(),
//	}
//
//	snapshot := collector.Snapshot()
package metrics
