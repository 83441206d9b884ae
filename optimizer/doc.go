// Package optimizer exposes the single core operation, Optimize, which turns
// an immutable tree.Graph and a build Config into a Result:
//
//	resolve class start → score (scoring) → allocate (allocator) → aggregate
//
// Fatal conditions return an error and no Result: ErrInvalidConfig,
// tree.ErrNoStartNode, ErrGraphNil and context cancellation. Everything else
// (skipped keystones, the iteration cap) is reported in Result.Warnings.
//
// Service wraps Optimize for repeated and batch use over one shared graph: it
// caches results in an LRU keyed by the normalised config, records Prometheus
// metrics through a Collector, tags each run with a uuid in its logs and runs
// batches concurrently with a bounded errgroup.
//
// Tracing: Optimize opens one span per run on the configured
// trace.TracerProvider (the otel global provider by default).
package optimizer
