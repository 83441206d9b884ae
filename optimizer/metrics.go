package optimizer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run status label values.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
	StatusCached = "cached"
)

// Collector holds the Prometheus metrics of a Service. Each Collector owns its
// registry, so several may coexist in one process.
type Collector struct {
	registry *prometheus.Registry

	Runs        *prometheus.CounterVec
	RunDuration prometheus.Histogram
	PointsSpent prometheus.Histogram
	Warnings    *prometheus.CounterVec
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// NewCollector creates and registers the metrics under namespace.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of optimisation runs by status",
			},
			[]string{"status"},
		),
		RunDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of uncached optimisation runs",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
			},
		),
		PointsSpent: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "points_spent",
				Help:      "Points spent per successful run",
				Buckets:   prometheus.LinearBuckets(0, 20, 7),
			},
		),
		Warnings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "warnings_total",
				Help:      "Total number of run warnings by kind",
			},
			[]string{"kind"},
		),
		CacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_hits_total",
				Help:      "Total number of result cache hits",
			},
		),
		CacheMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_misses_total",
				Help:      "Total number of result cache misses",
			},
		),
	}
	c.registry.MustRegister(c.Runs, c.RunDuration, c.PointsSpent, c.Warnings, c.CacheHits, c.CacheMisses)

	return c
}

// Registry returns the registry holding the Collector's metrics.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

func (c *Collector) observeRun(res *Result, elapsed time.Duration, err error) {
	if c == nil {
		return
	}
	if err != nil {
		c.Runs.WithLabelValues(StatusFailed).Inc()

		return
	}
	c.Runs.WithLabelValues(StatusOK).Inc()
	c.RunDuration.Observe(elapsed.Seconds())
	c.PointsSpent.Observe(float64(res.TotalPoints))
	for _, w := range res.Warnings {
		c.Warnings.WithLabelValues(string(w.Kind)).Inc()
	}
}

func (c *Collector) observeCache(hit bool) {
	if c == nil {
		return
	}
	if hit {
		c.CacheHits.Inc()
		c.Runs.WithLabelValues(StatusCached).Inc()

		return
	}
	c.CacheMisses.Inc()
}
