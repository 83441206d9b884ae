package optimizer

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Defaults for Service.
const (
	DefaultCacheSize = 256
	DefaultWorkers   = 4
)

// Option configures Optimize and Service.
type Option func(*Options)

// Options holds collaborators and knobs. Optimize reads Logger,
// TracerProvider and Refinement; Service additionally reads CacheSize,
// Workers and Collector.
type Options struct {
	Logger         *zap.Logger
	TracerProvider trace.TracerProvider
	Refinement     int
	CacheSize      int
	Workers        int
	Collector      *Collector

	err error
}

// DefaultOptions returns a no-op logger, the global tracer provider, no
// refinement, DefaultCacheSize, DefaultWorkers and no metrics.
func DefaultOptions() Options {
	return Options{
		Logger:         zap.NewNop(),
		TracerProvider: otel.GetTracerProvider(),
		CacheSize:      DefaultCacheSize,
		Workers:        DefaultWorkers,
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracerProvider sets the span source; nil is ignored.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}

// WithRefinement enables up to rounds leaf swaps after greedy expansion.
func WithRefinement(rounds int) Option {
	return func(o *Options) {
		if rounds < 0 {
			o.err = fmt.Errorf("%w: refinement rounds cannot be negative (%d)", ErrInvalidConfig, rounds)

			return
		}
		o.Refinement = rounds
	}
}

// WithCacheSize sets the Service LRU capacity; 0 disables caching.
func WithCacheSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: cache size cannot be negative (%d)", ErrInvalidConfig, n)

			return
		}
		o.CacheSize = n
	}
}

// WithWorkers bounds concurrent runs in Service.OptimizeAll.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrInvalidConfig, n)

			return
		}
		o.Workers = n
	}
}

// WithCollector records Service metrics on c.
func WithCollector(c *Collector) Option {
	return func(o *Options) { o.Collector = c }
}
