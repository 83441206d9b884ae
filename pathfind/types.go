package pathfind

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for searches and path reconstruction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pathfind: graph is nil")

	// ErrSourceNotFound is returned when an allocated id is not in the graph.
	ErrSourceNotFound = errors.New("pathfind: source node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")

	// ErrUnreachable is returned when no path from the allocated set reaches
	// the target within the search horizon.
	ErrUnreachable = errors.New("pathfind: target unreachable")

	// ErrTargetNotFound is returned when the target is not in the graph.
	ErrTargetNotFound = errors.New("pathfind: target node not found")
)

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks of one search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. If it returns an error the
	// search aborts and propagates it.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip steps by returning false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no filtering and
// a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visit.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the search horizon.
//
//	d > 0:  do not enqueue nodes deeper than d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
