package allocator

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for allocator construction and runs.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("allocator: graph is nil")

	// ErrEngineNil is returned if a nil scoring engine is passed.
	ErrEngineNil = errors.New("allocator: scoring engine is nil")

	// ErrStartNotFound is returned when the start node is not in the graph.
	ErrStartNotFound = errors.New("allocator: start node not found")

	// ErrNegativeBudget is returned for a point budget below zero.
	ErrNegativeBudget = errors.New("allocator: negative point budget")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("allocator: invalid option supplied")
)

// Ranking and loop constants.
const (
	// RelevanceGap is the relevance difference that decides a comparison
	// outright.
	RelevanceGap = 0.3

	// IterationCapFactor bounds Phase B at factor × budget iterations.
	IterationCapFactor = 10

	// SwapMargin is the factor by which a swap-in must beat the leaf it
	// replaces.
	SwapMargin = 1.1
)

// Option configures an Allocator.
type Option func(*Options)

// Options holds run parameters.
type Options struct {
	// Logger receives debug traces of every allocation and swap.
	Logger *zap.Logger

	// Refinement is the maximum number of leaf swaps after Phase B.
	Refinement int

	err error
}

// DefaultOptions returns a no-op logger and no refinement.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRefinement enables up to rounds leaf swaps after Phase B.
// Negative rounds → ErrOptionViolation.
func WithRefinement(rounds int) Option {
	return func(o *Options) {
		if rounds < 0 {
			o.err = fmt.Errorf("%w: refinement rounds cannot be negative (%d)", ErrOptionViolation, rounds)

			return
		}
		o.Refinement = rounds
	}
}
