package optimizer

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/passivetree/aggregate"
	"github.com/katalvlaran/passivetree/allocator"
	"github.com/katalvlaran/passivetree/tree"
)

// ErrInvariant indicates a Result that violates an allocation invariant.
var ErrInvariant = errors.New("optimizer: result invariant violated")

// AllocatedNode is one allocated node with its contribution.
type AllocatedNode = aggregate.Entry

// Warning is a non-fatal event of a run.
type Warning = allocator.Warning

// Result is the outcome of one Optimize call. Results may be shared by the
// Service cache; treat them as read-only.
type Result struct {
	// RunID identifies the run in logs; set by Service, empty otherwise.
	RunID string

	// Class is the normalised base class; StartNode its resolved start.
	Class     string
	StartNode string

	// AllocatedNodes are ordered keystones, notables, then the rest, each by
	// descending score.
	AllocatedNodes []AllocatedNode

	// TotalPoints is the number of points spent; the start node is free.
	TotalPoints int
	PointBudget int

	OffenseScore float64
	DefenseScore float64
	Efficiency   int
	StatSummary  map[string]float64
	Warnings     []Warning

	// Iterations and Swaps describe the allocator run.
	Iterations int
	Swaps      int
}

// IDs returns the allocated node ids in result order.
func (r *Result) IDs() []string {
	ids := make([]string, len(r.AllocatedNodes))
	for i, n := range r.AllocatedNodes {
		ids[i] = n.Node.ID
	}

	return ids
}

// Has reports whether id was allocated.
func (r *Result) Has(id string) bool {
	for _, n := range r.AllocatedNodes {
		if n.Node.ID == id {
			return true
		}
	}

	return false
}

// Validate checks the result against g: the allocation is one connected
// component containing the start node, spends at most the budget, and every
// node resolves to the graph's own node object.
func (r *Result) Validate(g *tree.Graph) error {
	ids := r.IDs()
	if !r.Has(r.StartNode) {
		return fmt.Errorf("%w: start node %q not allocated", ErrInvariant, r.StartNode)
	}
	if !g.Connected(ids) {
		return fmt.Errorf("%w: allocation is not connected", ErrInvariant)
	}
	if r.TotalPoints > r.PointBudget || r.TotalPoints != len(ids)-1 {
		return fmt.Errorf("%w: %d points for %d nodes with budget %d",
			ErrInvariant, r.TotalPoints, len(ids), r.PointBudget)
	}
	nodes, err := g.Resolve(ids)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvariant, err)
	}
	for i, n := range nodes {
		if n != r.AllocatedNodes[i].Node {
			return fmt.Errorf("%w: node %q is not the graph's node", ErrInvariant, n.ID)
		}
	}
	if r.Efficiency < 0 || r.Efficiency > 100 {
		return fmt.Errorf("%w: efficiency %d out of range", ErrInvariant, r.Efficiency)
	}

	return nil
}
