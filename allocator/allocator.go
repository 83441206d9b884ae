package allocator

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/passivetree/pathfind"
	"github.com/katalvlaran/passivetree/scoring"
	"github.com/katalvlaran/passivetree/tree"
)

// Allocator is the per-run state machine. It is not safe for concurrent use;
// create one per run.
type Allocator struct {
	graph  *tree.Graph
	engine *scoring.Engine
	opts   Options
	log    *zap.Logger

	start     string
	budget    int
	spent     int
	allocated map[string]bool
	order     []string
	required  map[string]bool
	warnings  []Warning
	iters     int
	swaps     int
}

// New prepares a run from start with budget points. The start node is
// allocated immediately and for free.
func New(g *tree.Graph, engine *scoring.Engine, start string, budget int, opts ...Option) (*Allocator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if engine == nil {
		return nil, ErrEngineNil
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	a := &Allocator{
		graph:     g,
		engine:    engine,
		opts:      o,
		log:       o.Logger,
		start:     start,
		budget:    budget,
		allocated: make(map[string]bool, budget+1),
		required:  make(map[string]bool),
	}
	a.allocated[start] = true
	a.order = append(a.order, start)

	return a, nil
}

// Remaining returns the unspent budget.
func (a *Allocator) Remaining() int { return a.budget - a.spent }

// Allocated reports whether id is in the allocated set.
func (a *Allocator) Allocated(id string) bool { return a.allocated[id] }

// Run executes Seed, Expand and, when enabled, Refine.
func (a *Allocator) Run(ctx context.Context, required []string) (*Allocation, error) {
	if err := a.Seed(ctx, required); err != nil {
		return nil, err
	}
	if err := a.Expand(ctx); err != nil {
		return nil, err
	}
	if a.opts.Refinement > 0 {
		if err := a.Refine(ctx, a.opts.Refinement); err != nil {
			return nil, err
		}
	}

	return a.Allocation(), nil
}

// Allocation snapshots the current state.
func (a *Allocator) Allocation() *Allocation {
	return &Allocation{
		Start:      a.start,
		Nodes:      append([]string(nil), a.order...),
		Spent:      a.spent,
		Budget:     a.budget,
		Warnings:   append([]Warning(nil), a.warnings...),
		Iterations: a.iters,
		Swaps:      a.swaps,
	}
}

// Seed runs Phase A for the required keystones, in order. Duplicates and
// already allocated ids are ignored.
func (a *Allocator) Seed(ctx context.Context, required []string) error {
	for _, id := range required {
		if a.allocated[id] {
			a.required[id] = true
			continue
		}
		if !a.graph.HasNode(id) {
			a.warn(WarnKeystoneNotFound, id, "required keystone %q is not in the tree", id)
			continue
		}
		path, err := pathfind.Find(a.graph, a.order, id, a.searchOptions(ctx)...)
		switch {
		case errors.Is(err, pathfind.ErrUnreachable):
			a.warn(WarnKeystoneUnreachable, id, "required keystone %q is not connected to the start node", id)
			continue
		case err != nil:
			return fmt.Errorf("allocator: path to %q: %w", id, err)
		}
		if len(path) > a.Remaining() {
			a.warn(WarnKeystoneOverBudget, id,
				"required keystone %q needs %d points, %d remaining", id, len(path), a.Remaining())
			continue
		}
		a.required[id] = true
		a.take(path)
		a.log.Debug("required keystone allocated",
			zap.String("node", id), zap.Int("cost", len(path)), zap.Int("remaining", a.Remaining()))
	}

	return nil
}

// candidate is one Phase B option.
type candidate struct {
	id    string
	score scoring.Score
	cost  int
}

func (c candidate) efficiency() float64 { return c.score.Total / float64(c.cost) }

// better reports whether x outranks y.
func better(x, y candidate) bool {
	if d := x.score.Relevance - y.score.Relevance; d > RelevanceGap || d < -RelevanceGap {
		return d > 0
	}
	if ex, ey := x.efficiency(), y.efficiency(); ex != ey {
		return ex > ey
	}
	if x.score.Total != y.score.Total {
		return x.score.Total > y.score.Total
	}
	if x.cost != y.cost {
		return x.cost < y.cost
	}

	return x.id < y.id
}

// Expand runs Phase B until the budget is spent, no candidate survives, or
// the iteration cap is hit. The context is checked once per iteration.
func (a *Allocator) Expand(ctx context.Context) error {
	limit := IterationCapFactor * a.budget
	for a.Remaining() > 0 {
		if a.iters >= limit {
			a.warn(WarnIterationCap, "", "stopped after %d iterations", a.iters)
			break
		}
		a.iters++
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("allocator: %w", err)
		}

		res, err := pathfind.Search(a.graph, a.order,
			append(a.searchOptions(ctx), pathfind.WithMaxDepth(a.Remaining()))...)
		if err != nil {
			return fmt.Errorf("allocator: search: %w", err)
		}

		best, ok := a.pick(res)
		if !ok {
			a.log.Debug("no candidate left", zap.Int("remaining", a.Remaining()))
			break
		}
		path, err := res.PathTo(best.id)
		if err != nil {
			return fmt.Errorf("allocator: path to %q: %w", best.id, err)
		}
		a.take(path)
		a.log.Debug("node allocated",
			zap.String("node", best.id),
			zap.Int("cost", best.cost),
			zap.Float64("relevance", best.score.Relevance),
			zap.Float64("total", best.score.Total),
			zap.Int("remaining", a.Remaining()))
	}

	return nil
}

// pick rates every reached, unallocated, non-Travel node in id order.
func (a *Allocator) pick(res *pathfind.Result) (candidate, bool) {
	var (
		best  candidate
		found bool
	)
	for _, n := range a.graph.Nodes() {
		if n.Kind == tree.Travel || a.allocated[n.ID] {
			continue
		}
		cost, reached := res.Cost(n.ID)
		if !reached || cost < 1 || cost > a.Remaining() {
			continue
		}
		s := a.engine.Score(n)
		if s.Relevance < scoring.MinRelevance {
			continue
		}
		c := candidate{id: n.ID, score: s, cost: cost}
		if !found || better(c, best) {
			best, found = c, true
		}
	}

	return best, found
}

// Refine applies up to rounds leaf swaps; it stops early when no swap helps.
func (a *Allocator) Refine(ctx context.Context, rounds int) error {
	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("allocator: %w", err)
		}
		if !a.swapOnce() {
			break
		}
	}

	return nil
}

// swapOnce tries removable leaves from weakest to strongest and applies the
// first profitable swap.
func (a *Allocator) swapOnce() bool {
	for _, leaf := range a.leaves() {
		in, ok := a.replacement(leaf)
		if !ok {
			continue
		}
		a.drop(leaf.id)
		a.add(in.id)
		a.swaps++
		a.log.Debug("leaf swapped",
			zap.String("out", leaf.id), zap.Float64("out_total", leaf.score.Total),
			zap.String("in", in.id), zap.Float64("in_total", in.score.Total))

		return true
	}

	return false
}

// leaves returns removable leaves ordered by total ascending, then id.
// A leaf has exactly one allocated neighbour and is neither the start nor
// required.
func (a *Allocator) leaves() []candidate {
	var out []candidate
	for _, id := range a.order {
		if id == a.start || a.required[id] {
			continue
		}
		n, _ := a.graph.Node(id)
		links := 0
		for _, nbr := range n.Neighbors {
			if a.allocated[nbr] {
				links++
			}
		}
		if links != 1 {
			continue
		}
		out = append(out, candidate{id: id, score: a.engine.Score(n), cost: 1})
	}
	sortCandidates(out)

	return out
}

// replacement finds the strongest unallocated non-Travel node adjacent to the
// allocated set minus leaf that beats leaf by SwapMargin.
func (a *Allocator) replacement(leaf candidate) (candidate, bool) {
	var (
		best  candidate
		found bool
	)
	for _, n := range a.graph.Nodes() {
		if n.Kind == tree.Travel || a.allocated[n.ID] || n.ID == a.graph.Root() {
			continue
		}
		if !a.touches(n, leaf.id) {
			continue
		}
		s := a.engine.Score(n)
		if s.Relevance < scoring.MinRelevance || s.Total <= SwapMargin*leaf.score.Total {
			continue
		}
		if !found || s.Total > best.score.Total {
			best, found = candidate{id: n.ID, score: s, cost: 1}, true
		}
	}

	return best, found
}

// touches reports whether n has an allocated neighbour other than except.
func (a *Allocator) touches(n *tree.Node, except string) bool {
	for _, nbr := range n.Neighbors {
		if nbr != except && a.allocated[nbr] {
			return true
		}
	}

	return false
}

func (a *Allocator) searchOptions(ctx context.Context) []pathfind.Option {
	opts := []pathfind.Option{pathfind.WithContext(ctx)}
	if root := a.graph.Root(); root != "" && root != a.start {
		opts = append(opts, pathfind.WithFilterNeighbor(func(_, nbr string) bool { return nbr != root }))
	}

	return opts
}

// take allocates every id of path, one point each.
func (a *Allocator) take(path []string) {
	for _, id := range path {
		if !a.allocated[id] {
			a.add(id)
			a.spent++
		}
	}
}

func (a *Allocator) add(id string) {
	a.allocated[id] = true
	a.order = append(a.order, id)
}

func (a *Allocator) drop(id string) {
	delete(a.allocated, id)
	for i, v := range a.order {
		if v == id {
			a.order = append(a.order[:i], a.order[i+1:]...)

			break
		}
	}
}

func (a *Allocator) warn(kind WarningKind, id, format string, args ...any) {
	w := Warning{Kind: kind, NodeID: id, Message: fmt.Sprintf(format, args...)}
	a.warnings = append(a.warnings, w)
	a.log.Warn(w.Message, zap.String("kind", string(kind)), zap.String("node", id))
}

// sortCandidates orders by total ascending, then id.
func sortCandidates(cs []candidate) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].score.Total != cs[j].score.Total {
			return cs[i].score.Total < cs[j].score.Total
		}

		return cs[i].id < cs[j].id
	})
}
