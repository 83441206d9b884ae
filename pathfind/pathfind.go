package pathfind

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/passivetree/tree"
)

// Result holds the outcome of a multi-source search.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string

	graph *tree.Graph
}

type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable search state.
type walker struct {
	graph *tree.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// Search runs a breadth-first search seeded from every id in allocated.
// Duplicate ids are ignored. An empty allocated set yields an empty Result
// in which every target is unreachable.
func Search(g *tree.Graph, allocated []string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	sources := append([]string(nil), allocated...)
	sort.Strings(sources)
	for _, id := range sources {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, id)
		}
	}

	n := g.Len()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
			graph:  g,
		},
	}
	for _, id := range sources {
		if _, seen := w.res.Depth[id]; !seen {
			w.enqueue(id, 0, "")
		}
	}

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("pathfind: OnVisit error at %q: %w", item.id, err)
		}
		w.expand(item)
	}

	return nil
}

func (w *walker) expand(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	n, _ := w.graph.Node(item.id)
	for _, nbr := range n.Neighbors {
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.id)
	}
}

// Reached reports whether the search touched id.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]

	return ok
}

// Cost returns the number of new nodes needed to reach id.
func (r *Result) Cost(id string) (int, bool) {
	d, ok := r.Depth[id]

	return d, ok
}

// PathTo returns the newly required ids from the frontier outward, target
// last. An allocated target yields an empty, non-nil path.
func (r *Result) PathTo(target string) ([]string, error) {
	if r.graph != nil && !r.graph.HasNode(target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, target)
	}
	d, ok := r.Depth[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, target)
	}

	path := make([]string, d)
	cur := target
	for i := d - 1; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}

// Find runs one search and returns the path to target.
func Find(g *tree.Graph, allocated []string, target string, opts ...Option) ([]string, error) {
	if g != nil && !g.HasNode(target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, target)
	}
	res, err := Search(g, allocated, opts...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(target)
}
