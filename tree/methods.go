// File: methods.go
// Role: read-only queries over the immutable Graph.
//
// Determinism:
//   - IDs(), Nodes(), Keystones() and Node.Neighbors are sorted by id.
//
// Concurrency:
//   - The Graph is never mutated after Build; all methods are lock-free.
package tree

import "fmt"

// Len returns the number of nodes, stubs included.
func (g *Graph) Len() int { return len(g.ids) }

// Node returns the node with the given id, or nil and false.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// IDs returns all node ids sorted ascending. The slice is a copy.
func (g *Graph) IDs() []string {
	return append([]string(nil), g.ids...)
}

// Nodes returns all nodes in id order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.ids))
	for i, id := range g.ids {
		out[i] = g.nodes[id]
	}

	return out
}

// Neighbors returns the sorted neighbour ids of id.
// Returns ErrNodeNotFound for unknown ids. The slice is shared; do not modify.
func (g *Graph) Neighbors(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return n.Neighbors, nil
}

// Degree returns the number of distinct neighbours of id.
func (g *Graph) Degree(id string) (int, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}

	return len(nbrs), nil
}

// Root returns the designated root id, or "" when the tree has none.
func (g *Graph) Root() string { return g.root }

// Resolve maps ids back to the graph's node objects, in the given order.
// Returns ErrNodeNotFound on the first unknown id.
func (g *Graph) Resolve(ids []string) ([]*Node, error) {
	out := make([]*Node, 0, len(ids))
	for _, id := range ids {
		n, ok := g.nodes[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
		out = append(out, n)
	}

	return out, nil
}

// Keystones returns every keystone node in id order.
func (g *Graph) Keystones() []*Node {
	var out []*Node
	for _, id := range g.ids {
		if n := g.nodes[id]; n.Kind == Keystone {
			out = append(out, n)
		}
	}

	return out
}

// KeystoneGroup is the offense/defense/hybrid bucket used when listing keystones.
type KeystoneGroup string

// Keystone groups.
const (
	GroupOffense KeystoneGroup = "offense"
	GroupDefense KeystoneGroup = "defense"
	GroupHybrid  KeystoneGroup = "hybrid"
)

// GroupOf buckets a node by its base scores: offense when offense exceeds
// defense by more than 2, defense in the mirrored case, hybrid otherwise.
func GroupOf(n *Node) KeystoneGroup {
	switch {
	case n.Offense > n.Defense+2:
		return GroupOffense
	case n.Defense > n.Offense+2:
		return GroupDefense
	}

	return GroupHybrid
}
