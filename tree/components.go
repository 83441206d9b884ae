package tree

import "sort"

// Components partitions the graph into connected components.
// Each component is sorted by id; components are ordered by their smallest id.
//
// Time:   O(V + E).
// Memory: O(V) for the seen set and the explicit stack.
func (g *Graph) Components() [][]string {
	seen := make(map[string]bool, len(g.ids))
	var comps [][]string
	for _, id := range g.ids {
		if seen[id] {
			continue
		}
		comps = append(comps, g.collect(id, seen, nil))
	}

	return comps
}

// Connected reports whether ids induce a single connected subgraph, i.e. every
// id is reachable from the first through nodes of the set only. An empty set
// is trivially connected; unknown ids make the set disconnected.
func (g *Graph) Connected(ids []string) bool {
	if len(ids) == 0 {
		return true
	}
	within := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !g.HasNode(id) {
			return false
		}
		within[id] = true
	}
	reached := g.collect(ids[0], make(map[string]bool, len(ids)), within)

	return len(reached) == len(within)
}

// collect runs an iterative DFS from start, marking seen, optionally confined
// to the within set, and returns the sorted component.
func (g *Graph) collect(start string, seen map[string]bool, within map[string]bool) []string {
	stack := []string{start}
	seen[start] = true
	var comp []string
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		comp = append(comp, u)
		for _, v := range g.nodes[u].Neighbors {
			if seen[v] || (within != nil && !within[v]) {
				continue
			}
			seen[v] = true
			stack = append(stack, v)
		}
	}
	sort.Strings(comp)

	return comp
}
