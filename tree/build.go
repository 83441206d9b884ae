package tree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/passivetree/statline"
)

// Notable inference thresholds for nodes not explicitly flagged.
const (
	NotableMinValue = 20.0 // largest numeric token in the stats
	NotableMinStats = 4    // number of stat lines
)

// Build ingests def into an immutable Graph.
//
// Implementation:
//   - Stage 1: validate the node table (ErrGraphParse on empty table, empty or
//     duplicate ids).
//   - Stage 2: materialise nodes: classify, derive scores and tags.
//   - Stage 3: union every declared edge symmetrically; dangling references
//     become zero-value Travel stubs.
//   - Stage 4: sort adjacency, resolve class starts.
//
// Complexity:
//   - Time O(V log V + E log E), Space O(V + E).
func Build(def *Definition, opts ...Option) (*Graph, error) {
	if def == nil || len(def.Nodes) == 0 {
		return nil, fmt.Errorf("%w: empty node table", ErrGraphParse)
	}
	o := buildOptions{scorer: statline.Score}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph{nodes: make(map[string]*Node, len(def.Nodes))}
	for i := range def.Nodes {
		nd := &def.Nodes[i]
		id := strings.TrimSpace(nd.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: node #%d has an empty id", ErrGraphParse, i)
		}
		if _, dup := g.nodes[id]; dup {
			return nil, fmt.Errorf("%w: duplicate node id %q", ErrGraphParse, id)
		}
		g.nodes[id] = newNode(id, nd, o.scorer)
	}

	adj := make(map[string]map[string]struct{}, len(g.nodes))
	link := func(a, b string) {
		if adj[a] == nil {
			adj[a] = make(map[string]struct{})
		}
		adj[a][b] = struct{}{}
	}
	for i := range def.Nodes {
		from := strings.TrimSpace(def.Nodes[i].ID)
		for _, raw := range def.Nodes[i].Edges {
			to := strings.TrimSpace(raw)
			if to == "" || to == from {
				continue
			}
			if _, ok := g.nodes[to]; !ok {
				g.nodes[to] = &Node{ID: to, Kind: Travel, Stub: true}
			}
			link(from, to)
			link(to, from)
		}
	}

	g.ids = make([]string, 0, len(g.nodes))
	for id, n := range g.nodes {
		g.ids = append(g.ids, id)
		n.Neighbors = sortedSet(adj[id])
	}
	sort.Strings(g.ids)

	if root := strings.TrimSpace(def.Root); root != "" {
		g.root = root
	} else if _, ok := g.nodes["root"]; ok {
		g.root = "root"
	}
	if g.root != "" {
		g.rootEdges = rootEdges(def, g.root)
	}
	g.resolveStarts()

	return g, nil
}

// newNode classifies a single definition entry.
func newNode(id string, nd *NodeDef, scorer StatScorer) *Node {
	stats := make([]string, 0, len(nd.Stats))
	for _, s := range nd.Stats {
		if s = strings.TrimSpace(s); s != "" {
			stats = append(stats, s)
		}
	}

	scores := scorer(stats)
	if nd.Offense != nil {
		scores.Offense = *nd.Offense
	}
	if nd.Defense != nil {
		scores.Defense = *nd.Defense
	}

	attrs := nd.Attributes
	if attrs.IsZero() {
		attrs = statline.ParseAttributes(stats)
	}

	startFor := make([]string, 0, len(nd.StartFor))
	for _, c := range nd.StartFor {
		if c = ClassFor(c); c != "" {
			startFor = append(startFor, c)
		}
	}

	return &Node{
		ID:         id,
		Name:       strings.TrimSpace(nd.Name),
		Kind:       Classify(nd.Keystone, nd.Notable, stats, attrs, scores),
		Stats:      stats,
		Tags:       mergeTags(ExtractTags(stats, nd.Icon), nd.Tags),
		Offense:    scores.Offense,
		Defense:    scores.Defense,
		Attributes: attrs,
		StartFor:   NormalizeTags(startFor),
	}
}

// Classify assigns a power tier: Keystone if flagged; Notable if flagged or
// inferred (largest number ≥ NotableMinValue or ≥ NotableMinStats lines);
// Small if it carries any stat, attribute or non-zero score; Travel otherwise.
func Classify(keystone, notable bool, stats []string, attrs Attributes, scores statline.Scores) Kind {
	switch {
	case keystone:
		return Keystone
	case notable:
		return Notable
	}
	if len(stats) >= NotableMinStats {
		return Notable
	}
	if top, ok := statline.MaxNumber(stats); ok && top >= NotableMinValue {
		return Notable
	}
	if len(stats) > 0 || !attrs.IsZero() || scores.Offense != 0 || scores.Defense != 0 {
		return Small
	}

	return Travel
}

// rootEdges returns the root's edges in declaration order, de-duplicated.
func rootEdges(def *Definition, root string) []string {
	var out []string
	seen := make(map[string]struct{})
	for i := range def.Nodes {
		if strings.TrimSpace(def.Nodes[i].ID) != root {
			continue
		}
		for _, e := range def.Nodes[i].Edges {
			e = strings.TrimSpace(e)
			if e == "" || e == root {
				continue
			}
			if _, dup := seen[e]; !dup {
				seen[e] = struct{}{}
				out = append(out, e)
			}
		}
	}

	return out
}
