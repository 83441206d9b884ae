package tree

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// ClassOrder is the fixed class ordering used to map a root node's ordered
// edges, and the degree ranking, onto classes.
var ClassOrder = []string{"warrior", "marauder", "ranger", "mercenary", "sorceress", "witch", "monk"}

// Ascendancies maps normalised ascendancy names to their base class.
var Ascendancies = map[string]string{
	"titan":              "warrior",
	"warbringer":         "warrior",
	"bloodmage":          "marauder",
	"infernalist":        "marauder",
	"deadeye":            "ranger",
	"pathfinder":         "ranger",
	"witchhunter":        "mercenary",
	"gemlinglegionnaire": "mercenary",
	"chronomancer":       "sorceress",
	"stormweaver":        "sorceress",
	"acolyte":            "witch",
	"acolyteofchayula":   "witch",
	"invoker":            "witch",
	"chayuladisciple":    "monk",
	"discipleofchayula":  "monk",
	"invokermonk":        "monk",
	"invokerofstorms":    "monk",
}

// StartSource records which resolution rule produced a class start.
type StartSource uint8

// Resolution rules in priority order.
const (
	StartExplicit StartSource = iota // per-node "starts these classes" marker
	StartRoot                        // root node's ordered edges
	StartDegree                      // highest-degree fallback
)

func (s StartSource) String() string {
	switch s {
	case StartExplicit:
		return "explicit"
	case StartRoot:
		return "root"
	case StartDegree:
		return "degree"
	}

	return fmt.Sprintf("source(%d)", uint8(s))
}

// Start is a resolved class starting position.
type Start struct {
	Class  string
	NodeID string
	Source StartSource
}

// NormalizeClass lower-cases name and drops everything but letters and
// digits, so "Blood Mage" and "bloodmage" compare equal.
func NormalizeClass(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ClassFor resolves a class or ascendancy name to its normalised base class.
// Unknown names are returned normalised, since explicit start markers may
// introduce classes outside ClassOrder.
func ClassFor(name string) string {
	n := NormalizeClass(name)
	if base, ok := Ascendancies[n]; ok {
		return base
	}

	return n
}

// StartNode resolves the start node for a class or ascendancy name.
// Returns ErrNoStartNode when no rule produced a start for the class.
func (g *Graph) StartNode(class string) (Start, error) {
	c := ClassFor(class)
	if c == "" {
		return Start{}, fmt.Errorf("%w: empty class name", ErrNoStartNode)
	}
	s, ok := g.starts[c]
	if !ok {
		return Start{}, fmt.Errorf("%w: %q", ErrNoStartNode, class)
	}

	return s, nil
}

// Starts returns every resolved class start sorted by class name.
func (g *Graph) Starts() []Start {
	out := make([]Start, 0, len(g.starts))
	for _, s := range g.starts {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Class < out[j].Class })

	return out
}

// resolveStarts applies the resolution chain. Explicit markers come first;
// the root's ordered edges then fill classes still open, skipping nodes
// another class already starts on. The degree ranking is used only when
// neither rule resolved any start, so a tree that marks some classes reports
// ErrNoStartNode for the others.
func (g *Graph) resolveStarts() {
	g.starts = make(map[string]Start)
	claimed := make(map[string]bool)
	set := func(c, id string, src StartSource) {
		g.starts[c] = Start{Class: c, NodeID: id, Source: src}
		claimed[id] = true
	}

	// 1. explicit markers; ids are iterated sorted so the lowest id wins.
	for _, id := range g.ids {
		for _, c := range g.nodes[id].StartFor {
			if _, taken := g.starts[c]; !taken {
				set(c, id, StartExplicit)
			}
		}
	}

	// 2. root node's ordered edges.
	for i, id := range g.rootEdges {
		if i >= len(ClassOrder) {
			break
		}
		c := ClassOrder[i]
		if _, taken := g.starts[c]; !taken && !claimed[id] {
			set(c, id, StartRoot)
		}
	}
	if len(g.starts) > 0 {
		return
	}

	// 3. degree ranking.
	ranked := g.rankByDegree()
	for i, c := range ClassOrder {
		if i >= len(ranked) {
			break
		}
		set(c, ranked[i], StartDegree)
	}
}

// rankByDegree orders non-stub node ids by degree descending, id ascending.
func (g *Graph) rankByDegree() []string {
	ranked := make([]string, 0, len(g.ids))
	for _, id := range g.ids {
		if !g.nodes[id].Stub && id != g.root {
			ranked = append(ranked, id)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(g.nodes[ranked[i]].Neighbors) > len(g.nodes[ranked[j]].Neighbors)
	})

	return ranked
}
