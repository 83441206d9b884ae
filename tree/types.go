package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/passivetree/statline"
)

// Sentinel errors for tree ingestion and queries.
var (
	// ErrGraphParse indicates a missing, empty or malformed node table.
	ErrGraphParse = errors.New("tree: malformed tree definition")

	// ErrNoStartNode indicates class start resolution failed for a class.
	ErrNoStartNode = errors.New("tree: no start node for class")

	// ErrNodeNotFound indicates a query referenced an unknown node id.
	ErrNodeNotFound = errors.New("tree: node not found")
)

// Kind is the power tier of a node.
type Kind uint8

// Node kinds in descending power order.
const (
	Keystone Kind = iota
	Notable
	Small
	Travel
)

var kindNames = [...]string{"keystone", "notable", "small", "travel"}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText encodes the kind as its name.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("tree: unknown kind %d", uint8(k))
	}

	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind name (case-insensitive).
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// ParseKind parses a kind name such as "Keystone" or "notable".
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if s == name {
			return Kind(i), nil
		}
	}

	return Travel, fmt.Errorf("tree: unknown kind %q", s)
}

// Attributes is a flat strength/dexterity/intelligence bonus.
type Attributes = statline.Attributes

// Node is one point of the passive graph.
//
// Nodes are created by Build and never mutated afterwards; every slice is
// owned by the Graph and must be treated as read-only.
type Node struct {
	// ID is the stable unique key of the node.
	ID string `json:"id"`

	// Name is the display name; empty for synthetic stubs.
	Name string `json:"name"`

	// Kind is the classified power tier.
	Kind Kind `json:"kind"`

	// Stats are the raw effect lines in declaration order.
	Stats []string `json:"stats"`

	// Tags is the sorted set of semantic labels.
	Tags []string `json:"tags"`

	// Offense and Defense are the base scores derived at ingestion.
	Offense float64 `json:"offense"`
	Defense float64 `json:"defense"`

	// Attributes are flat attribute bonuses granted by the node.
	Attributes Attributes `json:"attributes"`

	// Neighbors is the sorted set of adjacent node ids.
	Neighbors []string `json:"-"`

	// StartFor lists normalised class names that start on this node.
	StartFor []string `json:"startFor,omitempty"`

	// Stub marks nodes synthesised for dangling edge references.
	Stub bool `json:"stub,omitempty"`
}

// HasTag reports whether the node carries tag.
func (n *Node) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}

	return false
}

// Definition is the canonical, normalised tree schema consumed by Build.
// Legacy source formats are converted into it by the treedata adapters.
type Definition struct {
	// Nodes is the node table; ids must be unique and non-empty.
	Nodes []NodeDef `json:"nodes"`

	// Root optionally designates the node whose ordered edges map to
	// ClassOrder during start resolution.
	Root string `json:"root,omitempty"`
}

// NodeDef is one raw node entry of a Definition.
type NodeDef struct {
	ID       string   `json:"id"`
	Name     string   `json:"name,omitempty"`
	Keystone bool     `json:"keystone,omitempty"`
	Notable  bool     `json:"notable,omitempty"`
	Stats    []string `json:"stats,omitempty"`
	Tags     []string `json:"tags,omitempty"`

	// Icon is an icon path or category hint used for tag extraction.
	Icon string `json:"icon,omitempty"`

	// Edges lists adjacent ids in declaration order; direction is ignored.
	Edges []string `json:"edges,omitempty"`

	// StartFor lists class names starting on this node.
	StartFor []string `json:"startFor,omitempty"`

	// Attributes overrides the attribute bonuses parsed from Stats.
	Attributes Attributes `json:"attributes,omitempty"`

	// Offense and Defense override the stat heuristic when set.
	Offense *float64 `json:"offense,omitempty"`
	Defense *float64 `json:"defense,omitempty"`
}

// StatScorer derives base offense/defense scores from stat lines.
type StatScorer func(stats []string) statline.Scores

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	scorer StatScorer
}

// WithStatScorer replaces the default text heuristic (statline.Score).
// A nil scorer is ignored.
func WithStatScorer(fn StatScorer) Option {
	return func(o *buildOptions) {
		if fn != nil {
			o.scorer = fn
		}
	}
}

// Graph is the immutable passive tree.
//
// A Graph is fully built by Build and never mutated afterwards, so it is safe
// to share between goroutines and between optimisation runs without locking.
type Graph struct {
	nodes     map[string]*Node
	ids       []string         // sorted node ids
	root      string           // designated root, "" if none
	rootEdges []string         // root's edges in declaration order
	starts    map[string]Start // normalised class -> resolved start
}
