// SPDX-License-Identifier: MIT

package treegen

import (
	"fmt"

	"github.com/katalvlaran/passivetree/tree"
)

// Constructor applies one deterministic mutation to the draft definition.
type Constructor func(d *Draft, cfg genConfig) error

// Draft is a tree.Definition under construction with an id index, so
// constructors can add nodes idempotently and link existing ones.
type Draft struct {
	def   tree.Definition
	index map[string]int
}

// Generate resolves opts and applies cons in order, returning the assembled
// definition. Constructor errors are wrapped with "Generate: %w".
func Generate(opts []Option, cons ...Constructor) (*tree.Definition, error) {
	cfg := newConfig(opts...)
	d := &Draft{index: make(map[string]int)}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Generate: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
	}

	return &d.def, nil
}

// MustGenerate is Generate for fixtures known to be valid; it panics on error.
func MustGenerate(opts []Option, cons ...Constructor) *tree.Definition {
	def, err := Generate(opts, cons...)
	if err != nil {
		panic(err)
	}

	return def
}

// Has reports whether id was generated.
func (d *Draft) Has(id string) bool {
	_, ok := d.index[id]

	return ok
}

// node returns the entry for id, creating an empty one when absent.
func (d *Draft) node(id string) *tree.NodeDef {
	if i, ok := d.index[id]; ok {
		return &d.def.Nodes[i]
	}
	d.index[id] = len(d.def.Nodes)
	d.def.Nodes = append(d.def.Nodes, tree.NodeDef{ID: id})

	return &d.def.Nodes[len(d.def.Nodes)-1]
}

// add creates the topology node at index idx, filling stats from cfg.statFn.
func (d *Draft) add(idx int, cfg genConfig) string {
	id := cfg.idFn(idx)
	if d.Has(id) {
		return id
	}
	nd := d.node(id)
	if cfg.statFn != nil {
		nd.Stats = cfg.statFn(idx, cfg.rng)
	}

	return id
}

// link declares v on u once; tree.Build makes it symmetric.
func (d *Draft) link(u, v string) {
	nd := d.node(u)
	for _, e := range nd.Edges {
		if e == v {
			return
		}
	}
	nd.Edges = append(nd.Edges, v)
}
