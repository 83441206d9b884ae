// SPDX-License-Identifier: MIT

package treegen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/passivetree/tree"
)

const (
	methodNode    = "Node"
	methodEdge    = "Edge"
	methodStartAt = "StartAt"
)

// Node adds or overwrites the payload of id. The id and existing edges of nd
// are kept; the remaining fields of nd replace the current entry.
func Node(nd tree.NodeDef) Constructor {
	return func(d *Draft, _ genConfig) error {
		if nd.ID == "" {
			return fmt.Errorf("%s: empty id: %w", methodNode, ErrConstructFailed)
		}
		cur := d.node(nd.ID)
		edges := append(cur.Edges, nd.Edges...)
		*cur = nd
		cur.Edges = edges

		return nil
	}
}

// Edge links two existing nodes.
func Edge(u, v string) Constructor {
	return func(d *Draft, _ genConfig) error {
		for _, id := range []string{u, v} {
			if !d.Has(id) {
				return fmt.Errorf("%s: %q: %w", methodEdge, id, ErrUnknownNode)
			}
		}
		d.link(u, v)

		return nil
	}
}

// StartAt marks an existing node as the start of the given classes.
func StartAt(id string, classes ...string) Constructor {
	return func(d *Draft, _ genConfig) error {
		if !d.Has(id) {
			return fmt.Errorf("%s: %q: %w", methodStartAt, id, ErrUnknownNode)
		}
		nd := d.node(id)
		nd.StartFor = append(nd.StartFor, classes...)

		return nil
	}
}

// Root designates id as the definition root.
func Root(id string) Constructor {
	return func(d *Draft, _ genConfig) error {
		d.def.Root = id

		return nil
	}
}

// StatPool is the stat vocabulary drawn by RandomStats.
var StatPool = []string{
	"%d%% increased Damage",
	"%d%% increased Spell Damage",
	"%d%% increased Attack Speed",
	"%d%% increased Fire Damage",
	"%d%% increased Cold Damage",
	"%d%% increased Lightning Damage",
	"%d%% increased Physical Damage with Sword Attacks",
	"%d%% increased Projectile Damage with Bows",
	"%d%% increased Critical Strike Chance",
	"Minions deal %d%% increased Damage",
	"+%d to maximum Life",
	"%d%% increased Armour",
	"%d%% increased Evasion Rating",
	"+%d to maximum Energy Shield",
	"+%d%% to Fire Resistance",
	"+%d to Strength",
	"+%d to Intelligence",
}

// RandomStats returns a StatFn drawing one to maxLines lines from StatPool
// with magnitudes in [1, maxValue]. With a nil rng it yields no stats.
func RandomStats(maxLines, maxValue int) StatFn {
	if maxLines < 1 || maxValue < 1 {
		panic("treegen: RandomStats needs maxLines ≥ 1 and maxValue ≥ 1")
	}

	return func(_ int, rng *rand.Rand) []string {
		if rng == nil {
			return nil
		}
		lines := make([]string, 1+rng.Intn(maxLines))
		for i := range lines {
			lines[i] = fmt.Sprintf(StatPool[rng.Intn(len(StatPool))], 1+rng.Intn(maxValue))
		}

		return lines
	}
}

// ConstStats returns a StatFn giving every node the same lines.
func ConstStats(lines ...string) StatFn {
	return func(int, *rand.Rand) []string { return append([]string(nil), lines...) }
}
