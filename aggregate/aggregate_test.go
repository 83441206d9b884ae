package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/passivetree/aggregate"
	"github.com/katalvlaran/passivetree/scoring"
	"github.com/katalvlaran/passivetree/tree"
)

func f(v float64) *float64 { return &v }

func graph(t *testing.T) *tree.Graph {
	t.Helper()
	g, err := tree.Build(&tree.Definition{Nodes: []tree.NodeDef{
		{ID: "S", Edges: []string{"a", "b", "k", "n"}},
		{ID: "a", Stats: []string{"+10% Fire Damage", "Cannot be Frozen"}, Offense: f(2)},
		{ID: "b", Stats: []string{"+15% Fire Damage", "-5% Fire Damage"}, Offense: f(4)},
		{ID: "k", Keystone: true, Stats: []string{"+30 to maximum Life"}, Offense: f(1), Defense: f(3)},
		{ID: "n", Notable: true, Stats: []string{"+20 to maximum Life"}, Defense: f(2)},
	}})
	require.NoError(t, err)

	return g
}

func TestAggregate(t *testing.T) {
	g := graph(t)
	e := scoring.New(scoring.Build{OffenseWeight: 0.5, DefenseWeight: 0.5})

	s, err := aggregate.Aggregate(g, e, "S", []string{"S", "a", "b", "k", "n"}, 4)
	require.NoError(t, err)

	ids := make([]string, len(s.Entries))
	for i, en := range s.Entries {
		ids[i] = en.Node.ID
	}
	assert.Equal(t, []string{"k", "n", "b", "a", "S"}, ids)

	assert.InDelta(t, 3.5, s.OffenseScore, 1e-9)
	assert.InDelta(t, 2.5, s.DefenseScore, 1e-9)
	assert.Equal(t, 4, s.TotalPoints)

	// k: (0.5+1.5)*3 = 6, n: 1*2 = 2, b: 2, a: 1; the start is free → 11 / 20
	assert.Equal(t, 55, s.Efficiency)
	assert.InDelta(t, 6.0, s.Entries[0].Score, 1e-9)
	assert.InDelta(t, 0.5, s.Entries[0].Offense, 1e-9)
	assert.InDelta(t, 1.5, s.Entries[0].Defense, 1e-9)

	assert.Equal(t, map[string]float64{
		"#% Fire Damage":    20,
		"# to maximum Life": 50,
	}, s.StatSummary)

	node, _ := g.Node("a")
	assert.Same(t, node, s.Entries[3].Node)
	assert.Contains(t, node.Stats, "Cannot be Frozen")
}

func TestAggregate_StartScoreNotInEfficiency(t *testing.T) {
	g, err := tree.Build(&tree.Definition{Nodes: []tree.NodeDef{
		{ID: "S", Stats: []string{"+40 to maximum Life"}, Defense: f(40), Edges: []string{"a"}},
		{ID: "a", Stats: []string{"+5 to maximum Life"}, Defense: f(5)},
	}})
	require.NoError(t, err)
	e := scoring.New(scoring.Build{DefenseWeight: 1})

	s, err := aggregate.Aggregate(g, e, "S", []string{"S", "a"}, 1)
	require.NoError(t, err)
	assert.Equal(t, 100, s.Efficiency, "a alone: 5 / (1 × 5)")
	assert.InDelta(t, 45.0, s.DefenseScore, 1e-9, "start still counts toward the totals")

	s, err = aggregate.Aggregate(g, e, "S", []string{"S"}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Efficiency)

	g2, err := tree.Build(&tree.Definition{Nodes: []tree.NodeDef{
		{ID: "S", Stats: []string{"+40 to maximum Life"}, Defense: f(40), Edges: []string{"a"}},
		{ID: "a", Stats: []string{"+2 to maximum Life"}, Defense: f(2)},
	}})
	require.NoError(t, err)
	s, err = aggregate.Aggregate(g2, e, "S", []string{"S", "a"}, 1)
	require.NoError(t, err)
	assert.Equal(t, 40, s.Efficiency, "2 / 5, not inflated by the start's 40")
}

func TestAggregate_UnknownID(t *testing.T) {
	_, err := aggregate.Aggregate(graph(t), scoring.New(scoring.Build{}), "S", []string{"S", "zz"}, 1)
	assert.ErrorIs(t, err, tree.ErrNodeNotFound)
}

func TestEfficiency(t *testing.T) {
	assert.Equal(t, 0, aggregate.Efficiency(50, 0))
	assert.Equal(t, 100, aggregate.Efficiency(1000, 2))
	assert.Equal(t, 0, aggregate.Efficiency(-10, 2))
	assert.Equal(t, 50, aggregate.Efficiency(5, 2))
	assert.Equal(t, 33, aggregate.Efficiency(5, 3))
}
