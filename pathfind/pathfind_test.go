package pathfind_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/passivetree/pathfind"
	"github.com/katalvlaran/passivetree/tree"
	"github.com/katalvlaran/passivetree/treegen"
)

// twoRoutes: S–A–B–C–T (4 hops) and S–X–T via Y (S–X–Y–T, 3 hops), plus an
// island Z.
func twoRoutes(t *testing.T) *tree.Graph {
	t.Helper()
	g, err := tree.Build(&tree.Definition{Nodes: []tree.NodeDef{
		{ID: "S", Edges: []string{"A", "X"}},
		{ID: "A", Edges: []string{"B"}},
		{ID: "B", Edges: []string{"C"}},
		{ID: "C", Edges: []string{"T"}},
		{ID: "X", Edges: []string{"Y"}},
		{ID: "Y", Edges: []string{"T"}},
		{ID: "T"},
		{ID: "Z"},
	}})
	require.NoError(t, err)

	return g
}

func TestSearch_Errors(t *testing.T) {
	_, err := pathfind.Search(nil, []string{"S"})
	assert.ErrorIs(t, err, pathfind.ErrGraphNil)

	g := twoRoutes(t)
	_, err = pathfind.Search(g, []string{"S", "missing"})
	assert.ErrorIs(t, err, pathfind.ErrSourceNotFound)

	_, err = pathfind.Search(g, []string{"S"}, pathfind.WithMaxDepth(-1))
	assert.ErrorIs(t, err, pathfind.ErrOptionViolation)
}

func TestPathTo_ShortestFrontierFirst(t *testing.T) {
	g := twoRoutes(t)

	path, err := pathfind.Find(g, []string{"S"}, "T")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "T"}, path)

	// a second source closer to the target wins
	path, err = pathfind.Find(g, []string{"S", "C"}, "T")
	require.NoError(t, err)
	assert.Equal(t, []string{"T"}, path)
}

func TestPathTo_Outcomes(t *testing.T) {
	g := twoRoutes(t)
	res, err := pathfind.Search(g, []string{"S", "A"})
	require.NoError(t, err)

	path, err := res.PathTo("A")
	require.NoError(t, err)
	assert.NotNil(t, path)
	assert.Empty(t, path)

	_, err = res.PathTo("Z")
	assert.ErrorIs(t, err, pathfind.ErrUnreachable)

	_, err = res.PathTo("nope")
	assert.ErrorIs(t, err, pathfind.ErrTargetNotFound)

	_, err = pathfind.Find(g, []string{"S"}, "nope")
	assert.ErrorIs(t, err, pathfind.ErrTargetNotFound)

	cost, ok := res.Cost("T")
	require.True(t, ok)
	assert.Equal(t, 3, cost)
	assert.False(t, res.Reached("Z"))
}

func TestSearch_SourcesSortedAndDeduplicated(t *testing.T) {
	g := twoRoutes(t)
	res, err := pathfind.Search(g, []string{"X", "S", "X"})
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "X"}, res.Order[:2])
	assert.Equal(t, 0, res.Depth["X"])
	assert.NotContains(t, res.Order[2:], "X")
}

func TestSearch_EmptySources(t *testing.T) {
	g := twoRoutes(t)
	_, err := pathfind.Find(g, nil, "T")
	assert.ErrorIs(t, err, pathfind.ErrUnreachable)
}

func TestSearch_MaxDepthAndFilter(t *testing.T) {
	g := twoRoutes(t)

	_, err := pathfind.Find(g, []string{"S"}, "T", pathfind.WithMaxDepth(2))
	assert.ErrorIs(t, err, pathfind.ErrUnreachable)

	path, err := pathfind.Find(g, []string{"S"}, "T", pathfind.WithMaxDepth(3))
	require.NoError(t, err)
	assert.Len(t, path, 3)

	path, err = pathfind.Find(g, []string{"S"}, "T",
		pathfind.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "Y" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "T"}, path)
}

func TestSearch_OnVisitAndCancel(t *testing.T) {
	g := twoRoutes(t)
	stop := errors.New("stop")
	_, err := pathfind.Search(g, []string{"S"}, pathfind.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pathfind.Search(g, []string{"S"}, pathfind.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_GridDepthsAreManhattan(t *testing.T) {
	def, err := treegen.Generate(nil, treegen.Grid(4, 4))
	require.NoError(t, err)
	g, err := tree.Build(def)
	require.NoError(t, err)

	res, err := pathfind.Search(g, []string{"0,0"})
	require.NoError(t, err)
	assert.Equal(t, 6, res.Depth["3,3"])
	assert.Equal(t, 16, len(res.Order))

	path, err := res.PathTo("3,3")
	require.NoError(t, err)
	require.Len(t, path, 6)
	assert.True(t, g.Connected(append([]string{"0,0"}, path...)))
}
