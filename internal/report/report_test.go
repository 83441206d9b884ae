package report_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/passivetree/internal/report"
	"github.com/katalvlaran/passivetree/optimizer"
	"github.com/katalvlaran/passivetree/tree"
)

func f(v float64) *float64 { return &v }

func TestTop(t *testing.T) {
	summary := map[string]float64{
		"#% increased Damage":     30,
		"# to maximum Life":       -45,
		"#% increased Armour":     30,
		"#% reduced Mana Cost":    2,
		"# to all Attributes":     5,
		"#% increased Cast Speed": 12,
	}

	top := report.Top(summary, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "# to maximum Life", top[0].Key)
	assert.Equal(t, "#% increased Armour", top[1].Key, "ties broken by key")
	assert.Equal(t, "#% increased Damage", top[2].Key)

	assert.Len(t, report.Top(summary, 100), len(summary))
	assert.Empty(t, report.Top(nil, 5))
}

func TestStatLine_Render(t *testing.T) {
	p := message.NewPrinter(language.English)
	assert.Equal(t, "+40 to maximum Life", report.StatLine{Key: "# to maximum Life", Value: 40}.Render(p))
	assert.Equal(t, "-10% increased Damage", report.StatLine{Key: "#% increased Damage", Value: -10}.Render(p))
	assert.Equal(t, "-5 to Strength", report.StatLine{Key: "# to Strength", Value: -5}.Render(p))
	assert.Equal(t, "+1,200 Armour", report.StatLine{Key: "# Armour", Value: 1200}.Render(p))
	assert.Equal(t, "+10% increased Damage", report.StatLine{Key: "#% increased Damage", Value: 10}.Render(p))
	assert.Equal(t, "0% increased Damage", report.StatLine{Key: "#% increased Damage", Value: 0}.Render(p))
}

func graph(t *testing.T) *tree.Graph {
	t.Helper()
	g, err := tree.Build(&tree.Definition{Nodes: []tree.NodeDef{
		{ID: "S", StartFor: []string{"witch"}, Edges: []string{"n1", "k1"}},
		{ID: "n1", Name: "Heart of Flame", Notable: true, Stats: []string{"20% increased Fire Damage", "+10 to maximum Life"}, Edges: []string{"k2"}},
		{ID: "k1", Name: "Iron Reflexes", Keystone: true, Defense: f(8), Offense: f(0)},
		{ID: "k2", Name: "Resolute Technique", Keystone: true, Offense: f(6), Defense: f(0)},
		{ID: "k3", Name: "Blood Magic", Keystone: true, Offense: f(3), Defense: f(3)},
	}})
	require.NoError(t, err)

	return g
}

func TestWriter_Result(t *testing.T) {
	g := graph(t)
	cfg := optimizer.NewConfig("witch", 0.5, 2)
	cfg.Name = "fire"
	cfg.RequiredKeystones = []string{"k3"}
	res, err := optimizer.Optimize(context.Background(), g, cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.New(&buf).Result(cfg, res))
	out := buf.String()

	assert.Contains(t, out, "== fire ==")
	assert.Contains(t, out, "class:      Witch (start S)")
	assert.Contains(t, out, "points:     2 / 2")
	assert.Contains(t, out, "Heart of Flame")
	assert.Contains(t, out, "+20% increased Fire Damage")
	assert.Contains(t, out, "+10 to maximum Life")
	assert.Contains(t, out, "warning: ")
}

func TestWriter_Keystones(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.New(&buf).Keystones(graph(t)))
	out := buf.String()

	assert.Contains(t, out, "Offense (1)\n  k2")
	assert.Contains(t, out, "Defense (1)\n  k1")
	assert.Contains(t, out, "Hybrid (1)\n  k3")
}
