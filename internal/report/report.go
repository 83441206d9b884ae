// Package report renders optimisation results and keystone listings as
// plain text for the command line.
package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/passivetree/optimizer"
	"github.com/katalvlaran/passivetree/tree"
)

// TopStats is the number of stat summary lines printed per result.
const TopStats = 20

// StatLine is one entry of a stat summary.
type StatLine struct {
	Key   string
	Value float64
}

// Top returns the n summary entries with the largest absolute value, ties
// broken by key.
func Top(summary map[string]float64, n int) []StatLine {
	lines := make([]StatLine, 0, len(summary))
	for k, v := range summary {
		lines = append(lines, StatLine{Key: k, Value: v})
	}
	sort.Slice(lines, func(i, j int) bool {
		ai, aj := math.Abs(lines[i].Value), math.Abs(lines[j].Value)
		if ai != aj {
			return ai > aj
		}

		return lines[i].Key < lines[j].Key
	})
	if n >= 0 && len(lines) > n {
		lines = lines[:n]
	}

	return lines
}

// Render fills the '#' placeholder of a summary key with its signed value;
// positive values are written with a leading '+'.
func (s StatLine) Render(p *message.Printer) string {
	v := p.Sprintf("%v", s.Value)
	if s.Value > 0 {
		v = "+" + v
	}

	return strings.Replace(s.Key, "#", v, 1)
}

// Writer renders reports with English number formatting.
type Writer struct {
	w     io.Writer
	p     *message.Printer
	title cases.Caser
}

// New returns a Writer on w.
func New(w io.Writer) *Writer {
	return &Writer{
		w:     w,
		p:     message.NewPrinter(language.English),
		title: cases.Title(language.English),
	}
}

// Result writes a summary of res for the build cfg.
func (rw *Writer) Result(cfg optimizer.Config, res *optimizer.Result) error {
	var b strings.Builder
	name := cfg.Name
	if name == "" {
		name = rw.title.String(res.Class)
	}
	fmt.Fprintf(&b, "== %s ==\n", name)
	fmt.Fprintf(&b, "class:      %s (start %s)\n", rw.title.String(res.Class), res.StartNode)
	b.WriteString(rw.p.Sprintf("points:     %d / %d\n", res.TotalPoints, res.PointBudget))
	b.WriteString(rw.p.Sprintf("offense:    %.1f\n", res.OffenseScore))
	b.WriteString(rw.p.Sprintf("defense:    %.1f\n", res.DefenseScore))
	fmt.Fprintf(&b, "efficiency: %d%%\n", res.Efficiency)

	counts := make(map[tree.Kind]int)
	for _, n := range res.AllocatedNodes {
		counts[n.Node.Kind]++
	}
	fmt.Fprintf(&b, "nodes:      %d keystone, %d notable, %d small, %d travel\n",
		counts[tree.Keystone], counts[tree.Notable], counts[tree.Small], counts[tree.Travel])

	for _, n := range res.AllocatedNodes {
		if n.Node.Kind != tree.Keystone && n.Node.Kind != tree.Notable {
			continue
		}
		b.WriteString(rw.p.Sprintf("  %-8s %-28s %8.2f\n", rw.title.String(n.Node.Kind.String()), label(n.Node), n.Score))
	}

	if top := Top(res.StatSummary, TopStats); len(top) > 0 {
		b.WriteString("stats:\n")
		for _, s := range top {
			fmt.Fprintf(&b, "  %s\n", s.Render(rw.p))
		}
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", w.Message)
	}
	b.WriteByte('\n')

	_, err := io.WriteString(rw.w, b.String())

	return err
}

// Keystones lists the keystones of g grouped offense, defense, hybrid.
func (rw *Writer) Keystones(g *tree.Graph) error {
	groups := map[tree.KeystoneGroup][]*tree.Node{}
	for _, n := range g.Keystones() {
		groups[tree.GroupOf(n)] = append(groups[tree.GroupOf(n)], n)
	}

	var b strings.Builder
	for _, grp := range []tree.KeystoneGroup{tree.GroupOffense, tree.GroupDefense, tree.GroupHybrid} {
		nodes := groups[grp]
		fmt.Fprintf(&b, "%s (%d)\n", rw.title.String(string(grp)), len(nodes))
		for _, n := range nodes {
			b.WriteString(rw.p.Sprintf("  %-10s %-28s off %5.1f  def %5.1f\n", n.ID, label(n), n.Offense, n.Defense))
		}
	}

	_, err := io.WriteString(rw.w, b.String())

	return err
}

func label(n *tree.Node) string {
	if n.Name != "" {
		return n.Name
	}

	return n.ID
}
