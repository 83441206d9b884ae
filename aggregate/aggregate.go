// Package aggregate turns an allocation into its reported totals: per-node
// contributions, offense/defense sums, a numeric stat summary, the efficiency
// percentage and the display order.
package aggregate

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/passivetree/scoring"
	"github.com/katalvlaran/passivetree/statline"
	"github.com/katalvlaran/passivetree/tree"
)

// Calibration is the theoretical per-point score used by Efficiency.
const Calibration = 5.0

// Entry is one allocated node with its contribution.
type Entry struct {
	Node    *tree.Node `json:"node"`
	Offense float64    `json:"offense"`
	Defense float64    `json:"defense"`
	Score   float64    `json:"score"`
}

// Summary is the aggregated view of an allocation.
type Summary struct {
	Entries      []Entry
	TotalPoints  int
	OffenseScore float64
	DefenseScore float64
	Efficiency   int
	StatSummary  map[string]float64
}

// Aggregate scores ids with e and builds the Summary. points is the number of
// points spent, which excludes the free start node; the start's score is
// likewise left out of the efficiency numerator but kept in the sums.
// Returns tree.ErrNodeNotFound for ids absent from g.
func Aggregate(g *tree.Graph, e *scoring.Engine, start string, ids []string, points int) (*Summary, error) {
	nodes, err := g.Resolve(ids)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}

	s := &Summary{
		Entries:     make([]Entry, 0, len(nodes)),
		TotalPoints: points,
		StatSummary: StatSummary(nodes),
	}
	total := 0.0
	for _, n := range nodes {
		sc := e.Score(n)
		s.Entries = append(s.Entries, Entry{Node: n, Offense: sc.Offense, Defense: sc.Defense, Score: sc.Total})
		s.OffenseScore += sc.Offense
		s.DefenseScore += sc.Defense
		if n.ID != start {
			total += sc.Total
		}
	}
	s.OffenseScore = statline.Round1(s.OffenseScore)
	s.DefenseScore = statline.Round1(s.DefenseScore)
	s.Efficiency = Efficiency(total, points)
	Order(s.Entries)

	return s, nil
}

// Efficiency is min(100, round(100 × total / (points × Calibration))),
// clamped at 0, and 0 when no points were spent.
func Efficiency(total float64, points int) int {
	if points <= 0 {
		return 0
	}
	pct := math.Round(100 * total / (float64(points) * Calibration))

	return int(math.Max(0, math.Min(100, pct)))
}

// StatSummary accumulates the first numeric token of every stat line under
// its statline.GroupKey. Lines without a number are skipped.
func StatSummary(nodes []*tree.Node) map[string]float64 {
	out := make(map[string]float64)
	for _, n := range nodes {
		for _, line := range n.Stats {
			if key, v, ok := statline.GroupKey(line); ok {
				out[key] += v
			}
		}
	}

	return out
}

func kindRank(k tree.Kind) int {
	switch k {
	case tree.Keystone:
		return 0
	case tree.Notable:
		return 1
	}

	return 2
}

// Order sorts entries keystones first, then notables, then the rest; each
// group by descending score, ties by id.
func Order(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if ra, rb := kindRank(a.Node.Kind), kindRank(b.Node.Kind); ra != rb {
			return ra < rb
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}

		return a.Node.ID < b.Node.ID
	})
}
