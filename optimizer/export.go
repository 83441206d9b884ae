package optimizer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/passivetree/tree"
)

// ExportNode is the flattened form of an AllocatedNode.
type ExportNode struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Kind                tree.Kind `json:"kind"`
	Stats               []string  `json:"stats"`
	Tags                []string  `json:"tags"`
	OffenseContribution float64   `json:"offenseContribution"`
	DefenseContribution float64   `json:"defenseContribution"`
	Score               float64   `json:"score"`
}

// ExportResult is the serialisable form of a Result.
type ExportResult struct {
	RunID        string             `json:"runId,omitempty"`
	Class        string             `json:"class"`
	StartNode    string             `json:"startNode"`
	TotalPoints  int                `json:"totalPoints"`
	PointBudget  int                `json:"pointBudget"`
	OffenseScore float64            `json:"offenseScore"`
	DefenseScore float64            `json:"defenseScore"`
	Efficiency   int                `json:"efficiency"`
	Nodes        []ExportNode       `json:"allocatedNodes"`
	StatSummary  map[string]float64 `json:"statSummary"`
	Warnings     []Warning          `json:"warnings"`
}

// Document pairs a build with its result.
type Document struct {
	Config Config       `json:"config"`
	Result ExportResult `json:"result"`
}

// NewDocument flattens res for export.
func NewDocument(cfg Config, res *Result) Document {
	out := ExportResult{
		RunID:        res.RunID,
		Class:        res.Class,
		StartNode:    res.StartNode,
		TotalPoints:  res.TotalPoints,
		PointBudget:  res.PointBudget,
		OffenseScore: res.OffenseScore,
		DefenseScore: res.DefenseScore,
		Efficiency:   res.Efficiency,
		Nodes:        make([]ExportNode, 0, len(res.AllocatedNodes)),
		StatSummary:  res.StatSummary,
		Warnings:     res.Warnings,
	}
	if out.Warnings == nil {
		out.Warnings = []Warning{}
	}
	for _, an := range res.AllocatedNodes {
		n := an.Node
		out.Nodes = append(out.Nodes, ExportNode{
			ID:                  n.ID,
			Name:                n.Name,
			Kind:                n.Kind,
			Stats:               nonNil(n.Stats),
			Tags:                nonNil(n.Tags),
			OffenseContribution: an.Offense,
			DefenseContribution: an.Defense,
			Score:               an.Score,
		})
	}

	return Document{Config: cfg, Result: out}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

// Export writes cfg and res as one indented JSON object to w.
func Export(w io.Writer, cfg Config, res *Result) error {
	return encode(w, NewDocument(cfg, res))
}

// ExportAll writes docs as one indented JSON array to w.
func ExportAll(w io.Writer, docs []Document) error {
	if docs == nil {
		docs = []Document{}
	}

	return encode(w, docs)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("optimizer: export: %w", err)
	}

	return nil
}
