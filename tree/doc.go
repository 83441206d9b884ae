// Package tree provides the immutable passive skill graph consumed by the
// optimiser: a normalised node/edge model built once per tree definition and
// shared read-only across any number of optimisation runs.
//
// Ingestion (Build) performs, in order:
//
//   - Classification: Keystone (flagged) > Notable (flagged, or stats with a
//     number ≥ 20, or ≥ 4 stat lines) > Small (any stat or attribute) > Travel.
//   - Scoring: base offense/defense from statline.Score, or an injected
//     StatScorer (WithStatScorer), or explicit values in the definition.
//   - Tagging: keyword vocabulary over stat text and icon hints (ExtractTags).
//   - Connectivity: symmetric union of all declared edges; dangling ids become
//     zero-value Travel stubs so traversals never meet a missing node.
//   - Class starts: explicit markers, then the root's ordered edges mapped to
//     ClassOrder, then the degree ranking (StartNode).
//
// Determinism:
//
//	IDs(), Nodes(), Components() and every Node.Neighbors slice are sorted, so
//	any traversal that iterates them is reproducible.
//
// Concurrency:
//
//	A *Graph is never mutated after Build returns; it needs no locks.
//
// Errors:
//
//	ErrGraphParse    – empty node table, empty or duplicate ids.
//	ErrNoStartNode   – class start resolution failed.
//	ErrNodeNotFound  – lookup of an unknown id.
package tree
