// Package allocator spends a point budget on a connected set of passive
// nodes, one greedy step at a time.
//
// An Allocator is created per run and owns that run's allocated set, its
// allocation order, the spent counter and the warnings. The tree.Graph and
// the scoring.Engine it reads are shared and never mutated.
//
// Phase A (Seed): the class start node is allocated for free. Each required
// keystone is then pathed to in the given order; a keystone that is absent,
// unreachable, or costs more than the remaining budget is skipped with a
// Warning instead of failing the run.
//
// Phase B (Expand): every iteration runs one multi-source search from the
// allocated set, bounded by the remaining budget, and rates every reached
// non-Travel node. Nodes below scoring.MinRelevance are dropped. The winner
// is chosen by
//
//	relevance, when two candidates differ by more than RelevanceGap
//	efficiency = total / cost
//	total, then lower cost, then id
//
// and its whole path is allocated. The loop ends when the budget is spent,
// nothing survives, or after IterationCapFactor × budget iterations.
//
// Refinement (optional, WithRefinement): bounded leaf swaps. The weakest
// removable leaf is exchanged for a stronger unallocated node adjacent to the
// rest of the set; connectivity and spent points are unchanged by
// construction.
//
// The root node of a tree (tree.Graph.Root) joins class starts together and
// is never traversed.
package allocator
