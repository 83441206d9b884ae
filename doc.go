// Package passivetree computes point-budgeted, connected allocations of a
// role-playing game's passive skill tree for a chosen build.
//
// 🚀 What is passivetree?
//
//	An offline optimiser that brings together:
//		• Ingestion: legacy tree JSON → canonical definition → immutable graph
//		• Heuristics: stat text → offense/defense scores, tags, attributes
//		• Scoring: build relevance (style, damage type, weapon, minion)
//		• Allocation: required keystones, greedy expansion, leaf swaps
//		• Reporting: contributions, stat summary, efficiency, JSON export
//
// ✨ Why passivetree?
//
//   - One immutable Graph shared by any number of concurrent runs
//   - Deterministic results for equal inputs
//   - Replaceable stat heuristic behind a pure function
//   - Profiles in HCL or YAML, with keystone.<slug> references
//
// Packages, in data-flow order:
//
//	statline/  : pure stat-line heuristics (scores, grouping keys, attributes)
//	tree/      : Node, Kind, Definition, Graph, class starts, components
//	treedata/  : named adapters from legacy JSON layouts to tree.Definition
//	treegen/   : deterministic synthetic trees for tests and benchmarks
//	scoring/   : per-build relevance and weighted node scores
//	pathfind/  : multi-source BFS from the allocated set
//	allocator/ : per-run seeding, greedy expansion and refinement
//	aggregate/ : contributions, stat summary, efficiency and ordering
//	optimizer/ : Optimize, Config validation, Service, metrics, export
//	profile/   : HCL and YAML build profiles
//
// Quick ASCII example:
//
//	S───A───B
//	│
//	N
//
// With S the class start (free), a budget of 2 and an attack build, the
// allocation is {S, N, A} when N is an attack notable and A a small node.
//
//	go run ./cmd/treeopt -tree tree.json -profile builds.hcl
package passivetree
