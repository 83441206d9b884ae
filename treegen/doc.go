// SPDX-License-Identifier: MIT

// Package treegen provides deterministic synthetic passive trees for tests,
// examples and benchmarks.
//
// Fixtures are assembled by Generate from functional options and an ordered
// list of Constructors, and are returned as a tree.Definition so they flow
// through exactly the same ingestion path as real tree documents:
//
//   - Topologies: Path, Star, Grid, RandomTree, RandomSparse.
//   - Payload:    Node (explicit stats/tags/kind), Edge, StartAt.
//   - Node ids:   IDFn schemes (DefaultIDFn, LetterIDFn, PrefixIDFn,
//     OffsetIDFn) selected with WithIDScheme.
//   - Stats:      WithStatFn fills generated nodes; RandomStats draws from
//     StatPool using the configured RNG.
//
// Determinism:
//
//	Equal options, seed and constructor order ⇒ identical definitions.
//
// Errors:
//
//	Constructors return sentinel errors (ErrTooFewNodes, ErrInvalidProbability,
//	ErrNeedRandSource, ErrUnknownNode, ErrConstructFailed) wrapped with the
//	constructor name; callers branch with errors.Is.
package treegen
