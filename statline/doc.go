// Package statline holds the text heuristics applied to passive node stat lines.
//
// What
//
//   - FirstNumber / GroupKey: the first signed numeric token of a line and the
//     line with that token replaced by a "#" placeholder.
//   - Score: the fuzzy stats -> {offense, defense} derivation.
//   - ParseAttributes: flat attribute bonuses (+N to Strength, ...).
//
// Why
//
//	Raw trees only ship free text. Everything that guesses at meaning from that
//	text lives here, as pure functions, so it can be swapped for a structured
//	scorer (see tree.WithStatScorer) without touching the graph or the
//	allocation algorithm.
//
// Determinism
//
//	All functions are pure; categories are evaluated in declaration order.
package statline
