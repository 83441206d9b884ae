// Package scoring rates passive nodes against a build.
//
// An Engine is created once per build (tag sets are precomputed) and is then
// a pure function of the node: Score(n) returns the relevance multiplier, the
// weighted offense and defense subscores and the final total.
//
// Relevance starts at 1 and multiplies, in order:
//
//	style        node has exactly one of attack/spell, skill only the other    ×0.05
//	range        same rule over melee/ranged                                   ×0.05
//	damage type  both declare types (elemental = fire+cold+lightning):
//	             none shared ×0.1, otherwise ×1.3
//	weapon       node has weapon tags and the build names weapons:
//	             none shared ×0.1, otherwise ×1.4
//	minion       (skill tags given) minion node on a non-minion build ×0.02,
//	             non-minion node with offense on a minion build ×0.2
//	overlap      ×(1 + 0.15 × |node tags ∩ (skill ∪ weapon tags)|)
//
// Relevance scales offense only. The total is (offense + defense) × kind
// multiplier (3 keystone, 2 notable, 1 otherwise), floored at Epsilon so
// every node stays strictly positive and comparable.
package scoring
