// SPDX-License-Identifier: MIT

package treegen

import "math/rand"

// StatFn returns the stat lines of the generated node at index idx.
// rng is nil unless WithSeed or WithRand was given.
type StatFn func(idx int, rng *rand.Rand) []string

// Option configures Generate.
type Option func(*genConfig)

// genConfig is resolved once per Generate call; later options override
// earlier ones.
//
// Defaults:
//   - idFn   = DefaultIDFn ("0", "1", ...)
//   - rng    = nil (pure unless seeded)
//   - statFn = nil (generated nodes are Travel)
type genConfig struct {
	idFn   IDFn
	rng    *rand.Rand
	statFn StatFn
}

func newConfig(opts ...Option) genConfig {
	cfg := genConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the id function used by every topology constructor.
// Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("treegen: WithIDScheme(nil)")
	}

	return func(c *genConfig) { c.idFn = fn }
}

// WithRand attaches a caller-owned RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("treegen: WithRand(nil)")
	}

	return func(c *genConfig) { c.rng = r }
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithStatFn sets the stat generator for topology nodes. Panics on nil.
func WithStatFn(fn StatFn) Option {
	if fn == nil {
		panic("treegen: WithStatFn(nil)")
	}

	return func(c *genConfig) { c.statFn = fn }
}
