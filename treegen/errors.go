// SPDX-License-Identifier: MIT

package treegen

import "errors"

var (
	// ErrTooFewNodes indicates a size parameter below the constructor minimum.
	ErrTooFewNodes = errors.New("treegen: parameter too small")

	// ErrInvalidProbability indicates p outside [0, 1].
	ErrInvalidProbability = errors.New("treegen: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("treegen: rng is required")

	// ErrUnknownNode indicates a constructor referenced an id not yet generated.
	ErrUnknownNode = errors.New("treegen: unknown node")

	// ErrConstructFailed indicates a structural failure such as a nil constructor.
	ErrConstructFailed = errors.New("treegen: construction failed")
)
