// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • idFn = SequentialIDs (i → uint64(i))
//   • rng  = nil (constructors needing randomness fail with ErrNeedRandSource)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// idFn maps a dense fixture index to the emitted identifier.
	idFn IDFn
	// rng drives stochastic constructors; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig applies opts in order (last wins) over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: SequentialIDs,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
