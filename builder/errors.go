// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Cycle: n=2 < min=3: ...").
//   • Option constructors panic on nonsensical values; constructors never panic.

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidDegree indicates an out-degree bound or hot-set size outside its domain.
var ErrInvalidDegree = errors.New("builder: invalid degree parameter")

// ErrConstructFailed indicates a structural failure of Build itself
// (nil Linker, nil Constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
