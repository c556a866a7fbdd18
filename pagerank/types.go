// SPDX-License-Identifier: MIT

package pagerank

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

// Sentinel errors for engine operations.
var (
	// ErrCapacityExceeded indicates that a new identifier needed an index
	// beyond the capacity fixed at construction. The concrete error returned
	// by Link is *CapacityError; errors.Is matches it against this sentinel.
	ErrCapacityExceeded = errors.New("pagerank: capacity exceeded")

	// ErrInvalidDamping indicates a following probability that is NaN or
	// outside the closed interval [0,1].
	ErrInvalidDamping = errors.New("pagerank: following probability out of range")

	// ErrInvalidTolerance indicates a convergence tolerance that is NaN or negative.
	ErrInvalidTolerance = errors.New("pagerank: tolerance out of range")

	// ErrNilCallback indicates that Rank was called without a result callback.
	ErrNilCallback = errors.New("pagerank: nil result callback")
)

// CapacityError reports a Link call that needed more fresh indices than the
// engine has left. No endpoint of the failed call is registered.
type CapacityError struct {
	// Cursor is the next available index at the time of the call.
	Cursor int

	// Requested is how many new identifiers the call needed (1 or 2).
	Requested int

	// Capacity is the node capacity fixed at construction.
	Capacity int
}

// Error implements the error interface.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("pagerank: exceeded the capacity of nodes, current available index: %d, capacity: %d",
		e.Cursor, e.Capacity)
}

// Is lets errors.Is(err, ErrCapacityExceeded) match a *CapacityError.
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// Score pairs an external identifier with its PageRank value.
type Score struct {
	ID    uint64  `json:"id" yaml:"id" toml:"id"`
	Value float64 `json:"score" yaml:"score" toml:"score"`
}

// Stats describes the most recent ranking run.
type Stats struct {
	Nodes      int           `json:"nodes" yaml:"nodes" toml:"nodes"`
	Edges      int           `json:"edges" yaml:"edges" toml:"edges"`
	Dangling   int           `json:"dangling" yaml:"dangling" toml:"dangling"`
	Iterations int           `json:"iterations" yaml:"iterations" toml:"iterations"`
	Delta      float64       `json:"delta" yaml:"delta" toml:"delta"`
	Converged  bool          `json:"converged" yaml:"converged" toml:"converged"`
	Elapsed    time.Duration `json:"elapsed_ns" yaml:"elapsed_ns" toml:"elapsed_ns"`
}

// Option configures an Engine at construction.
type Option func(*Options)

// Options holds the tunables of an Engine.
type Options struct {
	// Workers bounds the number of concurrently running chunk tasks per pass.
	Workers int

	// MaxIterations, if positive, stops the power iteration after that many
	// passes even when the tolerance has not been reached. Zero means no limit.
	MaxIterations int

	// OnIteration, if non-nil, is invoked after every pass with the 1-based
	// pass number and the L1 change of that pass.
	OnIteration func(iteration int, delta float64)

	// OnRanked, if non-nil, is invoked once per completed Rank call.
	OnRanked func(Stats)
}

// DefaultOptions returns Options with:
//   - Workers = runtime.GOMAXPROCS(0)
//   - no iteration limit
//   - no hooks
func DefaultOptions() Options {
	return Options{
		Workers:       runtime.GOMAXPROCS(0),
		MaxIterations: 0,
		OnIteration:   nil,
		OnRanked:      nil,
	}
}

// WithWorkers sets the fork-join width of the ranking kernel.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("pagerank: WithWorkers(n<1)")
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithMaxIterations bounds the number of power-iteration passes.
// Zero restores the default (iterate until convergence). Panics if n < 0.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic("pagerank: WithMaxIterations(n<0)")
	}
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithOnIteration installs fn as a per-pass hook.
func WithOnIteration(fn func(iteration int, delta float64)) Option {
	return func(o *Options) {
		o.OnIteration = fn
	}
}

// WithOnRanked installs fn as a hook called with the Stats of every Rank call.
func WithOnRanked(fn func(Stats)) Option {
	return func(o *Options) {
		o.OnRanked = fn
	}
}
