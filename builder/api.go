// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go — public entry points for the builder package.
//
// Contract:
//   • One orchestrator: Build(l, opts, cons...). Resolves cfg once, runs cons in order.
//   • Factories are implemented in impl_*.go.
//   • Determinism: same inputs, options, seed and constructor order ⇒ identical link stream.
//   • Constructors never panic; they return sentinel errors wrapped with context.

package builder

import "fmt"

// Linker receives directed links. *pagerank.Engine, *edgelist.Writer and
// *Collector satisfy it.
type Linker interface {
	Link(from, to uint64) error
}

// LinkerFunc adapts a plain function to Linker.
type LinkerFunc func(from, to uint64) error

// Link calls f(from, to).
func (f LinkerFunc) Link(from, to uint64) error { return f(from, to) }

// Constructor emits a deterministic sequence of links into l using cfg.
// Constructors validate parameters before emitting anything.
type Constructor func(l Linker, cfg builderConfig) error

// Build resolves opts and applies every constructor to l in order. The first
// error is wrapped as "Build: %w" and returned; links emitted before it stay
// emitted.
func Build(l Linker, opts []BuilderOption, cons ...Constructor) error {
	if l == nil {
		return fmt.Errorf("Build: nil linker: %w", ErrConstructFailed)
	}

	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(l, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}

// Edge is one emitted link.
type Edge struct {
	From uint64
	To   uint64
}

// Collector is a Linker that records links in emission order.
type Collector struct {
	Edges []Edge
}

// Link appends (from, to) to c.Edges.
func (c *Collector) Link(from, to uint64) error {
	c.Edges = append(c.Edges, Edge{From: from, To: to})
	return nil
}

// Replay feeds every recorded link to l, stopping at the first error.
func (c *Collector) Replay(l Linker) error {
	for i, e := range c.Edges {
		if err := l.Link(e.From, e.To); err != nil {
			return fmt.Errorf("Replay: edge %d (%d→%d): %w", i, e.From, e.To, err)
		}
	}

	return nil
}

// Edges runs Build against a fresh Collector and returns the recorded links.
func Edges(opts []BuilderOption, cons ...Constructor) ([]Edge, error) {
	var c Collector
	if err := Build(&c, opts, cons...); err != nil {
		return nil, err
	}

	return c.Edges, nil
}

// emit links idFn(u) → idFn(v) and wraps failures with the constructor name.
func emit(method string, l Linker, cfg builderConfig, u, v int) error {
	from, to := cfg.idFn(u), cfg.idFn(v)
	if err := l.Link(from, to); err != nil {
		return fmt.Errorf("%s: Link(%d→%d): %w", method, from, to, err)
	}

	return nil
}
