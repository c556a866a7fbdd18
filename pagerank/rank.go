// SPDX-License-Identifier: MIT

package pagerank

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Rank runs the power iteration over the current graph and invokes fn once
// per registered identifier, in first-seen order, with its final score.
//
// followingProbability is the damping factor d: a walker follows an outgoing
// link with probability d and teleports uniformly otherwise. Iteration stops
// when the L1 change between two passes is ≤ tolerance (or after
// MaxIterations passes, when configured). An empty engine never calls fn.
//
// Rank does not modify the graph and may be called any number of times.
func (e *Engine) Rank(followingProbability, tolerance float64, fn func(id uint64, score float64)) error {
	if fn == nil {
		return ErrNilCallback
	}
	if err := validateParams(followingProbability, tolerance); err != nil {
		return err
	}

	start := time.Now()
	p, stats := e.iterate(followingProbability, tolerance)
	stats.Elapsed = time.Since(start)
	e.last = stats

	for i, v := range p {
		fn(e.indexToKey[i], v)
	}

	if e.opts.OnRanked != nil {
		e.opts.OnRanked(stats)
	}

	return nil
}

// Ranks is the collection form of Rank: one Score per registered identifier
// in first-seen order. An empty engine yields an empty, non-nil slice.
func (e *Engine) Ranks(followingProbability, tolerance float64) ([]Score, error) {
	out := make([]Score, 0, e.next)
	err := e.Rank(followingProbability, tolerance, func(id uint64, score float64) {
		out = append(out, Score{ID: id, Value: score})
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SortByValue orders scores by descending value. Equal values keep their
// relative order, which for Ranks output is first-seen order.
func SortByValue(scores []Score) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Value > scores[j].Value
	})
}

// Top returns the k highest scores in SortByValue order without modifying
// the input. k ≤ 0 or k ≥ len(scores) returns all of them.
func Top(scores []Score, k int) []Score {
	out := make([]Score, len(scores))
	copy(out, scores)
	SortByValue(out)
	if k > 0 && k < len(out) {
		out = out[:k]
	}

	return out
}

func validateParams(d, tolerance float64) error {
	if math.IsNaN(d) || d < 0 || d > 1 {
		return fmt.Errorf("Rank: following probability=%g: %w", d, ErrInvalidDamping)
	}
	if math.IsNaN(tolerance) || tolerance < 0 {
		return fmt.Errorf("Rank: tolerance=%g: %w", tolerance, ErrInvalidTolerance)
	}

	return nil
}

// powerIteration is the per-call working set of Rank.
type powerIteration struct {
	e        *Engine
	n        int
	nf       float64
	d        float64
	teleport float64
	workers  int
	spans    []span
	partial  []float64 // one slot per span
	p, next  []float64
}

// iterate returns the final probability vector (length Len()) and run stats.
func (e *Engine) iterate(d, tolerance float64) ([]float64, Stats) {
	n := e.next
	stats := Stats{Nodes: n, Edges: e.edges, Converged: true}
	if n == 0 {
		return nil, stats
	}

	for i := 0; i < n; i++ {
		if e.outDegree[i] == 0 {
			stats.Dangling++
		}
	}

	pi := &powerIteration{
		e:        e,
		n:        n,
		nf:       float64(n),
		d:        d,
		teleport: (1 - d) / float64(n),
		workers:  e.opts.Workers,
		spans:    partition(n, e.opts.Workers),
		p:        make([]float64, n),
		next:     make([]float64, n),
	}
	pi.partial = make([]float64, len(pi.spans))

	inv := 1 / pi.nf
	for i := range pi.p {
		pi.p[i] = inv
	}

	// At least one pass runs whatever the tolerance, so reported scores are
	// always normalized.
	for {
		if e.opts.MaxIterations > 0 && stats.Iterations >= e.opts.MaxIterations {
			stats.Converged = false
			break
		}

		change := pi.step()
		stats.Iterations++
		stats.Delta = change
		pi.p, pi.next = pi.next, pi.p

		if e.opts.OnIteration != nil {
			e.opts.OnIteration(stats.Iterations, change)
		}
		if change <= tolerance {
			break
		}
	}

	return pi.p, stats
}

// step computes pi.next from pi.p, renormalizes it and returns the L1
// distance between the two vectors.
func (pi *powerIteration) step() float64 {
	e := pi.e

	// Mass held by dangling nodes, spread evenly over every node.
	pi.reduce(func(s span) float64 {
		var acc float64
		for i := s.lo; i < s.hi; i++ {
			if e.outDegree[i] == 0 {
				acc += pi.p[i]
			}
		}
		return acc
	})
	danglingShare := sumOrdered(pi.partial) / pi.nf

	// Each task owns next[s.lo:s.hi] and reads only p.
	pi.reduce(func(s span) float64 {
		var total float64
		for i := s.lo; i < s.hi; i++ {
			var inbound float64
			for _, j := range e.inLinks[i] {
				inbound += pi.p[j] / float64(e.outDegree[j])
			}
			v := pi.d*(inbound+danglingShare) + pi.teleport
			pi.next[i] = v
			total += v
		}
		return total
	})
	sum := sumOrdered(pi.partial)

	pi.reduce(func(s span) float64 {
		var diff float64
		for i := s.lo; i < s.hi; i++ {
			pi.next[i] /= sum
			diff += math.Abs(pi.p[i] - pi.next[i])
		}
		return diff
	})

	return sumOrdered(pi.partial)
}

// reduce runs fn over every span and stores each result in its partial slot.
func (pi *powerIteration) reduce(fn func(s span) float64) {
	forEach(pi.spans, pi.workers, func(k int, s span) {
		pi.partial[k] = fn(s)
	})
}
