// SPDX-License-Identifier: MIT

// Package pagerank computes PageRank importance scores for the nodes of a
// directed graph that is built incrementally from (from, to) link insertions.
//
// What:
//
//   - Engine: a capacity-bounded accumulator of directed links keyed by
//     arbitrary uint64 identifiers. Identifiers are mapped to dense indices
//     in first-seen order; the engine keeps reverse adjacency (in-links) and
//     out-degree counts per index.
//   - Rank / Ranks: damped power iteration with uniform redistribution of
//     dangling mass, per-pass renormalization and an L1 convergence test.
//   - Clear: drops every node and edge while keeping the pre-sized buffers.
//
// Why:
//   - Rank pages of a crawl, packages of a dependency graph, accounts of a
//     follower graph, without first materialising a full graph structure.
//   - Ingest identifiers as they arrive (sparse, unordered, huge values)
//     and still compute over dense slices.
//
// Algorithm (one pass, d = following probability, n = node count):
//
//	dangling  = Σ p[j] for every j with outDegree[j] == 0
//	next[i]   = d * (Σ_{j ∈ in(i)} p[j]/outDegree[j] + dangling/n) + (1-d)/n
//	next      = next / Σ next
//	change    = Σ |p[i] - next[i]|
//
// Passes repeat until change ≤ tolerance. The first pass always runs.
//
// Parallelism:
//
// Each pass is split into contiguous index chunks that run as fork-join
// tasks (WithWorkers). Every task writes only its own slots of the next
// vector and reads only the previous one; partial sums are combined in
// chunk order, so scores are bit-for-bit reproducible for a fixed worker
// count. Small graphs run inline.
//
// Concurrency:
//
// Link, Rank and Clear are synchronous and are not safe for concurrent use;
// callers serialise access to one Engine.
//
// Complexity:
//
//   - Link:  O(1) amortized.
//   - Rank:  O(k·(V+E)) time for k passes, O(V) extra memory.
//   - Clear: O(V).
//
// Errors:
//
//   - ErrCapacityExceeded   a new identifier needs an index beyond capacity
//     (the concrete error is *CapacityError).
//   - ErrInvalidDamping     following probability is NaN or outside [0,1].
//   - ErrInvalidTolerance   tolerance is NaN or negative.
//   - ErrNilCallback        Rank was given a nil callback.
package pagerank
