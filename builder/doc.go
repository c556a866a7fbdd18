// SPDX-License-Identifier: MIT

// Package builder produces deterministic link streams for tests, examples,
// benchmarks and the generate command.
//
// A Constructor emits directed links into any Linker (a *pagerank.Engine,
// an edge-list writer, an in-memory Collector). Constructors compose: Build
// runs them in order against one Linker, so fixtures such as "star plus a
// loop on the hub" are two constructors, not a special case.
//
// Topologies:
//
//   - Cycle(n)              i → (i+1)%n
//   - Path(n)               i → i+1
//   - Star(n)               every leaf 1..n-1 → hub 0
//   - Loop(i)               i → i
//   - Wheel(n)              rim cycle 0..n-2, hub n-1 linked both ways to the rim
//   - Grid(rows, cols)      lattice directed right and down
//   - Complete(n)           every ordered pair i ≠ j
//   - CompleteBipartite(a, b) every left node → every right node
//   - RandomSparse(n, p)    every ordered pair i ≠ j with probability p
//   - RandomRegular(n, d)   every node links to d distinct random others
//   - Skewed(n, maxOut, hot) random out-degree in [0,maxOut), targets past
//     80% of n are redirected to one of the first hot nodes
//   - Wikipedia()           the 11-node PageRank reference graph
//
// Node identifiers come from an IDFn (index → uint64). The default maps i to
// uint64(i); ScatteredIDs spreads indices over the whole uint64 range to
// exercise non-contiguous identifiers.
//
// Determinism: for equal options, seed and constructor order, the emitted
// link sequence is identical.
//
// Errors:
//
//   - ErrTooFewVertices       n below the constructor minimum
//   - ErrInvalidProbability   p outside [0,1]
//   - ErrNeedRandSource       stochastic constructor without WithSeed/WithRand
//   - ErrInvalidDegree        d, maxOut or hot outside their domain
//   - ErrConstructFailed      nil constructor or nil Linker
//   - any error returned by the Linker, wrapped with constructor context
package builder
