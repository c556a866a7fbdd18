// Package linkrank is an in-memory PageRank engine for directed link graphs
// whose nodes are named by arbitrary uint64 identifiers.
//
// 🚀 What is linkrank?
//
//	A small toolkit that brings together:
//		• pagerank/  — the engine: dense index mapping, reverse adjacency,
//		               parallel power iteration with dangling-node handling
//		• builder/   — deterministic fixture graphs (cycle, star, random, skewed…)
//		• edgelist/  — streaming "from to" text format, gzip aware
//		• cmd/linkrank — CLI: rank, generate, version
//
// ✨ Why choose linkrank?
//
//   - Identifiers stay yours – sparse or hashed uint64 IDs map to dense indices
//   - Deterministic – fixed worker count ⇒ bit-for-bit identical scores
//   - Bounded memory – capacity fixed up front, all storage pre-sized
//   - Observable – per-pass and per-run hooks, Prometheus metrics in the CLI
//
// Quick start:
//
//	e := pagerank.New(3)
//	_ = e.Link(0, 1)
//	_ = e.Rank(0.85, 0.0001, func(id uint64, score float64) {
//		fmt.Printf("%d: %.1f%%\n", id, score*100)
//	})
//	// 0: 35.1%
//	// 1: 64.9%
//
// See the individual package docs for contracts and complexity notes.
package linkrank
