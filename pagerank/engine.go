// SPDX-License-Identifier: MIT

package pagerank

import (
	"fmt"
	"strings"
)

// maxDumpNodes caps how many per-node lines String prints.
const maxDumpNodes = 16

// Engine accumulates directed links between identifiers and ranks them.
//
// Index i in [0, Len()) belongs to exactly one identifier; indexToKey and
// keyToIndex are inverse of each other over that range.
type Engine struct {
	inLinks    [][]int        // inLinks[i] = indices j with a recorded link j→i (duplicates kept)
	outDegree  []int          // outDegree[i] = recorded links leaving i (duplicates counted)
	keyToIndex map[uint64]int // identifier → index
	indexToKey []uint64       // index → identifier

	next     int // next available index
	capacity int // immutable node bound
	edges    int // recorded links, duplicates included

	opts Options
	last Stats
}

// New returns an empty Engine able to hold up to capacity distinct
// identifiers. All index-addressed storage is allocated up front.
// Panics if capacity < 0.
func New(capacity int, opts ...Option) *Engine {
	if capacity < 0 {
		panic("pagerank: New(capacity<0)")
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Engine{
		inLinks:    make([][]int, capacity),
		outDegree:  make([]int, capacity),
		keyToIndex: make(map[uint64]int, capacity),
		indexToKey: make([]uint64, capacity),
		capacity:   capacity,
		opts:       o,
	}
}

// Link records a directed link from → to, registering either identifier on
// first sight. Repeated links are additive and self-loops are allowed.
//
// If the call needs more fresh indices than remain, it returns a
// *CapacityError and registers neither endpoint.
func (e *Engine) Link(from, to uint64) error {
	fromIdx, fromSeen := e.keyToIndex[from]
	_, toSeen := e.keyToIndex[to]

	need := 0
	if !fromSeen {
		need++
	}
	if !toSeen && to != from {
		need++
	}
	if e.next+need > e.capacity {
		return &CapacityError{Cursor: e.next, Requested: need, Capacity: e.capacity}
	}

	if !fromSeen {
		fromIdx = e.assign(from)
	}
	toIdx, ok := e.keyToIndex[to]
	if !ok {
		toIdx = e.assign(to)
	}

	e.inLinks[toIdx] = append(e.inLinks[toIdx], fromIdx)
	e.outDegree[fromIdx]++
	e.edges++

	return nil
}

// assign gives key the next free index. The caller has checked capacity.
func (e *Engine) assign(key uint64) int {
	idx := e.next
	e.keyToIndex[key] = idx
	e.indexToKey[idx] = key
	e.next++

	return idx
}

// Clear removes every node and link. Capacity and buffers are kept, so the
// engine behaves exactly like a freshly constructed one.
func (e *Engine) Clear() {
	for i := 0; i < e.next; i++ {
		e.inLinks[i] = e.inLinks[i][:0]
		e.outDegree[i] = 0
		e.indexToKey[i] = 0
	}
	clear(e.keyToIndex)
	e.next = 0
	e.edges = 0
	e.last = Stats{}
}

// Len reports how many identifiers currently hold an index.
func (e *Engine) Len() int { return e.next }

// Capacity reports the node bound fixed at construction.
func (e *Engine) Capacity() int { return e.capacity }

// Edges reports how many links were recorded since construction or the last
// Clear, duplicates included.
func (e *Engine) Edges() int { return e.edges }

// Index returns the dense index of id and whether id is registered.
func (e *Engine) Index(id uint64) (int, bool) {
	idx, ok := e.keyToIndex[id]
	return idx, ok
}

// LastStats returns the Stats of the most recent Rank call.
func (e *Engine) LastStats() Stats { return e.last }

// String dumps the engine state for debugging. Only the first few indices
// are listed.
func (e *Engine) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "pagerank.Engine{capacity=%d nodes=%d edges=%d}", e.capacity, e.next, e.edges)

	shown := e.next
	if shown > maxDumpNodes {
		shown = maxDumpNodes
	}
	for i := 0; i < shown; i++ {
		fmt.Fprintf(&sb, "\n  [%d] id=%d out=%d in=%v", i, e.indexToKey[i], e.outDegree[i], e.inLinks[i])
	}
	if e.next > shown {
		fmt.Fprintf(&sb, "\n  ... (%d more)", e.next-shown)
	}

	return sb.String()
}
