// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_wikipedia.go — the 11-node graph from the Wikipedia PageRank article
// (File:PageRanks-Example.svg). Index 0 is "A", 1 is "B", …, 10 is "K".
//
// With d = 0.85 the published scores are
// B 38.4%, C 34.3%, E 8.1%, D 3.9%, F 3.9%, A 3.3%, G..K 1.6%.

package builder

const methodWikipedia = "Wikipedia"

// wikipediaLinks lists the 17 links of the reference graph in emission order.
var wikipediaLinks = [...][2]int{
	{1, 2}, {2, 1},
	{3, 0}, {3, 1},
	{4, 3}, {4, 1}, {4, 5},
	{5, 4}, {5, 1},
	{6, 1}, {6, 4},
	{7, 1}, {7, 4},
	{8, 1}, {8, 4},
	{9, 4},
	{10, 4},
}

// WikipediaNodes is the node count of the Wikipedia fixture.
const WikipediaNodes = 11

// Wikipedia returns a Constructor emitting the reference graph.
func Wikipedia() Constructor {
	return func(l Linker, cfg builderConfig) error {
		for _, e := range wikipediaLinks {
			if err := emit(methodWikipedia, l, cfg, e[0], e[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
