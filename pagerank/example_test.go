package pagerank_test

import (
	"fmt"

	"github.com/katalvlaran/linkrank/builder"
	"github.com/katalvlaran/linkrank/pagerank"
)

// ExampleEngine_Rank ranks a single link. The target collects the mass of
// the source; the dangling target spreads its own mass back evenly.
func ExampleEngine_Rank() {
	eng := pagerank.New(3)
	if err := eng.Link(0, 1); err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = eng.Rank(0.85, 0.0001, func(id uint64, score float64) {
		fmt.Printf("%d: %.1f%%\n", id, 100*score)
	})
	// Output:
	// 0: 35.1%
	// 1: 64.9%
}

// ExampleTop reproduces the head of the Wikipedia PageRank example.
func ExampleTop() {
	eng := pagerank.New(builder.WikipediaNodes)
	if err := builder.Build(eng, nil, builder.Wikipedia()); err != nil {
		fmt.Println("error:", err)
		return
	}

	scores, err := eng.Ranks(0.85, 0.0001)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range pagerank.Top(scores, 3) {
		fmt.Printf("%c %.1f%%\n", 'A'+rune(s.ID), 100*s.Value)
	}
	// Output:
	// B 38.4%
	// C 34.3%
	// E 8.1%
}

// ExampleCapacityError shows the error returned once every index is taken.
func ExampleCapacityError() {
	eng := pagerank.New(2)
	_ = eng.Link(10, 20)

	err := eng.Link(20, 30)
	fmt.Println(err)
	// Output:
	// pagerank: exceeded the capacity of nodes, current available index: 2, capacity: 2
}
