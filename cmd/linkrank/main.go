// Command linkrank ranks the nodes of a directed link graph with PageRank.
package main

func main() {
	Execute()
}
