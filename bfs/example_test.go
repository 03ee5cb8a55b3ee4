package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazer/bfs"
)

// ExampleRun layers a small lattice: breadth-first order never visits a
// node before a strictly closer one.
func ExampleRun() {
	// 3x3 lattice, nodes named "x_y", edges right and down.
	adjacency := map[string][]string{}
	link := func(a, b string) {
		adjacency[a] = append(adjacency[a], b)
		adjacency[b] = append(adjacency[b], a)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x+1 < 3 {
				link(fmt.Sprintf("%d_%d", x, y), fmt.Sprintf("%d_%d", x+1, y))
			}
			if y+1 < 3 {
				link(fmt.Sprintf("%d_%d", x, y), fmt.Sprintf("%d_%d", x, y+1))
			}
		}
	}

	res := bfs.Run("0_0", func(v string) []string { return adjacency[v] })
	fmt.Println(res.Order)
	fmt.Println("corner depth:", res.Depth["2_2"])
	// Output:
	// [0_0 1_0 0_1 2_0 1_1 0_2 2_1 1_2 2_2]
	// corner depth: 4
}

// ExampleResult_PathTo picks the fewest-hop route when two routes exist.
func ExampleResult_PathTo() {
	adjacency := map[string][]string{
		"door":   {"hall"},
		"hall":   {"door", "cellar", "stairs"},
		"cellar": {"hall", "vault"},
		"stairs": {"hall", "attic"},
		"attic":  {"stairs", "vault"},
		"vault":  {"cellar", "attic"},
	}
	res := bfs.Run("door", func(v string) []string { return adjacency[v] })

	path, ok := res.PathTo("vault")
	fmt.Println(ok, path)
	// Output: true [door hall cellar vault]
}
