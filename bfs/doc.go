// Package bfs provides breadth-first traversal utilities parameterized by
// a neighbor function, returning unweighted shortest-path distances,
// parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (hop count) from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (hops) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - PathTo reconstructs the forward-ordered start→dest path.
//   - Distances and Connected are shorthand entry points for the two most
//     common questions: "how far is everything" and "what is reachable".
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs and level layering.
//   - Foundation for maze distance annotation and solution-path marking,
//     where the graph is the linked-cell relation of a grid.
//
// Genericity
//
//	The node type is any comparable type; the graph is supplied as a plain
//	neighbor function N(node) → []node. Nothing is assumed about the shape
//	of the underlying structure.
//
// Determinism
//
//	The visit sequence follows the order the neighbor function returns
//	candidates in. Supply a deterministically ordered neighbor function to
//	obtain a fully reproducible Order; Depth and tree paths do not depend
//	on it.
//
// Complexity (V = nodes reached, E = edges seen)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map)
//
// Usage
//
//	res := bfs.Run(start, neighbors)
//	dist := res.Depth[goal]
//	path, ok := res.PathTo(goal)
//
// See grid.Distances and grid.PathTo for the maze-facing wrappers.
package bfs
