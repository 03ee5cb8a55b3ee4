// Package grid - reachability, distances and the perfect-maze predicate,
// all computed over the linked relation (carved passages), never over raw
// geometric adjacency.
package grid

import (
	"github.com/katalvlaran/mazer/bfs"
)

// linkedNeighbors is the bfs.NeighborFunc over carved passages. The slice
// follows canonical direction order, keeping traversal order reproducible.
func (g *Grid) linkedNeighbors(c Coordinates) []Coordinates {
	cell := g.cells[g.index(c)]
	if cell == nil {
		return nil
	}
	return cell.Linked()
}

// Distances returns the hop count from `from` to every reachable cell over
// carved passages. Fails when `from` does not resolve to a present cell.
//
// Complexity: O(V + E).
func (g *Grid) Distances(from Coordinates) (map[Coordinates]int, error) {
	if _, err := g.cellAt(from); err != nil {
		return nil, err
	}
	return bfs.Distances(from, g.linkedNeighbors), nil
}

// PathTo reconstructs the unique shortest path from `from` to `to` in the
// carved tree, as a mapping of each path cell to its distance from `from`.
// The mapping is empty when `to` is unreachable.
func (g *Grid) PathTo(from, to Coordinates) (map[Coordinates]int, error) {
	if _, err := g.cellAt(from); err != nil {
		return nil, err
	}
	if _, err := g.cellAt(to); err != nil {
		return nil, err
	}
	res := bfs.Run(from, g.linkedNeighbors)
	path, ok := res.PathTo(to)
	if !ok {
		return map[Coordinates]int{}, nil
	}
	out := make(map[Coordinates]int, len(path))
	for i, c := range path {
		out[c] = i
	}
	return out, nil
}

// ConnectedCells returns the set of cells reachable from `from` over
// carved passages, `from` included.
func (g *Grid) ConnectedCells(from Coordinates) (map[Coordinates]struct{}, error) {
	if _, err := g.cellAt(from); err != nil {
		return nil, err
	}
	return bfs.Connected(from, g.linkedNeighbors), nil
}

// IsPerfectMaze reports whether the carved passages form a spanning tree:
// every present cell reachable from start, and edge count exactly one less
// than the cell count. Present cells are counted, so tessellations with
// parity holes (Rhombic) are judged on the cells that exist.
func (g *Grid) IsPerfectMaze() (bool, error) {
	reached, err := g.ConnectedCells(g.start)
	if err != nil {
		return false, err
	}
	cellCount := g.CellCount()
	if len(reached) != cellCount {
		return false, nil
	}
	return g.EdgeCount() == cellCount-1, nil
}
