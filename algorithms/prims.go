// Package algorithms implements randomized Prim's maze generation: frontier
// expansion ordered by a min-heap of random weights.
package algorithms

import (
	"container/heap"

	"github.com/katalvlaran/mazer/grid"
)

// Prims grows the tree from a uniformly chosen cell. Unvisited cells
// bordering the tree sit in a priority queue keyed by random integer
// weights; each round pops the lightest frontier cell, links it to a
// uniformly chosen visited neighbor, and enqueues its own unvisited
// neighbors. Weight ties resolve by insertion order, keeping runs
// reproducible for a fixed seed. Works on every tessellation.
type Prims struct{}

// Name returns the canonical request name.
func (Prims) Name() string { return NamePrims }

// Supports reports true for every tessellation.
func (Prims) Supports(mazeType grid.MazeType) bool { return supportsAny(mazeType) }

// Generate carves the spanning tree by weighted frontier expansion.
func (p Prims) Generate(g *grid.Grid) error {
	// 1. Geometry gate, before any mutation.
	if err := rejectUnsupported(p, g); err != nil {
		return err
	}

	cells := g.Cells()
	if len(cells) == 0 {
		return ErrEmptyList
	}
	visited := make(map[grid.Coordinates]bool, len(cells))
	inFrontier := make(map[grid.Coordinates]bool)
	pq := &frontierPQ{}
	heap.Init(pq)
	pushes := 0

	// enqueue admits a cell to the frontier once, with a fresh weight.
	enqueue := func(c grid.Coordinates) {
		if visited[c] || inFrontier[c] {
			return
		}
		heap.Push(pq, frontierItem{coords: c, weight: g.RandIntn(len(cells)), index: pushes})
		pushes++
		inFrontier[c] = true
	}

	// 2. Root the tree at a uniformly chosen cell.
	root, err := g.Cell(cells[g.RandIntn(len(cells))].Coords)
	if err != nil {
		return err
	}
	visited[root.Coords] = true
	for _, n := range root.Neighbors() {
		enqueue(n)
	}

	// 3. Expand: always absorb the lightest frontier cell.
	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem)
		delete(inFrontier, item.coords)

		cell, cellErr := g.Cell(item.coords)
		if cellErr != nil {
			return cellErr
		}

		// 4. Attach to a uniform visited neighbor. A frontier cell
		// borders the tree by construction.
		target, ok := pickVisited(g, cell, visited)
		if !ok {
			return ErrEmptyList
		}
		if err = g.Link(item.coords, target); err != nil {
			return err
		}
		visited[item.coords] = true

		// 5. The absorbed cell exposes new frontier.
		for _, n := range cell.Neighbors() {
			enqueue(n)
		}
	}
	return nil
}
