// Package algorithms implements the Growing-Tree maze generator, a family
// of algorithms parameterized by how the next growth cell is selected.
package algorithms

import "github.com/katalvlaran/mazer/grid"

// SelectionStrategy decides which member of the active list grows next.
type SelectionStrategy uint8

const (
	// SelectRandom grows from a uniformly chosen active cell, giving
	// Prim-flavoured mazes with many short dead ends.
	SelectRandom SelectionStrategy = iota

	// SelectNewest always grows from the most recently added cell,
	// reproducing the recursive-backtracker's long corridors.
	SelectNewest
)

// GrowingTree maintains an active list seeded with one uniformly chosen
// cell. Each round the Strategy selects an active cell; the cell carves
// into a uniformly chosen unvisited neighbor which joins the list, or is
// swap-removed once no unvisited neighbor remains. Works on every
// tessellation.
type GrowingTree struct {
	Strategy SelectionStrategy
}

// Name returns the canonical request name for the configured strategy.
func (gt GrowingTree) Name() string {
	if gt.Strategy == SelectNewest {
		return NameGrowingTreeNewest
	}
	return NameGrowingTree
}

// Supports reports true for every tessellation.
func (GrowingTree) Supports(mazeType grid.MazeType) bool { return supportsAny(mazeType) }

// Generate carves the spanning tree by strategy-driven growth.
func (gt GrowingTree) Generate(g *grid.Grid) error {
	// 1. Geometry gate, before any mutation.
	if err := rejectUnsupported(gt, g); err != nil {
		return err
	}

	// 2. Seed the active list with one uniformly chosen cell.
	cells := g.Cells()
	if len(cells) == 0 {
		return ErrEmptyList
	}
	seed := cells[g.RandIntn(len(cells))].Coords
	active := []grid.Coordinates{seed}
	visited := map[grid.Coordinates]bool{seed: true}

	for len(active) > 0 {
		// 3. Select the growth cell per strategy.
		var at int
		if gt.Strategy == SelectNewest {
			at = len(active) - 1
		} else {
			at = g.RandIntn(len(active))
		}

		cell, err := g.Cell(active[at])
		if err != nil {
			return err
		}

		// 4. Exhausted cells leave the list by swap-remove.
		next, ok := pickUnvisited(g, cell, visited)
		if !ok {
			active[at] = active[len(active)-1]
			active = active[:len(active)-1]
			continue
		}

		// 5. Carve and admit the new cell.
		if err = g.Link(cell.Coords, next); err != nil {
			return err
		}
		visited[next] = true
		active = append(active, next)
	}
	return nil
}
