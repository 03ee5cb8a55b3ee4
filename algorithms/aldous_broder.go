// Package algorithms implements the Aldous-Broder maze generator: an
// unbiased uniform spanning tree via plain random walk.
package algorithms

import "github.com/katalvlaran/mazer/grid"

// AldousBroder random-walks the whole grid from a uniformly chosen cell,
// carving a passage each time the walk first enters a cell. The walk ends
// once every cell has been entered. Samples spanning trees uniformly at
// the cost of an unbounded (expected O(n·log n) on lattices) step count.
// Works on every tessellation.
type AldousBroder struct{}

// Name returns the canonical request name.
func (AldousBroder) Name() string { return NameAldousBroder }

// Supports reports true for every tessellation.
func (AldousBroder) Supports(mazeType grid.MazeType) bool { return supportsAny(mazeType) }

// Generate carves the spanning tree by exhaustive random walk.
func (ab AldousBroder) Generate(g *grid.Grid) error {
	// 1. Geometry gate, before any mutation.
	if err := rejectUnsupported(ab, g); err != nil {
		return err
	}

	// 2. Start the walk at a uniformly chosen cell.
	cells := g.Cells()
	if len(cells) == 0 {
		return ErrEmptyList
	}
	visited := make(map[grid.Coordinates]bool, len(cells))
	current := cells[g.RandIntn(len(cells))].Coords
	visited[current] = true

	// 3. Walk until every cell has been entered at least once.
	for len(visited) < len(cells) {
		cell, err := g.Cell(current)
		if err != nil {
			return err
		}
		neighbors := cell.Neighbors()
		if len(neighbors) == 0 {
			// Construction guarantees connectivity; an isolated cell
			// here means the grid was corrupted after construction.
			return ErrEmptyList
		}

		// 4. Step to a uniform neighbor; carve on first entry.
		next := neighbors[g.RandIntn(len(neighbors))]
		if !visited[next] {
			if err = g.Link(current, next); err != nil {
				return err
			}
			visited[next] = true
		}
		current = next
	}
	return nil
}
