// Package algorithms implements the Sidewinder maze generator: row runs
// with random northward closures.
package algorithms

import "github.com/katalvlaran/mazer/grid"

// Sidewinder walks each row left to right while accumulating a "run" of
// horizontally linked cells. At every cell it either extends the run east
// or closes it by carving north from a uniformly chosen run member. Runs
// always close at the east boundary; the top row never carves north and
// so becomes a single corridor. Orthogonal lattices only.
type Sidewinder struct{}

// Name returns the canonical request name.
func (Sidewinder) Name() string { return NameSidewinder }

// Supports reports true for Orthogonal grids only.
func (Sidewinder) Supports(mazeType grid.MazeType) bool { return mazeType == grid.Orthogonal }

// Generate carves the spanning tree row by row.
func (sw Sidewinder) Generate(g *grid.Grid) error {
	// 1. Geometry gate, before any mutation.
	if err := rejectUnsupported(sw, g); err != nil {
		return err
	}

	run := make([]grid.Coordinates, 0, g.Width())
	for y := 0; y < g.Height(); y++ {
		run = run[:0]
		for x := 0; x < g.Width(); x++ {
			cell, err := g.Cell(grid.Coordinates{X: x, Y: y})
			if err != nil {
				return err
			}
			run = append(run, cell.Coords)

			_, hasUp := cell.Neighbor(grid.Up)
			east, hasEast := cell.Neighbor(grid.Right)

			// 2. Close at the east boundary, or by coin flip when a
			// northward carve is possible. The top row has no north
			// neighbor, so it only ever closes at the boundary.
			closeRun := !hasEast || (hasUp && g.RandBool())
			if !closeRun {
				// 3. Extend the run eastward.
				if err = g.Link(cell.Coords, east); err != nil {
					return err
				}
				continue
			}

			if hasUp {
				// 4. Carve north from a uniformly chosen run member.
				member, cellErr := g.Cell(run[g.RandIntn(len(run))])
				if cellErr != nil {
					return cellErr
				}
				north, ok := member.Neighbor(grid.Up)
				if !ok {
					return ErrEmptyList
				}
				if err = g.Link(member.Coords, north); err != nil {
					return err
				}
			}
			run = run[:0]
		}
	}
	return nil
}
