// Package render - solution path extraction for animated drawing.
package render

import (
	"sort"

	"github.com/katalvlaran/mazer/grid"
)

// SolutionPathOrder collects the coordinates of every finalized cell on
// the start-to-goal path that the interactive cursor has not walked yet,
// ordered by distance from the start. Renderers replay the slice to
// animate the solution front to back; cells the player already visited
// are omitted so the animation picks up where they stopped.
func SolutionPathOrder(cells []*grid.Cell) []grid.Coordinates {
	remaining := make([]*grid.Cell, 0, len(cells))
	for _, cell := range cells {
		if cell.OnSolutionPath && !cell.IsVisited {
			remaining = append(remaining, cell)
		}
	}
	sort.Slice(remaining, func(i, j int) bool {
		return remaining[i].Distance < remaining[j].Distance
	})

	path := make([]grid.Coordinates, len(remaining))
	for i, cell := range remaining {
		path[i] = cell.Coords
	}
	return path
}
