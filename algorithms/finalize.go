// Package algorithms - the shared finalize pass and the Build entry point.
package algorithms

import (
	"github.com/katalvlaran/mazer/grid"
)

// Finalize annotates a carved grid:
//
//  1. breadth-first distances from the start cell are written into every
//     cell (-1 for unreachable ones);
//  2. the unique start→goal path is marked via OnSolutionPath;
//  3. every cell's open-wall cache is re-derived;
//  4. the single-active-cell invariant is asserted.
//
// Finalize is shared by all algorithms; none overrides it.
func Finalize(g *grid.Grid) error {
	if g == nil {
		return ErrGridNil
	}

	// 1. Distance annotation from start over carved passages.
	dist, err := g.Distances(g.StartCoords())
	if err != nil {
		return err
	}
	for _, cell := range g.Cells() {
		if d, ok := dist[cell.Coords]; ok {
			cell.Distance = d
		} else {
			cell.Distance = -1
		}
	}

	// 2. Solution-path marking. The path map is empty when the goal is
	// unreachable, so nothing gets marked on a broken graph.
	path, err := g.PathTo(g.StartCoords(), g.GoalCoords())
	if err != nil {
		return err
	}
	for _, cell := range g.Cells() {
		_, onPath := path[cell.Coords]
		cell.OnSolutionPath = onPath
	}

	// 3. Open-wall caches.
	g.RefreshOpenWalls()

	// 4. Exactly one active cell.
	if _, err = g.ActiveCell(); err != nil {
		return err
	}
	return nil
}

// Build runs the full lifecycle: Generate, then the shared Finalize.
func Build(gen Generator, g *grid.Grid) error {
	if gen == nil {
		return ErrGeneratorNil
	}
	if g == nil {
		return ErrGridNil
	}
	if err := gen.Generate(g); err != nil {
		return err
	}
	return Finalize(g)
}
