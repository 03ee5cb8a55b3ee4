// Package render - wall segments for triangle and hexagon cells.
package render

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mazer/grid"
)

// Point is a vertex of a cell outline in unit-cell space. Callers scale
// and translate the points into whatever canvas they draw on.
type Point struct {
	X float64
	Y float64
}

// Segment names one wall of a cell by the indices of its endpoints in
// the cell's unit-point slice (TriangleUnitPoints or HexagonUnitPoints).
type Segment struct {
	From int
	To   int
}

// TriangleUnitPoints returns the three outline vertices of a Delta cell
// with unit edge length. Point-up (Normal) triangles carry the apex at
// index 0 and the base corners at 1 and 2; point-down (Inverted)
// triangles mirror that layout vertically:
//
//	Normal               Inverted
//	    0                1-------2
//	   / \                \     /
//	  /   \                \   /
//	 1-----2                 0
func TriangleUnitPoints(o grid.CellOrientation) [3]Point {
	h := math.Sqrt(3) / 2
	if o == grid.Inverted {
		return [3]Point{{0.5, h}, {0, 0}, {1, 0}}
	}
	return [3]Point{{0.5, 0}, {0, h}, {1, h}}
}

// HexagonUnitPoints returns the six outline vertices of a Sigma cell as
// a flat-top hexagon of unit edge length, clockwise from the top-left
// corner:
//
//	  0-----1
//	 /       \
//	5         2
//	 \       /
//	  4-----3
func HexagonUnitPoints() [6]Point {
	h := math.Sqrt(3)
	return [6]Point{
		{0.5, 0}, {1.5, 0}, {2, h / 2},
		{1.5, h}, {0.5, h}, {0, h / 2},
	}
}

// deltaSides maps each triangle side to the direction a corridor through
// it would take. Sides appear in a fixed order so the output is stable.
var deltaSides = map[grid.CellOrientation][3]struct {
	seg Segment
	dir grid.Direction
}{
	grid.Normal: {
		{Segment{0, 1}, grid.LowerLeft},
		{Segment{0, 2}, grid.LowerRight},
		{Segment{1, 2}, grid.Down},
	},
	grid.Inverted: {
		{Segment{0, 1}, grid.UpperLeft},
		{Segment{0, 2}, grid.UpperRight},
		{Segment{1, 2}, grid.Up},
	},
}

// sigmaSides maps each hexagon direction to the outline segment that
// closes it off, in the canonical Sigma direction order.
var sigmaSides = map[grid.Direction]Segment{
	grid.Up:         {0, 1},
	grid.UpperRight: {1, 2},
	grid.LowerRight: {2, 3},
	grid.Down:       {3, 4},
	grid.LowerLeft:  {4, 5},
	grid.UpperLeft:  {5, 0},
}

// DeltaWallSegments reports which of a triangle cell's three sides are
// walls. A side is a wall unless the cell has an open corridor in that
// side's direction, so lattice-boundary sides are always walls.
func DeltaWallSegments(cell *grid.Cell) ([]Segment, error) {
	if cell == nil || cell.MazeType != grid.Delta {
		return nil, fmt.Errorf("%w: triangle segments need a Delta cell", ErrUnsupportedMazeType)
	}

	open := make(map[grid.Direction]bool, len(cell.OpenWalls))
	for _, d := range cell.OpenWalls {
		open[d] = true
	}

	walls := make([]Segment, 0, 3)
	for _, side := range deltaSides[cell.Orientation] {
		if !open[side.dir] {
			walls = append(walls, side.seg)
		}
	}
	return walls, nil
}

// SigmaWallSegments reports which of a hexagon cell's six sides are
// walls. Only sides with a neighboring cell count: the lattice boundary
// is left open so heatmap renderings bleed to the canvas edge, matching
// the hexagonal art style this renderer was built for. A side shared by
// two consecutive solution-path cells is skipped as well, which leaves a
// visible gap along the solved route.
func SigmaWallSegments(g *grid.Grid, cell *grid.Cell) ([]Segment, error) {
	if g == nil || cell == nil || cell.MazeType != grid.Sigma {
		return nil, fmt.Errorf("%w: hexagon segments need a Sigma cell", ErrUnsupportedMazeType)
	}

	walls := make([]Segment, 0, 6)
	for _, d := range grid.ValidDirections(grid.Sigma) {
		coords, ok := cell.Neighbor(d)
		if !ok {
			continue
		}
		neighbor, err := g.Cell(coords)
		if err != nil {
			return nil, err
		}
		if onSolvedRoute(cell, neighbor) {
			continue
		}
		if !cell.IsLinked(coords) {
			walls = append(walls, sigmaSides[d])
		}
	}
	return walls, nil
}

// onSolvedRoute reports whether two adjacent cells are consecutive steps
// of the solution path.
func onSolvedRoute(a, b *grid.Cell) bool {
	if !a.OnSolutionPath || !b.OnSolutionPath {
		return false
	}
	diff := a.Distance - b.Distance
	return diff == 1 || diff == -1
}
