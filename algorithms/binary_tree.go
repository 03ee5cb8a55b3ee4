// Package algorithms implements the Binary-Tree maze generator: the
// simplest of the suite, carving one passage per cell toward north or east.
package algorithms

import "github.com/katalvlaran/mazer/grid"

// BinaryTree visits every cell in row-major order and carves to its north
// or east neighbor with uniform probability, falling back to whichever
// exists. The north-east corner carves nothing. Orthogonal lattices only:
// the north/east pair is meaningless on other tessellations.
type BinaryTree struct{}

// Name returns the canonical request name.
func (BinaryTree) Name() string { return NameBinaryTree }

// Supports reports true for Orthogonal grids only.
func (BinaryTree) Supports(mazeType grid.MazeType) bool { return mazeType == grid.Orthogonal }

// Generate carves the spanning tree. One coin flip per interior cell.
func (bt BinaryTree) Generate(g *grid.Grid) error {
	// 1. Geometry gate, before any mutation.
	if err := rejectUnsupported(bt, g); err != nil {
		return err
	}

	// 2. Row-major sweep: each cell links up or right.
	for _, cell := range g.Cells() {
		up, hasUp := cell.Neighbor(grid.Up)
		right, hasRight := cell.Neighbor(grid.Right)

		var target grid.Coordinates
		switch {
		case hasUp && hasRight:
			if g.RandBool() {
				target = up
			} else {
				target = right
			}
		case hasUp:
			target = up
		case hasRight:
			target = right
		default:
			// North-east corner: nothing to carve.
			continue
		}

		if err := g.Link(cell.Coords, target); err != nil {
			return err
		}
	}
	return nil
}
