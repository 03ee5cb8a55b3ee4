// Package algorithms implements the Recursive-Division maze generator:
// the one wall-adder of the suite, carving by subdivision of an initially
// open grid.
package algorithms

import "github.com/katalvlaran/mazer/grid"

// RecursiveDivision links every adjacency up front, then recursively
// partitions the grid: each region splits along its longer axis, every
// link crossing the split line is removed except one uniformly chosen
// passage, and both halves recurse until regions shrink to a single cell.
//
// Supported on Orthogonal and Rhombic lattices. The rhombic lattice is a
// square lattice rotated 45 degrees, so its regions divide along the
// rotated axes u=(x+y)/2, v=(y-x)/2; splitting along the raw x/y axes
// would strand 1-wide diamond strips with no internal links.
type RecursiveDivision struct{}

// Name returns the canonical request name.
func (RecursiveDivision) Name() string { return NameRecursiveDivision }

// Supports reports true for Orthogonal and Rhombic grids.
func (RecursiveDivision) Supports(mazeType grid.MazeType) bool {
	return mazeType == grid.Orthogonal || mazeType == grid.Rhombic
}

// Generate opens the whole grid and then divides it into a spanning tree.
func (rd RecursiveDivision) Generate(g *grid.Grid) error {
	// 1. Geometry gate, before any mutation.
	if err := rejectUnsupported(rd, g); err != nil {
		return err
	}

	// 2. Start fully connected: every wall open.
	g.LinkAllNeighbors()

	// 3. Divide the full cell set recursively.
	region := make([]grid.Coordinates, 0, g.CellCount())
	for _, cell := range g.Cells() {
		region = append(region, cell.Coords)
	}
	return rd.divide(g, region)
}

// divide splits one region and recurses into the halves. The region slice
// is in row-major order and every link internal to the region is intact
// on entry; both properties are preserved for the recursive calls.
func (rd RecursiveDivision) divide(g *grid.Grid, region []grid.Coordinates) error {
	if len(region) <= 1 {
		return nil
	}

	// 1. Region extents in division space.
	minU, maxU, minV, maxV := regionBounds(g.MazeType(), region)
	uExtent := maxU - minU + 1
	vExtent := maxV - minV + 1

	// 2. Split along the longer axis; ties break at random. An axis of
	// extent 1 cannot split, so the other one is forced.
	var splitU bool
	switch {
	case uExtent > vExtent:
		splitU = true
	case vExtent > uExtent:
		splitU = false
	default:
		splitU = g.RandBool()
	}
	if splitU && uExtent < 2 {
		splitU = false
	} else if !splitU && vExtent < 2 {
		splitU = true
	}

	// 3. Pick the split line: a boundary between two consecutive
	// division-space columns (or rows), uniformly at random.
	var boundary int
	if splitU {
		boundary = minU + 1 + g.RandIntn(uExtent-1)
	} else {
		boundary = minV + 1 + g.RandIntn(vExtent-1)
	}

	// 4. Partition the region, preserving scan order.
	var first, second []grid.Coordinates
	side := make(map[grid.Coordinates]bool, len(region))
	for _, c := range region {
		u, v := divisionAxes(g.MazeType(), c)
		at := v
		if splitU {
			at = u
		}
		if at < boundary {
			first = append(first, c)
			side[c] = true
		} else {
			second = append(second, c)
			side[c] = false
		}
	}

	// 5. Collect the links crossing the split line, in scan order.
	var crossing []edge
	for _, c := range first {
		cell, err := g.Cell(c)
		if err != nil {
			return err
		}
		for _, n := range cell.Neighbors() {
			if firstHalf, inRegion := side[n]; inRegion && !firstHalf {
				crossing = append(crossing, edge{a: c, b: n})
			}
		}
	}
	if len(crossing) == 0 {
		// A connected region always has a crossing link; reaching this
		// means the region invariant was broken upstream.
		return ErrEmptyList
	}

	// 6. Wall off the line, sparing one uniformly chosen passage.
	passage := g.RandIntn(len(crossing))
	for i, e := range crossing {
		if i == passage {
			continue
		}
		if err := g.Unlink(e.a, e.b); err != nil {
			return err
		}
	}

	// 7. Recurse into both halves.
	if err := rd.divide(g, first); err != nil {
		return err
	}
	return rd.divide(g, second)
}

// divisionAxes maps a cell to the coordinate system regions divide in:
// the identity for Orthogonal, the 45-degree-rotated lattice axes for
// Rhombic. Both sums are even on rhombic cells, so the division is exact.
func divisionAxes(mazeType grid.MazeType, c grid.Coordinates) (u, v int) {
	if mazeType == grid.Rhombic {
		return (c.X + c.Y) / 2, (c.Y - c.X) / 2
	}
	return c.X, c.Y
}

// regionBounds returns the division-space bounding box of a region.
func regionBounds(mazeType grid.MazeType, region []grid.Coordinates) (minU, maxU, minV, maxV int) {
	for i, c := range region {
		u, v := divisionAxes(mazeType, c)
		if i == 0 || u < minU {
			minU = u
		}
		if i == 0 || u > maxU {
			maxU = u
		}
		if i == 0 || v < minV {
			minV = v
		}
		if i == 0 || v > maxV {
			maxV = v
		}
	}
	return minU, maxU, minV, maxV
}
