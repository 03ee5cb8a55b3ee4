// Package grid - geometry-specific cell allocation and neighbor assignment.
//
// Conventions (documented here because downstream wall-segment rendering
// depends on them):
//
//   - Delta: the triangle at (x,y) points up (Normal) iff x+y is even.
//     Normal triangles neighbor LowerLeft, LowerRight and Down; Inverted
//     ones neighbor UpperLeft, UpperRight and Up, so every label matches
//     the geometric side it crosses.
//   - Sigma: flat-top hexagons in odd-q offset layout; odd columns sit half
//     a cell lower, so the four slanted directions shift with column parity.
//   - Polar: x runs along the ring, y across rings. Rings do not wrap: the
//     first and last column of a ring are not joined.
//   - Upsilon: octagons occupy slots with x+y even and see all eight
//     compass directions; squares occupy the rest and see the cardinals.
//     Diagonals always land on octagons, which is exactly the
//     octagon-square tiling's adjacency.
//   - Rhombic: the diamond lattice. Only slots with x+y even hold cells;
//     neighbors are the four diagonals.
//   - Rhombille: tumbling blocks. The flat-top hexagon in column x, hex row
//     y/3 is split into the north-east (y%3==0), west (y%3==1) and
//     south-east (y%3==2) rhombus; each rhombus borders two siblings inside
//     its hexagon and two rhombi of adjacent hexagons.
package grid

import "fmt"

// buildCells allocates the cell array for the grid's tessellation.
func (g *Grid) buildCells() error {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			coords := Coordinates{X: x, Y: y}
			switch g.mazeType {
			case Delta:
				orientation := Normal
				if (x+y)%2 != 0 {
					orientation = Inverted
				}
				cell, err := NewTriangleCell(coords, Delta, orientation)
				if err != nil {
					return err
				}
				g.cells[g.index(coords)] = cell
			case Rhombic:
				if (x+y)%2 != 0 {
					continue // parity hole: slot stays empty
				}
				cell, err := NewCell(coords, Rhombic)
				if err != nil {
					return err
				}
				g.cells[g.index(coords)] = cell
			default:
				cell, err := NewCell(coords, g.mazeType)
				if err != nil {
					return err
				}
				g.cells[g.index(coords)] = cell
			}
		}
	}
	return nil
}

// assignNeighbors populates every cell's direction-labelled neighbor map
// from geometry alone.
func (g *Grid) assignNeighbors() error {
	for _, cell := range g.cells {
		if cell == nil {
			continue
		}
		switch g.mazeType {
		case Orthogonal:
			g.assignOrthogonal(cell)
		case Delta:
			g.assignDelta(cell)
		case Sigma:
			g.assignSigma(cell)
		case Polar:
			g.assignPolar(cell)
		case Rhombille:
			g.assignRhombille(cell)
		case Upsilon:
			g.assignUpsilon(cell)
		case Rhombic:
			g.assignRhombic(cell)
		}
	}
	return nil
}

// put stores target under d when it addresses a present cell.
func (g *Grid) put(cell *Cell, d Direction, target Coordinates) {
	if !g.inBounds(target) {
		return
	}
	if g.cells[g.index(target)] == nil {
		return
	}
	cell.neighbors[d] = target
}

func (g *Grid) assignOrthogonal(cell *Cell) {
	x, y := cell.Coords.X, cell.Coords.Y
	g.put(cell, Up, Coordinates{X: x, Y: y - 1})
	g.put(cell, Right, Coordinates{X: x + 1, Y: y})
	g.put(cell, Down, Coordinates{X: x, Y: y + 1})
	g.put(cell, Left, Coordinates{X: x - 1, Y: y})
}

func (g *Grid) assignDelta(cell *Cell) {
	x, y := cell.Coords.X, cell.Coords.Y
	if cell.Orientation == Normal {
		g.put(cell, LowerLeft, Coordinates{X: x - 1, Y: y})
		g.put(cell, LowerRight, Coordinates{X: x + 1, Y: y})
		g.put(cell, Down, Coordinates{X: x, Y: y + 1})
		return
	}
	g.put(cell, UpperLeft, Coordinates{X: x - 1, Y: y})
	g.put(cell, UpperRight, Coordinates{X: x + 1, Y: y})
	g.put(cell, Up, Coordinates{X: x, Y: y - 1})
}

func (g *Grid) assignSigma(cell *Cell) {
	x, y := cell.Coords.X, cell.Coords.Y
	for _, d := range validDirections[Sigma] {
		dx, dy, ok := d.HexOffset(x)
		if !ok {
			continue
		}
		g.put(cell, d, Coordinates{X: x + dx, Y: y + dy})
	}
}

func (g *Grid) assignPolar(cell *Cell) {
	x, y := cell.Coords.X, cell.Coords.Y
	g.put(cell, Inward, Coordinates{X: x, Y: y - 1})
	g.put(cell, Outward, Coordinates{X: x, Y: y + 1})
	g.put(cell, Clockwise, Coordinates{X: x + 1, Y: y})
	g.put(cell, CounterClockwise, Coordinates{X: x - 1, Y: y})
}

func (g *Grid) assignUpsilon(cell *Cell) {
	x, y := cell.Coords.X, cell.Coords.Y
	g.put(cell, Up, Coordinates{X: x, Y: y - 1})
	g.put(cell, Right, Coordinates{X: x + 1, Y: y})
	g.put(cell, Down, Coordinates{X: x, Y: y + 1})
	g.put(cell, Left, Coordinates{X: x - 1, Y: y})
	if (x+y)%2 != 0 {
		return // squares stop at the cardinals
	}
	g.put(cell, UpperRight, Coordinates{X: x + 1, Y: y - 1})
	g.put(cell, LowerRight, Coordinates{X: x + 1, Y: y + 1})
	g.put(cell, LowerLeft, Coordinates{X: x - 1, Y: y + 1})
	g.put(cell, UpperLeft, Coordinates{X: x - 1, Y: y - 1})
}

func (g *Grid) assignRhombic(cell *Cell) {
	x, y := cell.Coords.X, cell.Coords.Y
	g.put(cell, UpperRight, Coordinates{X: x + 1, Y: y - 1})
	g.put(cell, LowerRight, Coordinates{X: x + 1, Y: y + 1})
	g.put(cell, LowerLeft, Coordinates{X: x - 1, Y: y + 1})
	g.put(cell, UpperLeft, Coordinates{X: x - 1, Y: y - 1})
}

// hexNeighbor returns the odd-q offset neighbor of the hexagon (hx,hy)
// along one of the six hex sides, reusing the Sigma offset table.
func hexNeighbor(hx, hy int, d Direction) (int, int) {
	dx, dy, _ := d.HexOffset(hx)
	return hx + dx, hy + dy
}

func (g *Grid) assignRhombille(cell *Cell) {
	hx, hy, k := cell.Coords.X, cell.Coords.Y/3, cell.Coords.Y%3
	at := func(hexX, hexY, rhombus int) Coordinates {
		return Coordinates{X: hexX, Y: 3*hexY + rhombus}
	}
	switch k {
	case 0: // north-east rhombus
		nx, ny := hexNeighbor(hx, hy, Up)
		g.put(cell, Up, at(nx, ny, 2))
		nx, ny = hexNeighbor(hx, hy, UpperRight)
		g.put(cell, UpperRight, at(nx, ny, 1))
		g.put(cell, Down, at(hx, hy, 2))
		g.put(cell, LowerLeft, at(hx, hy, 1))
	case 1: // west rhombus
		g.put(cell, UpperRight, at(hx, hy, 0))
		g.put(cell, LowerRight, at(hx, hy, 2))
		nx, ny := hexNeighbor(hx, hy, UpperLeft)
		g.put(cell, UpperLeft, at(nx, ny, 2))
		nx, ny = hexNeighbor(hx, hy, LowerLeft)
		g.put(cell, LowerLeft, at(nx, ny, 0))
	case 2: // south-east rhombus
		g.put(cell, Up, at(hx, hy, 0))
		g.put(cell, UpperLeft, at(hx, hy, 1))
		nx, ny := hexNeighbor(hx, hy, Down)
		g.put(cell, Down, at(nx, ny, 0))
		nx, ny = hexNeighbor(hx, hy, LowerRight)
		g.put(cell, LowerRight, at(nx, ny, 1))
	}
}

// checkIsolation walks the neighbor graph and rejects geometries whose
// multi-cell grids are not fully connected: a spanning tree cannot exist
// and the random-walk algorithms would never terminate on them.
func (g *Grid) checkIsolation() error {
	cells := g.Cells()
	if len(cells) <= 1 {
		return nil
	}
	reached := make(map[Coordinates]struct{}, len(cells))
	queue := []Coordinates{cells[0].Coords}
	reached[cells[0].Coords] = struct{}{}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cell := g.cells[g.index(cur)]
		for _, n := range cell.neighbors {
			if _, seen := reached[n]; seen {
				continue
			}
			reached[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	if len(reached) != len(cells) {
		for _, cell := range cells {
			if _, ok := reached[cell.Coords]; !ok {
				return fmt.Errorf("%w: cell %s is unreachable in a %s grid of %dx%d",
					ErrNoValidNeighbor, cell.Coords, g.mazeType, g.width, g.height)
			}
		}
	}
	return nil
}
