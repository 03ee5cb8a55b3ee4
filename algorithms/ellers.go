// Package algorithms implements Eller's maze generator: one row in memory
// at a time, sets merged sideways and carried downward.
package algorithms

import "github.com/katalvlaran/mazer/grid"

// Ellers sweeps rows top to bottom while tracking a set id per cell of the
// current row. Within a row, horizontally adjacent cells in different sets
// join with uniform probability, merging their sets. Before descending,
// every set carves at least one downward passage, carrying its id into the
// next row; uncarried cells start fresh sets. The final row joins all
// remaining distinct sets unconditionally, which is what guarantees a
// single connected tree. Orthogonal lattices only.
type Ellers struct{}

// Name returns the canonical request name.
func (Ellers) Name() string { return NameEllers }

// Supports reports true for Orthogonal grids only.
func (Ellers) Supports(mazeType grid.MazeType) bool { return mazeType == grid.Orthogonal }

// Generate carves the spanning tree one row at a time.
func (e Ellers) Generate(g *grid.Grid) error {
	// 1. Geometry gate, before any mutation.
	if err := rejectUnsupported(e, g); err != nil {
		return err
	}

	width, height := g.Width(), g.Height()

	// setID holds the current row's set per column.
	setID := make([]int, width)
	nextID := 0
	for x := range setID {
		setID[x] = nextID
		nextID++
	}

	for y := 0; y < height; y++ {
		last := y == height-1

		// 2. Horizontal joins. Distinct sets join by coin flip, except on
		// the last row where every remaining boundary joins.
		for x := 0; x+1 < width; x++ {
			if setID[x] == setID[x+1] {
				continue
			}
			if !last && !g.RandBool() {
				continue
			}
			absorbed := setID[x+1]
			for i := range setID {
				if setID[i] == absorbed {
					setID[i] = setID[x]
				}
			}
			if err := g.Link(grid.Coordinates{X: x, Y: y}, grid.Coordinates{X: x + 1, Y: y}); err != nil {
				return err
			}
		}
		if last {
			break
		}

		// 3. Group the row's columns by set, in left-to-right set order.
		// Map iteration order would leak into the RNG sequence, so the
		// grouping is kept deterministic.
		members := make(map[int][]grid.Coordinates, width)
		var order []int
		for x := 0; x < width; x++ {
			id := setID[x]
			if _, seen := members[id]; !seen {
				order = append(order, id)
			}
			members[id] = append(members[id], grid.Coordinates{X: x, Y: y})
		}

		// 4. Vertical drops: each set sends down a uniform count of at
		// least one member, chosen by shuffle prefix.
		next := make([]int, width)
		for i := range next {
			next[i] = -1
		}
		for _, id := range order {
			cells := members[id]
			shuffleCoords(cells, g)
			drops := 1 + g.RandIntn(len(cells))
			for _, c := range cells[:drops] {
				below := grid.Coordinates{X: c.X, Y: c.Y + 1}
				if err := g.Link(c, below); err != nil {
					return err
				}
				next[c.X] = id
			}
		}

		// 5. Fresh sets for next-row cells no passage reached.
		for x := 0; x < width; x++ {
			if next[x] == -1 {
				next[x] = nextID
				nextID++
			}
		}
		copy(setID, next)
	}
	return nil
}
