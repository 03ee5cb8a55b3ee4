// Package algorithms implements Wilson's maze generator: loop-erased
// random walks, the other uniform spanning tree sampler.
package algorithms

import "github.com/katalvlaran/mazer/grid"

// Wilsons seeds the tree with one uniformly chosen cell, then repeatedly
// performs a loop-erased random walk from a uniformly chosen cell outside
// the tree until the walk hits the tree, carving the erased walk in. Like
// Aldous-Broder it samples spanning trees uniformly, but it is fast at the
// end of generation where Aldous-Broder is slow at the start. Works on
// every tessellation.
type Wilsons struct{}

// Name returns the canonical request name.
func (Wilsons) Name() string { return NameWilsons }

// Supports reports true for every tessellation.
func (Wilsons) Supports(mazeType grid.MazeType) bool { return supportsAny(mazeType) }

// Generate carves the spanning tree via loop-erased random walks.
func (w Wilsons) Generate(g *grid.Grid) error {
	// 1. Geometry gate, before any mutation.
	if err := rejectUnsupported(w, g); err != nil {
		return err
	}

	cells := g.Cells()
	if len(cells) == 0 {
		return ErrEmptyList
	}
	outside := make([]grid.Coordinates, 0, len(cells))
	for _, cell := range cells {
		outside = append(outside, cell.Coords)
	}
	inTree := make(map[grid.Coordinates]bool, len(cells))

	// 2. Seed the tree with one uniformly chosen cell.
	seedAt := g.RandIntn(len(outside))
	inTree[outside[seedAt]] = true
	outside[seedAt] = outside[len(outside)-1]
	outside = outside[:len(outside)-1]

	// 3. Walk from outside the tree until everything joins it.
	for len(outside) > 0 {
		path, err := w.walk(g, outside[g.RandIntn(len(outside))], inTree)
		if err != nil {
			return err
		}

		// 4. Carve the erased walk into the tree. The final path cell is
		// the tree hit and is already a member.
		for i := 0; i+1 < len(path); i++ {
			if err = g.Link(path[i], path[i+1]); err != nil {
				return err
			}
			inTree[path[i]] = true
		}

		// 5. Drop freshly treed cells, preserving scan order.
		kept := outside[:0]
		for _, c := range outside {
			if !inTree[c] {
				kept = append(kept, c)
			}
		}
		outside = kept
	}
	return nil
}

// walk performs one loop-erased random walk from start until it reaches a
// tree cell. The returned path is simple (loops erased as they form) and
// ends on the tree.
func (Wilsons) walk(g *grid.Grid, start grid.Coordinates, inTree map[grid.Coordinates]bool) ([]grid.Coordinates, error) {
	path := []grid.Coordinates{start}
	position := map[grid.Coordinates]int{start: 0}

	current := start
	for {
		cell, err := g.Cell(current)
		if err != nil {
			return nil, err
		}
		neighbors := cell.Neighbors()
		if len(neighbors) == 0 {
			return nil, ErrEmptyList
		}
		next := neighbors[g.RandIntn(len(neighbors))]

		if inTree[next] {
			return append(path, next), nil
		}
		if at, seen := position[next]; seen {
			// Loop: erase everything after the first visit of next.
			for _, c := range path[at+1:] {
				delete(position, c)
			}
			path = path[:at+1]
		} else {
			position[next] = len(path)
			path = append(path, next)
		}
		current = next
	}
}
