// Package algorithms implements the Hunt-and-Kill maze generator: random
// walk with a row-major hunt whenever the walk corners itself.
package algorithms

import "github.com/katalvlaran/mazer/grid"

// HuntAndKill alternates two phases. Kill: random-walk from the current
// cell, carving into a uniformly chosen unvisited neighbor each step.
// Hunt: when the walk has no unvisited neighbor, scan cells in row-major
// order for the first unvisited cell adjacent to a visited one, carve
// that boundary and resume walking there. Generation ends when the hunt
// finds nothing. Produces long winding corridors; works on every
// tessellation.
type HuntAndKill struct{}

// Name returns the canonical request name.
func (HuntAndKill) Name() string { return NameHuntAndKill }

// Supports reports true for every tessellation.
func (HuntAndKill) Supports(mazeType grid.MazeType) bool { return supportsAny(mazeType) }

// Generate carves the spanning tree by alternating walk and hunt phases.
func (hk HuntAndKill) Generate(g *grid.Grid) error {
	// 1. Geometry gate, before any mutation.
	if err := rejectUnsupported(hk, g); err != nil {
		return err
	}

	cells := g.Cells()
	if len(cells) == 0 {
		return ErrEmptyList
	}
	visited := make(map[grid.Coordinates]bool, len(cells))
	current := cells[g.RandIntn(len(cells))].Coords
	visited[current] = true

	for {
		// 2. Kill phase: push into unvisited territory while possible.
		cell, err := g.Cell(current)
		if err != nil {
			return err
		}
		if next, ok := pickUnvisited(g, cell, visited); ok {
			if err = g.Link(current, next); err != nil {
				return err
			}
			visited[next] = true
			current = next
			continue
		}

		// 3. Hunt phase: first unvisited cell bordering the tree, in
		// row-major order; carve into a uniform visited neighbor.
		hunted := false
		for _, candidate := range cells {
			if visited[candidate.Coords] {
				continue
			}
			target, ok := pickVisited(g, candidate, visited)
			if !ok {
				continue
			}
			if err = g.Link(candidate.Coords, target); err != nil {
				return err
			}
			visited[candidate.Coords] = true
			current = candidate.Coords
			hunted = true
			break
		}

		// 4. Nothing left to hunt: every cell is part of the tree.
		if !hunted {
			return nil
		}
	}
}

// pickUnvisited selects a uniform unvisited neighbor of cell, if any.
func pickUnvisited(g *grid.Grid, cell *grid.Cell, visited map[grid.Coordinates]bool) (grid.Coordinates, bool) {
	var candidates []grid.Coordinates
	for _, n := range cell.Neighbors() {
		if !visited[n] {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return grid.Coordinates{}, false
	}
	return candidates[g.RandIntn(len(candidates))], true
}

// pickVisited selects a uniform visited neighbor of cell, if any.
func pickVisited(g *grid.Grid, cell *grid.Cell, visited map[grid.Coordinates]bool) (grid.Coordinates, bool) {
	var candidates []grid.Coordinates
	for _, n := range cell.Neighbors() {
		if visited[n] {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return grid.Coordinates{}, false
	}
	return candidates[g.RandIntn(len(candidates))], true
}
