// Package algorithms implements the Recursive-Backtracker maze generator:
// depth-first carving with an explicit stack.
package algorithms

import "github.com/katalvlaran/mazer/grid"

// RecursiveBacktracker runs a randomized depth-first search from the
// grid's start cell. Each step carves into a uniformly chosen unvisited
// neighbor and pushes it; a cell with no unvisited neighbor is popped.
// The stack is explicit, so grid size never threatens the call stack.
// Produces the long-corridor, low-branching mazes typical of DFS; works
// on every tessellation.
type RecursiveBacktracker struct{}

// Name returns the canonical request name.
func (RecursiveBacktracker) Name() string { return NameRecursiveBacktracker }

// Supports reports true for every tessellation.
func (RecursiveBacktracker) Supports(mazeType grid.MazeType) bool { return supportsAny(mazeType) }

// Generate carves the spanning tree depth-first from the start cell.
func (rb RecursiveBacktracker) Generate(g *grid.Grid) error {
	// 1. Geometry gate, before any mutation.
	if err := rejectUnsupported(rb, g); err != nil {
		return err
	}

	// 2. DFS with an explicit stack, rooted at the start cell.
	start := g.StartCoords()
	stack := []grid.Coordinates{start}
	visited := map[grid.Coordinates]bool{start: true}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		cell, err := g.Cell(current)
		if err != nil {
			return err
		}

		// 3. Backtrack when the walk is cornered.
		next, ok := pickUnvisited(g, cell, visited)
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}

		// 4. Carve and descend.
		if err = g.Link(current, next); err != nil {
			return err
		}
		visited[next] = true
		stack = append(stack, next)
	}
	return nil
}
