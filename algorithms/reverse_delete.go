// Package algorithms implements the Reverse-Delete maze generator: the
// deletion-order dual of Kruskal's.
package algorithms

import (
	"github.com/katalvlaran/mazer/bfs"
	"github.com/katalvlaran/mazer/grid"
)

// ReverseDelete links every adjacency up front, then walks the edges in a
// uniformly shuffled order, removing each one whose endpoints stay
// connected without it. Edges whose removal would split the maze are kept,
// so the survivors form a spanning tree. O(E²) in the worst case, which
// the 100×100 capture cap keeps tolerable. Works on every tessellation.
type ReverseDelete struct{}

// Name returns the canonical request name.
func (ReverseDelete) Name() string { return NameReverseDelete }

// Supports reports true for every tessellation.
func (ReverseDelete) Supports(mazeType grid.MazeType) bool { return supportsAny(mazeType) }

// Generate carves the spanning tree by redundant-edge deletion.
func (rd ReverseDelete) Generate(g *grid.Grid) error {
	// 1. Geometry gate, before any mutation.
	if err := rejectUnsupported(rd, g); err != nil {
		return err
	}

	// 2. Start fully connected: every wall open.
	g.LinkAllNeighbors()

	// 3. Shuffle the adjacencies into a deletion order.
	edges := collectEdges(g)
	shuffleEdges(edges, g)

	// 4. Delete every edge the maze can live without. Connectivity is
	// probed with the candidate excluded, so a kept edge costs no
	// mutation and a removed one costs exactly one unlink.
	for _, e := range edges {
		connected, err := connectedWithout(g, e)
		if err != nil {
			return err
		}
		if !connected {
			continue
		}
		if err = g.Unlink(e.a, e.b); err != nil {
			return err
		}
	}
	return nil
}

// connectedWithout reports whether the endpoints of candidate stay
// connected when that one passage is ignored.
func connectedWithout(g *grid.Grid, candidate edge) (bool, error) {
	var walkErr error
	adjacent := func(c grid.Coordinates) []grid.Coordinates {
		cell, err := g.Cell(c)
		if err != nil {
			walkErr = err
			return nil
		}
		linked := cell.Linked()
		kept := linked[:0]
		for _, n := range linked {
			if (c == candidate.a && n == candidate.b) || (c == candidate.b && n == candidate.a) {
				continue
			}
			kept = append(kept, n)
		}
		return kept
	}

	reachable := bfs.Connected(candidate.a, adjacent)
	if walkErr != nil {
		return false, walkErr
	}
	_, ok := reachable[candidate.b]
	return ok, nil
}
