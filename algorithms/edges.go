// Package algorithms - shared edge enumeration helpers.
package algorithms

import "github.com/katalvlaran/mazer/grid"

// edge is an undirected adjacency between two cells; a carve candidate.
type edge struct {
	a, b grid.Coordinates
}

// collectEdges enumerates every adjacency of g exactly once, in the
// deterministic row-major/direction order the grid exposes. Each pair is
// kept only when b follows a in scan order, so the symmetric neighbor
// maps never yield duplicates.
func collectEdges(g *grid.Grid) []edge {
	var edges []edge
	for _, cell := range g.Cells() {
		for _, to := range cell.Neighbors() {
			if after(to, cell.Coords) {
				edges = append(edges, edge{a: cell.Coords, b: to})
			}
		}
	}
	return edges
}

// after reports whether b comes after a in row-major scan order.
func after(b, a grid.Coordinates) bool {
	if b.Y != a.Y {
		return b.Y > a.Y
	}
	return b.X > a.X
}

// shuffleEdges permutes edges in place with a Fisher-Yates pass driven
// by the grid RNG, keeping the run reproducible for a fixed seed.
func shuffleEdges(edges []edge, g *grid.Grid) {
	for i := len(edges) - 1; i > 0; i-- {
		j := g.RandIntn(i + 1)
		edges[i], edges[j] = edges[j], edges[i]
	}
}

// shuffleCoords is the coordinate-slice twin of shuffleEdges.
func shuffleCoords(coords []grid.Coordinates, g *grid.Grid) {
	for i := len(coords) - 1; i > 0; i-- {
		j := g.RandIntn(i + 1)
		coords[i], coords[j] = coords[j], coords[i]
	}
}
