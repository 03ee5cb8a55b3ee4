// Package algorithms implements Kruskal's maze generation: a shuffled
// edge scan filtered through a disjoint-set forest.
package algorithms

import "github.com/katalvlaran/mazer/grid"

// Kruskals collects every adjacency of the grid, shuffles them, and scans
// the shuffled list, linking each pair whose disjoint-set roots differ.
// Union by rank with path compression keeps the scan near-linear. The
// random weights of classic Kruskal collapse into the shuffle: scanning a
// uniformly shuffled edge list equals sorting by uniform random weights.
// Works on every tessellation.
type Kruskals struct{}

// Name returns the canonical request name.
func (Kruskals) Name() string { return NameKruskals }

// Supports reports true for every tessellation.
func (Kruskals) Supports(mazeType grid.MazeType) bool { return supportsAny(mazeType) }

// Generate carves the spanning tree by cycle-free edge admission.
func (k Kruskals) Generate(g *grid.Grid) error {
	// 1. Geometry gate, before any mutation.
	if err := rejectUnsupported(k, g); err != nil {
		return err
	}

	// 2. Enumerate and shuffle the adjacencies.
	cells := g.Cells()
	edges := collectEdges(g)
	shuffleEdges(edges, g)

	// 3. Scan: admit an edge iff it joins two distinct components.
	set := newDisjointSet(cells)
	for _, e := range edges {
		if !set.union(e.a, e.b) {
			continue
		}
		if err := g.Link(e.a, e.b); err != nil {
			return err
		}
	}
	return nil
}
