// Package algorithms - disjoint-set support for Kruskal's algorithm.
package algorithms

import "github.com/katalvlaran/mazer/grid"

// disjointSet is a union-find over cell coordinates with path compression
// and union by rank. No global state: each run owns its own maps.
type disjointSet struct {
	parent map[grid.Coordinates]grid.Coordinates
	rank   map[grid.Coordinates]int
}

// newDisjointSet seeds one singleton set per cell.
func newDisjointSet(cells []*grid.Cell) *disjointSet {
	s := &disjointSet{
		parent: make(map[grid.Coordinates]grid.Coordinates, len(cells)),
		rank:   make(map[grid.Coordinates]int, len(cells)),
	}
	for _, cell := range cells {
		s.parent[cell.Coords] = cell.Coords
		s.rank[cell.Coords] = 0
	}
	return s
}

// find walks up to the root, compressing paths by pointing each visited
// node at its grandparent. Iterative to avoid deep recursion.
func (s *disjointSet) find(c grid.Coordinates) grid.Coordinates {
	for s.parent[c] != c {
		s.parent[c] = s.parent[s.parent[c]]
		c = s.parent[c]
	}
	return c
}

// union merges the sets of a and b. It reports false when they already
// share a root (a link there would close a cycle).
func (s *disjointSet) union(a, b grid.Coordinates) bool {
	rootA := s.find(a)
	rootB := s.find(b)
	if rootA == rootB {
		return false
	}
	// Attach the smaller-rank tree under the larger-rank root.
	if s.rank[rootA] < s.rank[rootB] {
		s.parent[rootA] = rootB
	} else {
		s.parent[rootB] = rootA
		if s.rank[rootA] == s.rank[rootB] {
			s.rank[rootA]++
		}
	}
	return true
}
