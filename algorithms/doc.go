// Package algorithms provides the twelve spanning-tree generators behind
// every maze this module produces, all conforming to one Generator
// contract and one shared finalize pass.
//
// What & Why
//
//   - What is a perfect maze?
//     A maze whose passage graph is a spanning tree of the grid's
//     adjacency graph: connected, acyclic, exactly one simple path between
//     any two cells, and exactly cells−1 passages.
//
//   - Why many algorithms?
//     Every generator below produces a perfect maze, but their textures
//     differ wildly: random-walk methods sample spanning trees uniformly,
//     DFS methods produce long winding corridors, frontier methods produce
//     short bushy dead ends. Callers pick by name; the grid geometry stays
//     the same.
//
// Algorithms Provided
//
//   - BinaryTree — north-or-east coin flip per cell. Orthogonal only.
//   - Sidewinder — row runs with random northward closures. Orthogonal only.
//   - AldousBroder — exhaustive random walk; uniform spanning trees. All types.
//   - Wilsons — loop-erased random walks; uniform spanning trees. All types.
//   - HuntAndKill — random walk plus row-major hunt on dead ends. All types.
//   - RecursiveBacktracker — randomized DFS with an explicit stack. All types.
//   - Prims — frontier min-heap keyed by random weights. All types.
//   - Kruskals — shuffled edge scan over a disjoint-set forest. All types.
//   - GrowingTree — active list with pluggable selection (random or newest). All types.
//   - Ellers — row-sweep set merging; O(width) live state. Orthogonal only.
//   - RecursiveDivision — wall-adder by recursive region splits. Orthogonal and Rhombic.
//   - ReverseDelete — shuffled redundant-edge deletion. All types.
//
// Lifecycle
//
// Every generator implements Generate(g) and nothing else; Build runs
// Generate and then the shared Finalize, which computes breadth-first
// distances from the start cell, marks the start→goal solution path,
// refreshes each cell's open-wall cache, and asserts the single-active-
// cell invariant. Algorithms never finalize on their own.
//
// Determinism
//
// All randomness flows through the grid's RandBool/RandIntn so a grid
// seeded identically replays the identical maze. Candidate sets are
// always collected in the grid's canonical scan/direction order before a
// random index is drawn; no map iteration order ever reaches the RNG.
//
// Error Conditions
//
//   - ErrGridNil / ErrGeneratorNil — nil arguments to Build or Generate.
//   - ErrAlgorithmUnavailable — the algorithm does not support the grid's
//     tessellation. Checked before any mutation; the grid is untouched.
//   - ErrUnknownAlgorithm — ByName received a name outside the closed set.
//   - ErrEmptyList — a selection step found no candidate on a well-formed
//     grid; indicates a corrupted grid rather than caller misuse.
//
// GoDoc Summary
//
//   - ByName(name) (Generator, error) — resolve a request name, aliases
//     GrowingTreeRandom/GrowingTreeNewest included.
//   - Build(gen, g) error — Generate then Finalize.
//   - Finalize(g) error — annotation pass shared by all algorithms.
//
// For usage walkthroughs, see example_test.go in this package.
package algorithms
