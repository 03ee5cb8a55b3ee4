// Package grid models the cell-adjacency graph a maze is carved into: a
// rectangular lattice of cells whose neighborhood rules come from one of
// seven tessellations, plus the link relation ("no wall between these two
// cells") that generation algorithms grow into a spanning tree.
//
// What
//
//   - Value types: Coordinates, MazeType, Direction, CellOrientation.
//   - Cell: one tile with direction-labelled neighbors, a symmetric linked
//     set, distance and annotation flags, and a cached open-wall list.
//   - Grid: owns the cells; builds geometry-specific adjacency for
//     Orthogonal, Delta, Sigma, Polar, Rhombille, Upsilon and Rhombic
//     tessellations; exposes Link/Unlink, lookup, reachability, distances,
//     shortest path and the perfect-maze predicate.
//   - Capture recorder: optional per-mutation snapshots for animation,
//     capped at 100x100.
//   - Interactive cursor: MakeMove walks the carved maze through open
//     walls, maintaining active/visited flags.
//   - JSON round-trip for grids and cells in the same shape the C ABI
//     exports.
//
// Invariants
//
//   - linked is symmetric: a ∈ linked(b) ⇔ b ∈ linked(a).
//   - linked ⊆ neighbors: passages only ever connect geometric neighbors.
//   - neighbor references are in-bounds, present cells; adjacency is held
//     as value-typed Coordinates, never pointers, so deep copies are plain.
//   - exactly one cell is active at rest; start and goal are unique.
//   - OpenWalls always equals the directions of linked neighbors, in
//     canonical order.
//
// Randomness
//
//	Grids carry their own deterministic random source (WithSeed; seed==0
//	selects a fixed default stream). Algorithms draw bounded integers and
//	booleans through RandIntn/RandBool so one seed reproduces one maze.
//	The last drawn value is retained and visible via Seed for debugging.
//
// Concurrency
//
//	A Grid is single-threaded for mutation. Concurrent readers of a
//	finished grid are safe; no package-level state exists.
//
// Complexity
//
//   - Construction: O(width*height) cells, O(1) neighbor work per cell.
//   - Link/Unlink: O(1) map mutation plus O(degree) open-wall refresh.
//   - Distances/PathTo/ConnectedCells: O(V + E) breadth-first traversal.
//   - Clone (capture frame): O(width*height).
//
// Errors
//
//	Sentinel errors cover the closed failure set: out-of-bounds and
//	missing-cell lookups, structural mismatches of flattened cell slices,
//	triangle/non-triangle construction misuse, isolated-cell geometries,
//	active-flag violations, rejected cursor moves (with the permitted
//	directions attached), the capture dimension cap, and unknown
//	direction or maze-type names. Match them with errors.Is.
package grid
