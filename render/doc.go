// Package render turns finalized mazes into drawable primitives.
//
// # What & Why
//
// A generated Grid is pure topology: cells, corridors, distances. This
// package translates that topology into things a terminal or a canvas
// can show directly:
//
//   - ASCII - classic box-drawing output for Orthogonal mazes, ready to
//     print. The walls you cannot pass are the walls you see.
//   - DeltaWallSegments / SigmaWallSegments - per-cell wall outlines for
//     triangle and hexagon tessellations, expressed as index pairs into
//     the cell's unit-space vertices (TriangleUnitPoints,
//     HexagonUnitPoints). Scale, translate, stroke.
//   - ShadeIndex - buckets BFS distances into ten heatmap shades.
//   - SolutionPathOrder - the start-to-goal path in drawing order, for
//     animating the solve.
//
// # Conventions
//
// Unit-space geometry uses edge length 1 with y growing downward, the
// usual canvas orientation. Triangle cells are 1 wide and sqrt(3)/2
// tall; flat-top hexagons are 2 wide and sqrt(3) tall. Segment indices
// refer to the vertex slices returned by the corresponding *UnitPoints
// function for the cell's orientation.
//
// Delta walls include the lattice boundary (a triangle's outline is
// closed); Sigma walls do not (only sides with a real neighbor can be
// walls), and sides joining two consecutive solution-path cells are
// skipped so the solved route reads as a corridor.
//
// # Error Conditions
//
//   - ErrUnsupportedMazeType - renderer asked for a tessellation it
//     cannot draw (ASCII on anything but Orthogonal, segment helpers on
//     the wrong cell kind).
//
// All errors are wrapped with %w; callers branch with errors.Is.
//
// # GoDoc Summary
//
// ASCII art, wall segments, heatmap shades and solution ordering on top
// of finalized grids. Deterministic, allocation-light, no drawing
// dependencies.
package render
