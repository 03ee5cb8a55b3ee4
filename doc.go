// Package mazer generates, solves and serves perfect mazes — spanning
// trees carved over seven tessellations, from classic squares to
// triangles, hexagons, rings and tumbling blocks.
//
// 🚀 What is mazer?
//
//	A deterministic, embeddable maze toolkit that brings together:
//		• Seven tessellations: Orthogonal, Delta, Sigma, Polar, Rhombille,
//		  Upsilon and Rhombic lattices under one Grid type
//		• Twelve generators: BinaryTree, Sidewinder, AldousBroder, Wilsons,
//		  HuntAndKill, RecursiveBacktracker, Prims, Kruskals, GrowingTree
//		  (random/newest), Ellers, RecursiveDivision, ReverseDelete
//		• Solving: BFS distances, unique start→goal path, perfect-maze check
//		• Play: an interactive cursor with breadcrumb trail (MakeMove)
//		• Animation: capture-steps recorder — one snapshot per carved wall
//		• Wire: JSON requests in, JSON grids out; ASCII art for terminals
//
// ✨ Why choose mazer?
//
//   - Reproducible – same request + same seed = same maze, byte for byte
//   - Honest errors – every failure is a matchable sentinel, no panics
//   - Pure Go library core – cgo only in the optional FFI boundary
//   - Composable – each layer (grid, algorithms, request, render) stands alone
//
// Everything is organized under focused subpackages:
//
//	grid/       — tessellations, cells, links, distances, cursor, capture
//	bfs/        — generic breadth-first traversal utilities
//	algorithms/ — the twelve generators behind one Generator contract
//	request/    — JSON request parsing and dispatch
//	render/     — ASCII mazes, wall segments, heatmap shades
//	server/     — HTTP/WebSocket facade for interactive clients
//	ffi/        — c-shared boundary exporting the C API (include/mazer.h)
//
// Quick taste:
//
//	g, err := mazer.Generate([]byte(`{
//	        "maze_type": "Orthogonal", "width": 12, "height": 12,
//	        "algorithm": "RecursiveBacktracker", "seed": 42}`))
//	if err != nil { ... }
//	art, _ := render.ASCII(g)
//	fmt.Print(art)
//
// Dive into the per-package docs for the full contracts, determinism
// notes and error sets.
package mazer
