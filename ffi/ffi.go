// Package main builds mazer's C ABI: a c-shared library exposing maze
// generation to Swift, C and anything else that can load a .so.
//
// Build:
//
//	go build -buildmode=c-shared -o libmazer.so ./ffi
//
// include/mazer.h is the consumer-facing header; cdefs.h carries the
// struct layout for this package's preamble. Grids travel across the
// boundary as opaque handles (0 means failure); every returned buffer
// has a paired free function and must be released exactly once.
package main

/*
#include <stdlib.h>
#include "cdefs.h"
*/
import "C"

import (
	"fmt"
	"os"
	"runtime/cgo"
	"unsafe"

	"github.com/katalvlaran/mazer/grid"
)

// mazer_generate_maze builds a maze from a JSON request and returns an
// opaque handle to it, 0 on any failure. The caller keeps ownership of
// the request string; the handle is released with mazer_destroy.
//
//export mazer_generate_maze
func mazer_generate_maze(requestJSON *C.char) C.uintptr_t {
	if requestJSON == nil {
		return 0
	}
	g, err := generate([]byte(C.GoString(requestJSON)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazer_generate_maze: %v\n", err)
		return 0
	}
	return C.uintptr_t(cgo.NewHandle(g))
}

// mazer_destroy releases a maze handle. A 0 handle is a no-op; handles
// must not be destroyed twice.
//
//export mazer_destroy
func mazer_destroy(handle C.uintptr_t) {
	if handle == 0 {
		return
	}
	cgo.Handle(handle).Delete()
}

// mazer_get_cells exports the maze's present cells into a freshly
// allocated mazer_cell array and writes its length through out. The
// caller releases the array with mazer_free_cells. Returns NULL for a
// bad handle, a NULL out pointer or an empty maze.
//
//export mazer_get_cells
func mazer_get_cells(handle C.uintptr_t, out *C.size_t) *C.mazer_cell {
	if out == nil {
		return nil
	}
	g := gridFromHandle(handle)
	if g == nil {
		return nil
	}

	records := exportCells(g)
	*out = C.size_t(len(records))
	if len(records) == 0 {
		return nil
	}

	cells := (*C.mazer_cell)(C.malloc(C.size_t(len(records)) * C.sizeof_mazer_cell))
	view := unsafe.Slice(cells, len(records))
	for i, rec := range records {
		view[i].x = C.size_t(rec.X)
		view[i].y = C.size_t(rec.Y)
		view[i].maze_type = C.CString(rec.MazeType)
		view[i].linked = cStringArray(rec.Linked)
		view[i].linked_len = C.size_t(len(rec.Linked))
		view[i].distance = C.int32_t(rec.Distance)
		view[i].is_start = C.bool(rec.IsStart)
		view[i].is_goal = C.bool(rec.IsGoal)
		view[i].is_active = C.bool(rec.IsActive)
		view[i].is_visited = C.bool(rec.IsVisited)
		view[i].has_been_visited = C.bool(rec.HasBeenVisited)
		view[i].on_solution_path = C.bool(rec.OnSolutionPath)
		view[i].orientation = C.CString(rec.Orientation)
	}
	return cells
}

// mazer_free_cells releases an array returned by mazer_get_cells,
// inner strings included. length must match the exported count.
//
//export mazer_free_cells
func mazer_free_cells(cells *C.mazer_cell, length C.size_t) {
	if cells == nil {
		return
	}
	view := unsafe.Slice(cells, int(length))
	for i := range view {
		C.free(unsafe.Pointer(view[i].maze_type))
		C.free(unsafe.Pointer(view[i].orientation))
		if view[i].linked != nil {
			linked := unsafe.Slice(view[i].linked, int(view[i].linked_len))
			for _, s := range linked {
				C.free(unsafe.Pointer(s))
			}
			C.free(unsafe.Pointer(view[i].linked))
		}
	}
	C.free(unsafe.Pointer(cells))
}

// mazer_make_move advances the maze's cursor in the named direction.
// Returns the same handle on success and 0 on any failure (bad handle,
// unknown direction name, walled move); the maze is untouched on
// failure.
//
//export mazer_make_move
func mazer_make_move(handle C.uintptr_t, direction *C.char) C.uintptr_t {
	if direction == nil {
		return 0
	}
	g := gridFromHandle(handle)
	if g == nil {
		return 0
	}
	if err := moveCursor(g, C.GoString(direction)); err != nil {
		fmt.Fprintf(os.Stderr, "mazer_make_move: %v\n", err)
		return 0
	}
	return handle
}

// mazer_generate_maze_json builds a maze and returns it serialized, as
// a malloc'd string the caller releases with mazer_free_string. NULL on
// failure.
//
//export mazer_generate_maze_json
func mazer_generate_maze_json(requestJSON *C.char) *C.char {
	if requestJSON == nil {
		return nil
	}
	out, err := generateJSON([]byte(C.GoString(requestJSON)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazer_generate_maze_json: %v\n", err)
		return nil
	}
	return C.CString(string(out))
}

// mazer_free_string releases a string returned by this library.
//
//export mazer_free_string
func mazer_free_string(s *C.char) {
	if s == nil {
		return
	}
	C.free(unsafe.Pointer(s))
}

// mazer_ffi_integration_test verifies link connectivity; it always
// returns 42.
//
//export mazer_ffi_integration_test
func mazer_ffi_integration_test() C.int {
	return C.int(integrationAnswer())
}

// gridFromHandle resolves an opaque handle back to its grid, nil when
// the handle is 0 or wraps something else.
func gridFromHandle(handle C.uintptr_t) *grid.Grid {
	if handle == 0 {
		return nil
	}
	g, ok := cgo.Handle(handle).Value().(*grid.Grid)
	if !ok {
		return nil
	}
	return g
}

// cStringArray copies names into a malloc'd array of C strings.
func cStringArray(names []string) **C.char {
	if len(names) == 0 {
		return nil
	}
	arr := (**C.char)(C.malloc(C.size_t(len(names)) * C.size_t(unsafe.Sizeof((*C.char)(nil)))))
	view := unsafe.Slice(arr, len(names))
	for i, name := range names {
		view[i] = C.CString(name)
	}
	return arr
}

func main() {}
