// Package grid - sentinel errors shared by grid construction, lookup,
// linking, the capture recorder and the interactive cursor.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid operations. Callers match them with errors.Is;
// call sites annotate them with the offending coordinates via fmt.Errorf.
var (
	// ErrOutOfBoundsCoordinates is returned when a coordinate falls outside
	// the grid dimensions, or when the dimensions themselves are invalid.
	ErrOutOfBoundsCoordinates = errors.New("grid: coordinates out of bounds")

	// ErrNoCellAtCoordinates is returned when an in-bounds slot holds no
	// cell (tessellations with nullable slots, such as Rhombic).
	ErrNoCellAtCoordinates = errors.New("grid: no cell at coordinates")

	// ErrMissingCoordinates is returned when a stored reference (neighbor
	// or link) points at a slot that holds no cell.
	ErrMissingCoordinates = errors.New("grid: missing coordinates")

	// ErrInvalidCellCoordinates is returned when a cell's own coordinates
	// disagree with the slot it occupies.
	ErrInvalidCellCoordinates = errors.New("grid: invalid cell coordinates")

	// ErrFlattenedVectorDimensionsMismatch is returned when a flattened
	// cell slice does not match width*height.
	ErrFlattenedVectorDimensionsMismatch = errors.New("grid: flattened vector does not match grid dimensions")

	// ErrInvalidCellForDeltaMaze is returned when a non-triangle cell is
	// built for a Delta maze.
	ErrInvalidCellForDeltaMaze = errors.New("grid: cell type not valid for a delta maze")

	// ErrInvalidCellForNonDeltaMaze is returned when a triangle cell is
	// built for a non-Delta maze.
	ErrInvalidCellForNonDeltaMaze = errors.New("grid: triangle cell not valid for a non-delta maze")

	// ErrNoValidNeighbor is returned when a cell has no usable neighbor:
	// linking non-adjacent cells, or a lattice whose geometry isolates a
	// cell of a multi-cell grid.
	ErrNoValidNeighbor = errors.New("grid: no valid neighbor")

	// ErrNoActiveCells is returned when no cell carries the active flag.
	ErrNoActiveCells = errors.New("grid: no active cells")

	// ErrMultipleActiveCells is returned when more than one cell carries
	// the active flag.
	ErrMultipleActiveCells = errors.New("grid: multiple active cells")

	// ErrInvalidDirection is returned for direction names or values outside
	// the closed Direction set.
	ErrInvalidDirection = errors.New("grid: invalid direction")

	// ErrInvalidMazeType is returned for maze-type names or values outside
	// the closed MazeType set.
	ErrInvalidMazeType = errors.New("grid: invalid maze type")

	// ErrMoveUnavailable is returned when the cursor is asked to move
	// through a wall. The wrapping *MoveError lists the open directions.
	ErrMoveUnavailable = errors.New("grid: move unavailable")

	// ErrCaptureLimitExceeded is returned when capture-steps is requested
	// for a grid larger than MaxCaptureWidth x MaxCaptureHeight.
	ErrCaptureLimitExceeded = errors.New("grid: dimensions exceed capture-steps limit")
)

// MoveError reports a rejected cursor move together with the set of
// directions that would have been accepted. errors.Is(err,
// ErrMoveUnavailable) matches it.
type MoveError struct {
	// Attempted is the direction the caller asked for.
	Attempted Direction
	// Available is the active cell's open walls at the time of the move.
	Available []Direction
}

// Error formats the attempted direction and the permitted set.
func (e *MoveError) Error() string {
	names := make([]string, len(e.Available))
	for i, d := range e.Available {
		names[i] = d.String()
	}
	return fmt.Sprintf("%v: %s is not open (available: [%s])",
		ErrMoveUnavailable, e.Attempted, strings.Join(names, " "))
}

// Unwrap lets errors.Is match ErrMoveUnavailable.
func (e *MoveError) Unwrap() error {
	return ErrMoveUnavailable
}
