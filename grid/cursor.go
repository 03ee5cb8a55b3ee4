// Package grid - the interactive cursor used by the playable front-end.
//
// The cursor is the single active cell. Moving it only touches the
// visitation flags: the carved maze itself stays frozen during play.
package grid

import "fmt"

// ActiveCell returns the unique cell carrying the active flag.
// Zero active cells fail with ErrNoActiveCells, more than one with
// ErrMultipleActiveCells.
func (g *Grid) ActiveCell() (*Cell, error) {
	var active *Cell
	count := 0
	for _, cell := range g.cells {
		if cell == nil || !cell.IsActive {
			continue
		}
		count++
		if active == nil {
			active = cell
		}
	}
	switch {
	case count == 0:
		return nil, ErrNoActiveCells
	case count > 1:
		return nil, fmt.Errorf("%w: %d active", ErrMultipleActiveCells, count)
	default:
		return active, nil
	}
}

// AvailableMoves lists the open walls of the active cell, the exact set of
// directions MakeMove would accept.
func (g *Grid) AvailableMoves() ([]Direction, error) {
	active, err := g.ActiveCell()
	if err != nil {
		return nil, err
	}
	out := make([]Direction, len(active.OpenWalls))
	copy(out, active.OpenWalls)
	return out, nil
}

// MakeMove advances the cursor through an open wall.
//
// A direction without an open wall is rejected with a *MoveError carrying
// the permitted set (errors.Is-matchable against ErrMoveUnavailable), and
// the grid is left untouched. On success the destination becomes active
// and visited; stepping onto an already-visited cell retracts the previous
// cell's breadcrumb (IsVisited), while HasBeenVisited latches forever.
func (g *Grid) MakeMove(direction Direction) error {
	active, err := g.ActiveCell()
	if err != nil {
		return err
	}

	open := false
	for _, d := range active.OpenWalls {
		if d == direction {
			open = true
			break
		}
	}
	if !open {
		available := make([]Direction, len(active.OpenWalls))
		copy(available, active.OpenWalls)
		return &MoveError{Attempted: direction, Available: available}
	}

	target, ok := active.neighbors[direction]
	if !ok {
		// open walls are a subset of neighbors; reaching here means the
		// grid was corrupted externally
		return fmt.Errorf("%w: %s from %s", ErrMissingCoordinates, direction, active.Coords)
	}
	next, err := g.cellAt(target)
	if err != nil {
		return err
	}

	if next.IsVisited {
		// re-entry: the breadcrumb trail retracts instead of growing
		active.IsVisited = false
	}
	next.IsActive = true
	next.IsVisited = true
	next.HasBeenVisited = true
	active.IsActive = false
	return nil
}
