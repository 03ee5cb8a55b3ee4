// Package grid - JSON encoding of grids and cells.
//
// The wire shape mirrors the C-ABI cell export: flat x/y, the maze type,
// open-wall directions under "linked", the distance and the boolean flags.
// Geometry (neighbor maps, orientation) is never trusted from the wire; it
// is re-derived from maze type and dimensions on decode.
package grid

import (
	"encoding/json"
	"fmt"
)

// cellJSON is the wire form of one cell.
type cellJSON struct {
	X              int             `json:"x"`
	Y              int             `json:"y"`
	MazeType       MazeType        `json:"maze_type"`
	Linked         []Direction     `json:"linked"`
	Distance       int             `json:"distance"`
	IsStart        bool            `json:"is_start"`
	IsGoal         bool            `json:"is_goal"`
	IsActive       bool            `json:"is_active"`
	IsVisited      bool            `json:"is_visited"`
	HasBeenVisited bool            `json:"has_been_visited"`
	OnSolutionPath bool            `json:"on_solution_path"`
	Orientation    CellOrientation `json:"orientation"`
}

// gridJSON is the wire form of a whole grid. Cells are row-major with
// null entries for empty slots.
type gridJSON struct {
	MazeType MazeType    `json:"maze_type"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Start    Coordinates `json:"start"`
	Goal     Coordinates `json:"goal"`
	Seed     uint64      `json:"seed"`
	Cells    []*cellJSON `json:"cells"`
}

// MarshalJSON encodes the cell in its wire form.
func (c *Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.wire())
}

// wire converts a cell to its JSON DTO.
func (c *Cell) wire() *cellJSON {
	linked := make([]Direction, len(c.OpenWalls))
	copy(linked, c.OpenWalls)
	return &cellJSON{
		X:              c.Coords.X,
		Y:              c.Coords.Y,
		MazeType:       c.MazeType,
		Linked:         linked,
		Distance:       c.Distance,
		IsStart:        c.IsStart,
		IsGoal:         c.IsGoal,
		IsActive:       c.IsActive,
		IsVisited:      c.IsVisited,
		HasBeenVisited: c.HasBeenVisited,
		OnSolutionPath: c.OnSolutionPath,
		Orientation:    c.Orientation,
	}
}

// MarshalJSON encodes the grid with its full row-major cell array.
func (g *Grid) MarshalJSON() ([]byte, error) {
	out := gridJSON{
		MazeType: g.mazeType,
		Width:    g.width,
		Height:   g.height,
		Start:    g.start,
		Goal:     g.goal,
		Seed:     g.seed,
		Cells:    make([]*cellJSON, len(g.cells)),
	}
	for i, cell := range g.cells {
		if cell != nil {
			out.Cells[i] = cell.wire()
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON rebuilds a grid from its wire form: the lattice and the
// neighbor maps are re-derived from maze type and dimensions, then the
// carved passages and annotation flags are replayed onto it.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var wire gridJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if len(wire.Cells) != wire.Width*wire.Height {
		return fmt.Errorf("%w: got %d cells, want %dx%d",
			ErrFlattenedVectorDimensionsMismatch, len(wire.Cells), wire.Width, wire.Height)
	}

	rebuilt, err := New(wire.MazeType, wire.Width, wire.Height, wire.Start, wire.Goal)
	if err != nil {
		return err
	}
	rebuilt.seed = wire.Seed
	rebuilt.rng = rngFromSeed(int64(wire.Seed))

	for _, dto := range wire.Cells {
		if dto == nil {
			continue
		}
		coords := Coordinates{X: dto.X, Y: dto.Y}
		cell, err := rebuilt.cellAt(coords)
		if err != nil {
			return err
		}
		cell.Distance = dto.Distance
		cell.IsStart = dto.IsStart
		cell.IsGoal = dto.IsGoal
		cell.IsActive = dto.IsActive
		cell.IsVisited = dto.IsVisited
		cell.HasBeenVisited = dto.HasBeenVisited
		cell.OnSolutionPath = dto.OnSolutionPath
		for _, d := range dto.Linked {
			target, ok := cell.Neighbor(d)
			if !ok {
				return fmt.Errorf("%w: %s has no %s neighbor", ErrNoValidNeighbor, coords, d)
			}
			if err := rebuilt.Link(coords, target); err != nil {
				return err
			}
		}
	}

	*g = *rebuilt
	return nil
}
