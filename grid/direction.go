// Package grid - Direction: the closed set of adjacency labels.
//
// Every tessellation stores its neighbors under a fixed subset of these
// labels; directions outside the valid subset of a MazeType are never used
// as neighbor keys. Opposite is an involution, which is what keeps the
// linked relation symmetric when walls are carved from either endpoint.
package grid

import (
	"encoding/json"
	"fmt"
)

// Direction labels one adjacency of a cell.
// The first eight values are the compass labels shared by the planar
// tessellations; the last four belong to Polar grids only.
type Direction uint8

const (
	// Up points to (x, y-1).
	Up Direction = iota
	// Right points to (x+1, y).
	Right
	// Down points to (x, y+1).
	Down
	// Left points to (x-1, y).
	Left
	// UpperRight points diagonally up-right.
	UpperRight
	// LowerRight points diagonally down-right.
	LowerRight
	// LowerLeft points diagonally down-left.
	LowerLeft
	// UpperLeft points diagonally up-left.
	UpperLeft
	// Inward points one ring toward the pole (y-1) in a Polar grid.
	Inward
	// Outward points one ring away from the pole (y+1) in a Polar grid.
	Outward
	// Clockwise advances along the ring (x+1) in a Polar grid.
	Clockwise
	// CounterClockwise retreats along the ring (x-1) in a Polar grid.
	CounterClockwise
)

// directionOrder fixes the iteration order used everywhere a cell's
// directions are listed (open walls, neighbor scans). A stable order keeps
// seeded generation reproducible: map iteration would not.
var directionOrder = [...]Direction{
	Up, Right, Down, Left,
	UpperRight, LowerRight, LowerLeft, UpperLeft,
	Inward, Outward, Clockwise, CounterClockwise,
}

// directionNames is the canonical wire spelling of each Direction.
var directionNames = map[Direction]string{
	Up:               "Up",
	Right:            "Right",
	Down:             "Down",
	Left:             "Left",
	UpperRight:       "UpperRight",
	LowerRight:       "LowerRight",
	LowerLeft:        "LowerLeft",
	UpperLeft:        "UpperLeft",
	Inward:           "Inward",
	Outward:          "Outward",
	Clockwise:        "Clockwise",
	CounterClockwise: "CounterClockwise",
}

// directionsByName is the inverse of directionNames, used by ParseDirection.
var directionsByName = func() map[string]Direction {
	m := make(map[string]Direction, len(directionNames))
	for d, name := range directionNames {
		m[name] = d
	}
	return m
}()

// opposites pairs every Direction with its reverse. The mapping is an
// involution: Opposite(Opposite(d)) == d for all d.
var opposites = map[Direction]Direction{
	Up:               Down,
	Down:             Up,
	Right:            Left,
	Left:             Right,
	UpperRight:       LowerLeft,
	LowerLeft:        UpperRight,
	UpperLeft:        LowerRight,
	LowerRight:       UpperLeft,
	Inward:           Outward,
	Outward:          Inward,
	Clockwise:        CounterClockwise,
	CounterClockwise: Clockwise,
}

// validDirections lists, per MazeType, the only labels that may appear as
// neighbor keys of its cells.
var validDirections = map[MazeType][]Direction{
	Orthogonal: {Up, Right, Down, Left},
	Delta:      {Up, Down, UpperRight, LowerRight, LowerLeft, UpperLeft},
	Sigma:      {Up, Down, UpperRight, LowerRight, LowerLeft, UpperLeft},
	Polar:      {Inward, Outward, Clockwise, CounterClockwise},
	Rhombille:  {Up, Down, UpperRight, LowerRight, LowerLeft, UpperLeft},
	Upsilon:    {Up, Right, Down, Left, UpperRight, LowerRight, LowerLeft, UpperLeft},
	Rhombic:    {UpperRight, LowerRight, LowerLeft, UpperLeft},
}

// String returns the canonical name of the direction, or "Unknown" for
// values outside the closed set.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "Unknown"
}

// Opposite returns the reverse direction. Opposite is an involution.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// HexOffset reports the (dx,dy) a Direction spans on a flat-top hexagonal
// layout in odd-q offset coordinates, conditioned on the parity of the
// column the move starts from (odd columns sit half a cell lower).
// ok is false for directions a Sigma grid never uses.
func (d Direction) HexOffset(column int) (dx, dy int, ok bool) {
	odd := column%2 != 0
	switch d {
	case Up:
		return 0, -1, true
	case Down:
		return 0, 1, true
	case UpperRight:
		if odd {
			return 1, 0, true
		}
		return 1, -1, true
	case LowerRight:
		if odd {
			return 1, 1, true
		}
		return 1, 0, true
	case UpperLeft:
		if odd {
			return -1, 0, true
		}
		return -1, -1, true
	case LowerLeft:
		if odd {
			return -1, 1, true
		}
		return -1, 0, true
	default:
		return 0, 0, false
	}
}

// ParseDirection converts a canonical name into a Direction.
// Unknown names fail with ErrInvalidDirection.
func ParseDirection(s string) (Direction, error) {
	if d, ok := directionsByName[s]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// ValidDirections returns the closed set of labels a MazeType may store as
// neighbor keys, in canonical order. The slice is a fresh copy.
func ValidDirections(m MazeType) []Direction {
	valid := validDirections[m]
	out := make([]Direction, len(valid))
	copy(out, valid)
	return out
}

// MarshalJSON encodes the direction as its canonical JSON string.
func (d Direction) MarshalJSON() ([]byte, error) {
	name, ok := directionNames[d]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, d)
	}
	return json.Marshal(name)
}

// UnmarshalJSON decodes a canonical JSON string into a Direction,
// rejecting unknown values with ErrInvalidDirection.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseDirection(name)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
