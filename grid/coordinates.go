// Package grid defines the value types shared by every tessellation:
// Coordinates, MazeType and CellOrientation.
package grid

import (
	"encoding/json"
	"fmt"
)

// Coordinates identifies one cell slot inside a grid.
// It is a pure value type: comparable, hashable, and safe as a map key.
// X grows rightward, Y grows downward; (0,0) is the top-left slot.
// For Polar grids X is the position along the ring and Y the ring index.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders the coordinates as "(x,y)" for error messages and logs.
func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// MazeType selects the tessellation and therefore the neighborhood rules
// of a grid. The set is closed; ParseMazeType rejects anything else.
type MazeType uint8

const (
	// Orthogonal is the classic square tiling: four axis-aligned neighbors.
	Orthogonal MazeType = iota
	// Delta is the triangle tiling: three neighbors, orientation alternating
	// between point-up (Normal) and point-down (Inverted) cells.
	Delta
	// Sigma is the flat-top hexagon tiling in odd-q offset layout:
	// six neighbors with column-parity-dependent offsets.
	Sigma
	// Polar is the concentric-ring tiling: Inward/Outward between rings,
	// Clockwise/CounterClockwise along a ring. Rings do not wrap.
	Polar
	// Rhombille is the tumbling-blocks tiling: every flat-top hexagon is
	// split into a north-east, a west and a south-east rhombus.
	Rhombille
	// Upsilon is the octagon-square tiling: octagons and squares alternate
	// in a checkerboard, octagons having eight neighbors, squares four.
	Upsilon
	// Rhombic is the diamond lattice: cells occupy only slots whose
	// coordinate parity matches, with four diagonal neighbors.
	Rhombic
)

// mazeTypeNames is the canonical wire spelling of each MazeType.
var mazeTypeNames = map[MazeType]string{
	Orthogonal: "Orthogonal",
	Delta:      "Delta",
	Sigma:      "Sigma",
	Polar:      "Polar",
	Rhombille:  "Rhombille",
	Upsilon:    "Upsilon",
	Rhombic:    "Rhombic",
}

// mazeTypesByName is the inverse of mazeTypeNames, used by ParseMazeType.
var mazeTypesByName = map[string]MazeType{
	"Orthogonal": Orthogonal,
	"Delta":      Delta,
	"Sigma":      Sigma,
	"Polar":      Polar,
	"Rhombille":  Rhombille,
	"Upsilon":    Upsilon,
	"Rhombic":    Rhombic,
}

// String returns the canonical name of the maze type, or "Unknown" for
// values outside the closed set.
func (m MazeType) String() string {
	if name, ok := mazeTypeNames[m]; ok {
		return name
	}
	return "Unknown"
}

// ParseMazeType converts a canonical name into a MazeType.
// Unknown names fail with ErrInvalidMazeType.
func ParseMazeType(s string) (MazeType, error) {
	if m, ok := mazeTypesByName[s]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMazeType, s)
}

// MarshalJSON encodes the maze type as its canonical JSON string.
func (m MazeType) MarshalJSON() ([]byte, error) {
	name, ok := mazeTypeNames[m]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMazeType, m)
	}
	return json.Marshal(name)
}

// UnmarshalJSON decodes a canonical JSON string into a MazeType,
// rejecting unknown values with ErrInvalidMazeType.
func (m *MazeType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseMazeType(name)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// CellOrientation distinguishes point-up from point-down triangles in a
// Delta grid. Non-Delta cells always carry Normal.
type CellOrientation uint8

const (
	// Normal marks a point-up triangle (and every non-triangle cell).
	Normal CellOrientation = iota
	// Inverted marks a point-down triangle.
	Inverted
)

// String returns "Normal" or "Inverted".
func (o CellOrientation) String() string {
	if o == Inverted {
		return "Inverted"
	}
	return "Normal"
}

// MarshalJSON encodes the orientation as its canonical JSON string.
func (o CellOrientation) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON decodes "Normal" or "Inverted"; anything else is rejected.
func (o *CellOrientation) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "Normal":
		*o = Normal
	case "Inverted":
		*o = Inverted
	default:
		return fmt.Errorf("grid: invalid cell orientation %q", name)
	}
	return nil
}
