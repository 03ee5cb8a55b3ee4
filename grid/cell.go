// Package grid - Cell: one node of the adjacency graph.
//
// A Cell refers to its neighbors and links only by value-typed Coordinates,
// never by pointer. The adjacency topology is cyclic; the ownership graph
// is not, which is what makes grid snapshots a plain deep copy.
package grid

import "fmt"

// Cell is a single tile of the tessellation. Its neighbor map is fixed at
// grid construction; its linked set is mutated exclusively through
// Grid.Link and Grid.Unlink so the symmetry invariant cannot be broken
// from outside.
type Cell struct {
	// Coords is the cell's position inside its grid.
	Coords Coordinates

	// MazeType is the tessellation this cell belongs to.
	MazeType MazeType

	// Orientation distinguishes point-up from point-down triangles.
	// Always Normal outside Delta grids.
	Orientation CellOrientation

	// Distance is the hop count from the grid's start cell, assigned by
	// finalize. -1 means unassigned.
	Distance int

	// IsStart and IsGoal mark the endpoints chosen at construction.
	IsStart bool
	IsGoal  bool

	// IsActive marks the interactive cursor. Exactly one cell is active
	// on a well-formed grid.
	IsActive bool

	// IsVisited tracks the cursor's current breadcrumb trail; it is
	// retracted when the player re-enters an already-visited cell.
	IsVisited bool

	// HasBeenVisited latches once the cursor touches the cell and is
	// never cleared.
	HasBeenVisited bool

	// OnSolutionPath marks the cells of the unique start-to-goal path,
	// assigned by finalize.
	OnSolutionPath bool

	// OpenWalls caches the directions of linked neighbors in canonical
	// order. Refreshed on every link mutation.
	OpenWalls []Direction

	// neighbors maps each valid Direction to the in-bounds cell beyond it.
	neighbors map[Direction]Coordinates

	// linked holds the neighbors reachable without crossing a wall.
	linked map[Coordinates]struct{}
}

// NewCell builds a non-triangle cell for any tessellation except Delta.
// Building one for a Delta maze fails with ErrInvalidCellForNonDeltaMaze.
func NewCell(coords Coordinates, mazeType MazeType) (*Cell, error) {
	if mazeType == Delta {
		return nil, fmt.Errorf("%w: %s cell at %s", ErrInvalidCellForNonDeltaMaze, mazeType, coords)
	}
	return newCell(coords, mazeType, Normal), nil
}

// NewTriangleCell builds a Delta cell with the given orientation.
// Building one for any other maze type fails with ErrInvalidCellForDeltaMaze.
func NewTriangleCell(coords Coordinates, mazeType MazeType, orientation CellOrientation) (*Cell, error) {
	if mazeType != Delta {
		return nil, fmt.Errorf("%w: %s cell at %s", ErrInvalidCellForDeltaMaze, mazeType, coords)
	}
	return newCell(coords, mazeType, orientation), nil
}

// newCell allocates the maps and zeroes the annotation fields.
func newCell(coords Coordinates, mazeType MazeType, orientation CellOrientation) *Cell {
	return &Cell{
		Coords:      coords,
		MazeType:    mazeType,
		Orientation: orientation,
		Distance:    -1,
		OpenWalls:   []Direction{},
		neighbors:   make(map[Direction]Coordinates, 4),
		linked:      make(map[Coordinates]struct{}, 4),
	}
}

// Neighbor returns the coordinates behind direction d, if the geometry
// placed a neighbor there.
func (c *Cell) Neighbor(d Direction) (Coordinates, bool) {
	n, ok := c.neighbors[d]
	return n, ok
}

// Directions lists the directions that lead to a neighbor, in canonical
// order. The order is stable so that seeded generation stays reproducible.
func (c *Cell) Directions() []Direction {
	out := make([]Direction, 0, len(c.neighbors))
	for _, d := range directionOrder {
		if _, ok := c.neighbors[d]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Neighbors lists the neighbor coordinates in canonical direction order.
func (c *Cell) Neighbors() []Coordinates {
	out := make([]Coordinates, 0, len(c.neighbors))
	for _, d := range directionOrder {
		if n, ok := c.neighbors[d]; ok {
			out = append(out, n)
		}
	}
	return out
}

// NeighborsByDirection returns a copy of the direction-to-coordinates map.
func (c *Cell) NeighborsByDirection() map[Direction]Coordinates {
	out := make(map[Direction]Coordinates, len(c.neighbors))
	for d, n := range c.neighbors {
		out[d] = n
	}
	return out
}

// IsLinked reports whether the wall toward other has been carved.
func (c *Cell) IsLinked(other Coordinates) bool {
	_, ok := c.linked[other]
	return ok
}

// Linked lists the linked neighbor coordinates in canonical direction
// order. Links always sit behind a direction, so the order is total.
func (c *Cell) Linked() []Coordinates {
	out := make([]Coordinates, 0, len(c.linked))
	for _, d := range directionOrder {
		n, ok := c.neighbors[d]
		if !ok {
			continue
		}
		if _, linked := c.linked[n]; linked {
			out = append(out, n)
		}
	}
	return out
}

// LinkCount returns the number of carved passages at this cell.
func (c *Cell) LinkCount() int {
	return len(c.linked)
}

// refreshOpenWalls re-derives OpenWalls from the linked set, preserving
// canonical direction order.
func (c *Cell) refreshOpenWalls() {
	walls := make([]Direction, 0, len(c.linked))
	for _, d := range directionOrder {
		n, ok := c.neighbors[d]
		if !ok {
			continue
		}
		if _, linked := c.linked[n]; linked {
			walls = append(walls, d)
		}
	}
	c.OpenWalls = walls
}

// clone deep-copies the cell, including both maps.
func (c *Cell) clone() *Cell {
	dup := &Cell{
		Coords:         c.Coords,
		MazeType:       c.MazeType,
		Orientation:    c.Orientation,
		Distance:       c.Distance,
		IsStart:        c.IsStart,
		IsGoal:         c.IsGoal,
		IsActive:       c.IsActive,
		IsVisited:      c.IsVisited,
		HasBeenVisited: c.HasBeenVisited,
		OnSolutionPath: c.OnSolutionPath,
		OpenWalls:      make([]Direction, len(c.OpenWalls)),
		neighbors:      make(map[Direction]Coordinates, len(c.neighbors)),
		linked:         make(map[Coordinates]struct{}, len(c.linked)),
	}
	copy(dup.OpenWalls, c.OpenWalls)
	for d, n := range c.neighbors {
		dup.neighbors[d] = n
	}
	for n := range c.linked {
		dup.linked[n] = struct{}{}
	}
	return dup
}
