// Package grid - Grid: owner of the cell set and the only mutator of links.
package grid

import (
	"fmt"
	"math/rand"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// GridOptions holds the tunable construction parameters.
// Use DefaultGridOptions and the With* options rather than a literal.
type GridOptions struct {
	// Seed feeds the grid's random source. 0 selects the fixed default
	// seed; callers wanting fresh mazes pass their own entropy explicitly.
	Seed int64

	// CaptureSteps records a snapshot after every link mutation.
	// Only permitted up to MaxCaptureWidth x MaxCaptureHeight.
	CaptureSteps bool
}

// GridOption configures grid construction via functional arguments.
type GridOption func(*GridOptions)

// DefaultGridOptions returns the baseline configuration:
// deterministic default seed, capture disabled.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Seed:         0,
		CaptureSteps: false,
	}
}

// WithSeed sets the seed of the grid's random source.
// Policy: seed==0 keeps the fixed default stream.
func WithSeed(seed int64) GridOption {
	return func(o *GridOptions) {
		o.Seed = seed
	}
}

// WithCaptureSteps enables the generation-step recorder.
func WithCaptureSteps() GridOption {
	return func(o *GridOptions) {
		o.CaptureSteps = true
	}
}

// Capture-steps dimension cap: a snapshot clones the whole grid per edge
// mutation, so recording is refused above this size.
const (
	MaxCaptureWidth  = 100
	MaxCaptureHeight = 100
)

// Grid owns the cells of one maze. It is not safe for concurrent mutation;
// concurrent readers of a finished grid are fine.
type Grid struct {
	mazeType MazeType
	width    int
	height   int

	// cells is row-major, length width*height; slots without a cell
	// (Rhombic parity holes) stay nil.
	cells []*Cell

	start Coordinates
	goal  Coordinates

	rng  *rand.Rand
	seed uint64 // last value drawn from rng, kept for debugging

	captureSteps bool
	steps        []*Grid
}

// New builds a grid for the given tessellation, allocates its cells,
// assigns geometry-specific neighbors and marks start/goal/active flags.
//
// Preconditions: width, height >= 1 and start/goal in bounds, otherwise
// ErrOutOfBoundsCoordinates. start/goal must address present cells
// (ErrNoCellAtCoordinates on a nullable slot). Geometries that would
// isolate a cell of a multi-cell grid are rejected with ErrNoValidNeighbor.
// Capture above the dimension cap fails with ErrCaptureLimitExceeded.
func New(mazeType MazeType, width, height int, start, goal Coordinates, opts ...GridOption) (*Grid, error) {
	if _, ok := mazeTypeNames[mazeType]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMazeType, mazeType)
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrOutOfBoundsCoordinates, width, height)
	}

	o := DefaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.CaptureSteps && (width > MaxCaptureWidth || height > MaxCaptureHeight) {
		return nil, fmt.Errorf("%w: %dx%d exceeds %dx%d",
			ErrCaptureLimitExceeded, width, height, MaxCaptureWidth, MaxCaptureHeight)
	}

	g := &Grid{
		mazeType:     mazeType,
		width:        width,
		height:       height,
		cells:        make([]*Cell, width*height),
		start:        start,
		goal:         goal,
		rng:          rngFromSeed(o.Seed),
		captureSteps: o.CaptureSteps,
	}

	if !g.inBounds(start) {
		return nil, fmt.Errorf("%w: start %s in %dx%d", ErrOutOfBoundsCoordinates, start, width, height)
	}
	if !g.inBounds(goal) {
		return nil, fmt.Errorf("%w: goal %s in %dx%d", ErrOutOfBoundsCoordinates, goal, width, height)
	}

	if err := g.buildCells(); err != nil {
		return nil, err
	}
	if err := g.assignNeighbors(); err != nil {
		return nil, err
	}
	if err := g.checkIsolation(); err != nil {
		return nil, err
	}

	startCell, err := g.cellAt(start)
	if err != nil {
		return nil, err
	}
	goalCell, err := g.cellAt(goal)
	if err != nil {
		return nil, err
	}
	startCell.IsStart = true
	startCell.IsActive = true
	startCell.IsVisited = true
	startCell.HasBeenVisited = true
	goalCell.IsGoal = true

	return g, nil
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 uses defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// MazeType returns the tessellation of the grid.
func (g *Grid) MazeType() MazeType { return g.mazeType }

// Width returns the horizontal dimension in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the vertical dimension in cells.
func (g *Grid) Height() int { return g.height }

// StartCoords returns the coordinates marked is_start.
func (g *Grid) StartCoords() Coordinates { return g.start }

// GoalCoords returns the coordinates marked is_goal.
func (g *Grid) GoalCoords() Coordinates { return g.goal }

// Seed returns the last value drawn from the grid's random source.
func (g *Grid) Seed() uint64 { return g.seed }

// CaptureSteps reports whether the snapshot recorder is enabled.
func (g *Grid) CaptureSteps() bool { return g.captureSteps }

// inBounds reports whether c addresses a slot of the grid.
func (g *Grid) inBounds(c Coordinates) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index flattens coordinates into the row-major cell slice.
func (g *Grid) index(c Coordinates) int {
	return c.Y*g.width + c.X
}

// cellAt resolves coordinates into a live cell.
func (g *Grid) cellAt(c Coordinates) (*Cell, error) {
	if !g.inBounds(c) {
		return nil, fmt.Errorf("%w: %s in %dx%d", ErrOutOfBoundsCoordinates, c, g.width, g.height)
	}
	cell := g.cells[g.index(c)]
	if cell == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoCellAtCoordinates, c)
	}
	return cell, nil
}

// Cell returns the cell at c, failing with ErrOutOfBoundsCoordinates or
// ErrNoCellAtCoordinates.
func (g *Grid) Cell(c Coordinates) (*Cell, error) {
	return g.cellAt(c)
}

// Cells lists the present cells in row-major order, skipping empty slots.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, 0, len(g.cells))
	for _, cell := range g.cells {
		if cell != nil {
			out = append(out, cell)
		}
	}
	return out
}

// CellCount returns the number of present cells. For tessellations without
// nullable slots this equals width*height.
func (g *Grid) CellCount() int {
	n := 0
	for _, cell := range g.cells {
		if cell != nil {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of carved passages (each counted once).
func (g *Grid) EdgeCount() int {
	total := 0
	for _, cell := range g.cells {
		if cell != nil {
			total += len(cell.linked)
		}
	}
	return total / 2
}

// Link carves the wall between a and b. b must be a geometric neighbor of
// a (ErrNoValidNeighbor otherwise); both endpoints must resolve to present
// cells. The linked relation stays symmetric, open walls are refreshed on
// both cells, and a capture snapshot is recorded when enabled.
func (g *Grid) Link(a, b Coordinates) error {
	ca, cb, err := g.pair(a, b)
	if err != nil {
		return err
	}
	ca.linked[b] = struct{}{}
	cb.linked[a] = struct{}{}
	ca.refreshOpenWalls()
	cb.refreshOpenWalls()
	g.snapshot()
	return nil
}

// Unlink restores the wall between a and b, the exact inverse of Link.
func (g *Grid) Unlink(a, b Coordinates) error {
	ca, cb, err := g.pair(a, b)
	if err != nil {
		return err
	}
	delete(ca.linked, b)
	delete(cb.linked, a)
	ca.refreshOpenWalls()
	cb.refreshOpenWalls()
	g.snapshot()
	return nil
}

// pair resolves both endpoints and verifies they are geometric neighbors.
func (g *Grid) pair(a, b Coordinates) (*Cell, *Cell, error) {
	ca, err := g.cellAt(a)
	if err != nil {
		return nil, nil, err
	}
	cb, err := g.cellAt(b)
	if err != nil {
		return nil, nil, err
	}
	if !hasNeighbor(ca, b) || !hasNeighbor(cb, a) {
		return nil, nil, fmt.Errorf("%w: %s and %s are not adjacent", ErrNoValidNeighbor, a, b)
	}
	return ca, cb, nil
}

// hasNeighbor reports whether coords appears among c's neighbor values.
func hasNeighbor(c *Cell, coords Coordinates) bool {
	for _, n := range c.neighbors {
		if n == coords {
			return true
		}
	}
	return false
}

// LinkAllNeighbors carves every geometric wall at once, the initial state
// of the subtractive algorithms. Per-link snapshots are skipped; one
// snapshot of the fully connected state is recorded instead, so a capture
// sequence stays monotone while walls are re-added.
func (g *Grid) LinkAllNeighbors() {
	for _, cell := range g.cells {
		if cell == nil {
			continue
		}
		for _, n := range cell.neighbors {
			cell.linked[n] = struct{}{}
		}
	}
	g.RefreshOpenWalls()
	g.snapshot()
}

// RefreshOpenWalls re-derives the OpenWalls cache of every present cell.
func (g *Grid) RefreshOpenWalls() {
	for _, cell := range g.cells {
		if cell != nil {
			cell.refreshOpenWalls()
		}
	}
}

// RandBool draws a uniform boolean from the grid's random source.
func (g *Grid) RandBool() bool {
	return g.RandIntn(2) == 0
}

// RandIntn draws a uniform integer from [0,n). n <= 0 yields 0 without
// advancing the source. The drawn value is retained and visible via Seed.
func (g *Grid) RandIntn(n int) int {
	if n <= 0 {
		return 0
	}
	v := g.rng.Intn(n)
	g.seed = uint64(v)
	return v
}

// Flatten exports the raw row-major slot slice, nil slots included.
// The slice is a fresh copy; the cells themselves are shared.
func (g *Grid) Flatten() []*Cell {
	out := make([]*Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// SetCells replaces the grid's cells with a flattened row-major slice,
// validating shape and internal consistency:
//
//   - length must equal width*height (ErrFlattenedVectorDimensionsMismatch);
//   - every cell's coordinates must match its slot (ErrInvalidCellCoordinates);
//   - every cell's maze type must match the grid's (the delta/non-delta
//     cell errors);
//   - every neighbor and link reference must land on a present cell
//     (ErrOutOfBoundsCoordinates / ErrMissingCoordinates).
func (g *Grid) SetCells(cells []*Cell) error {
	if len(cells) != g.width*g.height {
		return fmt.Errorf("%w: got %d, want %dx%d",
			ErrFlattenedVectorDimensionsMismatch, len(cells), g.width, g.height)
	}
	for i, cell := range cells {
		if cell == nil {
			continue
		}
		slot := Coordinates{X: i % g.width, Y: i / g.width}
		if cell.Coords != slot {
			return fmt.Errorf("%w: cell %s in slot %s", ErrInvalidCellCoordinates, cell.Coords, slot)
		}
		if cell.MazeType != g.mazeType {
			if g.mazeType == Delta {
				return fmt.Errorf("%w: %s cell at %s", ErrInvalidCellForDeltaMaze, cell.MazeType, cell.Coords)
			}
			return fmt.Errorf("%w: %s cell at %s", ErrInvalidCellForNonDeltaMaze, cell.MazeType, cell.Coords)
		}
	}
	// Cross-references are validated against the incoming slice, not the
	// current one, so a corrupt grid cannot be smuggled in halfway.
	present := func(c Coordinates) bool {
		if c.X < 0 || c.X >= g.width || c.Y < 0 || c.Y >= g.height {
			return false
		}
		return cells[c.Y*g.width+c.X] != nil
	}
	for _, cell := range cells {
		if cell == nil {
			continue
		}
		for _, n := range cell.neighbors {
			if !g.inBounds(n) {
				return fmt.Errorf("%w: neighbor %s of %s", ErrOutOfBoundsCoordinates, n, cell.Coords)
			}
			if !present(n) {
				return fmt.Errorf("%w: neighbor %s of %s", ErrMissingCoordinates, n, cell.Coords)
			}
		}
		for l := range cell.linked {
			if !g.inBounds(l) {
				return fmt.Errorf("%w: link %s of %s", ErrOutOfBoundsCoordinates, l, cell.Coords)
			}
			if !present(l) {
				return fmt.Errorf("%w: link %s of %s", ErrMissingCoordinates, l, cell.Coords)
			}
		}
	}
	copy(g.cells, cells)
	return nil
}
