// Package grid_test verifies construction, linking, randomness, capture,
// flattening and the distance queries of the grid package.
package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazer/grid"
)

// newGrid builds a grid with start at the origin and goal at the far
// corner, the defaults used across these tests.
func newGrid(t *testing.T, mazeType grid.MazeType, w, h int, opts ...grid.GridOption) *grid.Grid {
	t.Helper()
	goal := grid.Coordinates{X: w - 1, Y: h - 1}
	g, err := grid.New(mazeType, w, h, grid.Coordinates{}, goal, opts...)
	require.NoError(t, err)
	return g
}

func TestNew_Accessors(t *testing.T) {
	g := newGrid(t, grid.Orthogonal, 4, 3)

	assert.Equal(t, grid.Orthogonal, g.MazeType())
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, grid.Coordinates{X: 0, Y: 0}, g.StartCoords())
	assert.Equal(t, grid.Coordinates{X: 3, Y: 2}, g.GoalCoords())
	assert.Equal(t, 12, g.CellCount())
	assert.Zero(t, g.EdgeCount())
	assert.False(t, g.CaptureSteps())
}

func TestNew_MarksEndpointFlags(t *testing.T) {
	g := newGrid(t, grid.Orthogonal, 3, 3)

	start, err := g.Cell(g.StartCoords())
	require.NoError(t, err)
	assert.True(t, start.IsStart)
	assert.True(t, start.IsActive)
	assert.True(t, start.IsVisited)
	assert.True(t, start.HasBeenVisited)

	goal, err := g.Cell(g.GoalCoords())
	require.NoError(t, err)
	assert.True(t, goal.IsGoal)
	assert.False(t, goal.IsActive)
}

func TestNew_RejectsInvalidArguments(t *testing.T) {
	origin := grid.Coordinates{}

	_, err := grid.New(grid.MazeType(99), 3, 3, origin, origin)
	assert.ErrorIs(t, err, grid.ErrInvalidMazeType)

	_, err = grid.New(grid.Orthogonal, 0, 3, origin, origin)
	assert.ErrorIs(t, err, grid.ErrOutOfBoundsCoordinates)

	_, err = grid.New(grid.Orthogonal, 3, 3, grid.Coordinates{X: -1, Y: 0}, origin)
	assert.ErrorIs(t, err, grid.ErrOutOfBoundsCoordinates)

	_, err = grid.New(grid.Orthogonal, 3, 3, origin, grid.Coordinates{X: 3, Y: 3})
	assert.ErrorIs(t, err, grid.ErrOutOfBoundsCoordinates)

	// Rhombic slots with odd coordinate parity hold no cell.
	_, err = grid.New(grid.Rhombic, 3, 3, grid.Coordinates{X: 1, Y: 0}, origin)
	assert.ErrorIs(t, err, grid.ErrNoCellAtCoordinates)
}

func TestNew_RejectsDisconnectedLattices(t *testing.T) {
	origin := grid.Coordinates{}

	// A one-wide Rhombic strip has diagonal-only adjacency, so its cells
	// cannot reach each other.
	_, err := grid.New(grid.Rhombic, 1, 5, origin, grid.Coordinates{X: 0, Y: 4})
	assert.ErrorIs(t, err, grid.ErrNoValidNeighbor)

	// Rhombille columns connect through third-row rhombi; chopping the
	// hexagons below that leaves the columns marooned.
	_, err = grid.New(grid.Rhombille, 2, 2, origin, grid.Coordinates{X: 1, Y: 1})
	assert.ErrorIs(t, err, grid.ErrNoValidNeighbor)

	// Single-cell degenerate lattices stay legal.
	_, err = grid.New(grid.Rhombic, 1, 1, origin, origin)
	assert.NoError(t, err)
}

func TestNew_CaptureLimit(t *testing.T) {
	origin := grid.Coordinates{}

	_, err := grid.New(grid.Orthogonal, grid.MaxCaptureWidth+1, 4,
		origin, grid.Coordinates{X: grid.MaxCaptureWidth, Y: 3}, grid.WithCaptureSteps())
	assert.ErrorIs(t, err, grid.ErrCaptureLimitExceeded)

	// The cap only guards the recorder; plain construction is unbounded.
	_, err = grid.New(grid.Orthogonal, grid.MaxCaptureWidth+1, 4,
		origin, grid.Coordinates{X: grid.MaxCaptureWidth, Y: 3})
	assert.NoError(t, err)

	_, err = grid.New(grid.Orthogonal, grid.MaxCaptureWidth, grid.MaxCaptureHeight,
		origin, grid.Coordinates{X: grid.MaxCaptureWidth - 1, Y: grid.MaxCaptureHeight - 1},
		grid.WithCaptureSteps())
	assert.NoError(t, err)
}

func TestCell_LookupErrors(t *testing.T) {
	g := newGrid(t, grid.Rhombic, 3, 3)

	_, err := g.Cell(grid.Coordinates{X: 5, Y: 0})
	assert.ErrorIs(t, err, grid.ErrOutOfBoundsCoordinates)

	_, err = g.Cell(grid.Coordinates{X: 0, Y: 1})
	assert.ErrorIs(t, err, grid.ErrNoCellAtCoordinates)

	cell, err := g.Cell(grid.Coordinates{X: 2, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, grid.Coordinates{X: 2, Y: 0}, cell.Coords)
}

func TestLink_SymmetricAndIdempotent(t *testing.T) {
	g := newGrid(t, grid.Orthogonal, 3, 3)
	a := grid.Coordinates{X: 0, Y: 0}
	b := grid.Coordinates{X: 1, Y: 0}

	require.NoError(t, g.Link(a, b))

	ca, err := g.Cell(a)
	require.NoError(t, err)
	cb, err := g.Cell(b)
	require.NoError(t, err)

	assert.True(t, ca.IsLinked(b))
	assert.True(t, cb.IsLinked(a))
	assert.Equal(t, []grid.Direction{grid.Right}, ca.OpenWalls)
	assert.Equal(t, []grid.Direction{grid.Left}, cb.OpenWalls)
	assert.Equal(t, 1, g.EdgeCount())

	// Links are a set: carving twice still counts one passage.
	require.NoError(t, g.Link(a, b))
	assert.Equal(t, 1, g.EdgeCount())

	require.NoError(t, g.Unlink(a, b))
	assert.False(t, ca.IsLinked(b))
	assert.False(t, cb.IsLinked(a))
	assert.Empty(t, ca.OpenWalls)
	assert.Zero(t, g.EdgeCount())
}

func TestLink_Errors(t *testing.T) {
	g := newGrid(t, grid.Orthogonal, 3, 3)
	origin := grid.Coordinates{}

	err := g.Link(origin, grid.Coordinates{X: 2, Y: 0})
	assert.ErrorIs(t, err, grid.ErrNoValidNeighbor)

	err = g.Link(origin, grid.Coordinates{X: 0, Y: 9})
	assert.ErrorIs(t, err, grid.ErrOutOfBoundsCoordinates)

	rhombic := newGrid(t, grid.Rhombic, 3, 3)
	err = rhombic.Link(origin, grid.Coordinates{X: 1, Y: 0})
	assert.ErrorIs(t, err, grid.ErrNoCellAtCoordinates)
}

func TestLinkAllNeighbors_CarvesEveryWall(t *testing.T) {
	g := newGrid(t, grid.Orthogonal, 3, 3)
	g.LinkAllNeighbors()

	// 3x3 orthogonal: 6 horizontal + 6 vertical passages.
	assert.Equal(t, 12, g.EdgeCount())
	for _, cell := range g.Cells() {
		assert.Equal(t, len(cell.Neighbors()), cell.LinkCount())
		assert.Equal(t, cell.Directions(), cell.OpenWalls)
	}
}

func TestRandIntn_Determinism(t *testing.T) {
	a := newGrid(t, grid.Orthogonal, 3, 3, grid.WithSeed(99))
	b := newGrid(t, grid.Orthogonal, 3, 3, grid.WithSeed(99))

	for i := 0; i < 32; i++ {
		assert.Equal(t, a.RandIntn(10), b.RandIntn(10), "draw %d", i)
	}

	// Seed zero selects the fixed default stream, not time entropy.
	c := newGrid(t, grid.Orthogonal, 3, 3, grid.WithSeed(0))
	d := newGrid(t, grid.Orthogonal, 3, 3)
	for i := 0; i < 32; i++ {
		assert.Equal(t, c.RandIntn(10), d.RandIntn(10), "draw %d", i)
	}
}

func TestRandIntn_NonPositiveBound(t *testing.T) {
	g := newGrid(t, grid.Orthogonal, 2, 2, grid.WithSeed(7))
	h := newGrid(t, grid.Orthogonal, 2, 2, grid.WithSeed(7))

	assert.Zero(t, g.RandIntn(0))
	assert.Zero(t, g.RandIntn(-3))

	// A zero bound must not advance the stream.
	assert.Equal(t, h.RandIntn(100), g.RandIntn(100))
}

func TestDistances_AlongCorridor(t *testing.T) {
	g := newGrid(t, grid.Orthogonal, 3, 1)
	require.NoError(t, g.Link(grid.Coordinates{X: 0, Y: 0}, grid.Coordinates{X: 1, Y: 0}))
	require.NoError(t, g.Link(grid.Coordinates{X: 1, Y: 0}, grid.Coordinates{X: 2, Y: 0}))

	dist, err := g.Distances(g.StartCoords())
	require.NoError(t, err)
	assert.Equal(t, map[grid.Coordinates]int{
		{X: 0, Y: 0}: 0,
		{X: 1, Y: 0}: 1,
		{X: 2, Y: 0}: 2,
	}, dist)

	_, err = g.Distances(grid.Coordinates{X: 9, Y: 9})
	assert.ErrorIs(t, err, grid.ErrOutOfBoundsCoordinates)
}

func TestDistances_IgnoreUncarvedAdjacency(t *testing.T) {
	g := newGrid(t, grid.Orthogonal, 3, 1)
	require.NoError(t, g.Link(grid.Coordinates{X: 0, Y: 0}, grid.Coordinates{X: 1, Y: 0}))

	dist, err := g.Distances(g.StartCoords())
	require.NoError(t, err)
	// (2,0) is geometrically adjacent but still walled off.
	assert.NotContains(t, dist, grid.Coordinates{X: 2, Y: 0})
}

func TestPathTo_UnreachableIsEmpty(t *testing.T) {
	g := newGrid(t, grid.Orthogonal, 3, 1)

	path, err := g.PathTo(g.StartCoords(), g.GoalCoords())
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestIsPerfectMaze(t *testing.T) {
	g := newGrid(t, grid.Orthogonal, 2, 2)
	link := func(ax, ay, bx, by int) {
		require.NoError(t, g.Link(
			grid.Coordinates{X: ax, Y: ay}, grid.Coordinates{X: bx, Y: by}))
	}

	perfect, err := g.IsPerfectMaze()
	require.NoError(t, err)
	assert.False(t, perfect, "no passages yet")

	link(0, 0, 1, 0)
	link(0, 0, 0, 1)
	link(1, 0, 1, 1)
	perfect, err = g.IsPerfectMaze()
	require.NoError(t, err)
	assert.True(t, perfect, "spanning tree")

	// Closing the square adds a cycle: still connected, no longer a tree.
	link(0, 1, 1, 1)
	perfect, err = g.IsPerfectMaze()
	require.NoError(t, err)
	assert.False(t, perfect, "cycle")
}

func TestCapture_RecordsEveryMutation(t *testing.T) {
	g := newGrid(t, grid.Orthogonal, 2, 2, grid.WithCaptureSteps())
	require.True(t, g.CaptureSteps())
	a := grid.Coordinates{X: 0, Y: 0}
	b := grid.Coordinates{X: 1, Y: 0}

	require.NoError(t, g.Link(a, b))
	require.NoError(t, g.Unlink(a, b))
	g.LinkAllNeighbors()

	steps := g.GenerationSteps()
	require.Len(t, steps, 3)
	assert.Equal(t, 1, steps[0].EdgeCount())
	assert.Equal(t, 0, steps[1].EdgeCount())
	assert.Equal(t, 4, steps[2].EdgeCount(), "one frame for the bulk link")

	// Frames are deep copies, immune to later mutations.
	require.NoError(t, g.Unlink(a, b))
	assert.Equal(t, 4, steps[2].EdgeCount())

	// Snapshots never record recursively.
	for _, frame := range steps {
		assert.False(t, frame.CaptureSteps())
		assert.Empty(t, frame.GenerationSteps())
	}
}

func TestCapture_DisabledByDefault(t *testing.T) {
	g := newGrid(t, grid.Orthogonal, 2, 2)
	require.NoError(t, g.Link(grid.Coordinates{X: 0, Y: 0}, grid.Coordinates{X: 1, Y: 0}))
	assert.Empty(t, g.GenerationSteps())
}

func TestClone_IsIndependent(t *testing.T) {
	g := newGrid(t, grid.Orthogonal, 2, 2)
	a := grid.Coordinates{X: 0, Y: 0}
	b := grid.Coordinates{X: 1, Y: 0}
	require.NoError(t, g.Link(a, b))

	dup := g.Clone()
	assert.Equal(t, 1, dup.EdgeCount())

	require.NoError(t, g.Unlink(a, b))
	assert.Zero(t, g.EdgeCount())
	assert.Equal(t, 1, dup.EdgeCount(), "clone keeps its own links")

	cell, err := dup.Cell(a)
	require.NoError(t, err)
	assert.True(t, cell.IsStart)
	assert.True(t, cell.IsLinked(b))
}

func TestFlatten_SetCells_RoundTrip(t *testing.T) {
	g := newGrid(t, grid.Rhombic, 3, 3)
	require.NoError(t, g.Link(grid.Coordinates{X: 0, Y: 0}, grid.Coordinates{X: 1, Y: 1}))

	flat := g.Flatten()
	require.Len(t, flat, 9)
	assert.Nil(t, flat[1], "odd-parity slot stays empty")

	require.NoError(t, g.SetCells(flat))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestSetCells_Validation(t *testing.T) {
	g := newGrid(t, grid.Orthogonal, 2, 2)

	err := g.SetCells(make([]*grid.Cell, 3))
	assert.ErrorIs(t, err, grid.ErrFlattenedVectorDimensionsMismatch)

	// A cell whose coordinates disagree with its slot.
	flat := g.Flatten()
	flat[0], flat[1] = flat[1], flat[0]
	err = g.SetCells(flat)
	assert.ErrorIs(t, err, grid.ErrInvalidCellCoordinates)

	// A triangle cell smuggled into a square maze.
	flat = g.Flatten()
	tri, err := grid.NewTriangleCell(grid.Coordinates{}, grid.Delta, grid.Normal)
	require.NoError(t, err)
	flat[0] = tri
	err = g.SetCells(flat)
	assert.ErrorIs(t, err, grid.ErrInvalidCellForNonDeltaMaze)

	// Dropping a referenced cell breaks the neighbor cross-references.
	flat = g.Flatten()
	flat[3] = nil
	err = g.SetCells(flat)
	assert.ErrorIs(t, err, grid.ErrMissingCoordinates)
}

func TestSetCells_WrongCellKindForDelta(t *testing.T) {
	goal := grid.Coordinates{X: 1, Y: 1}
	g, err := grid.New(grid.Delta, 2, 2, grid.Coordinates{}, goal)
	require.NoError(t, err)

	flat := g.Flatten()
	square, err := grid.NewCell(grid.Coordinates{}, grid.Orthogonal)
	require.NoError(t, err)
	flat[0] = square
	err = g.SetCells(flat)
	assert.ErrorIs(t, err, grid.ErrInvalidCellForDeltaMaze)
}

func TestNewCell_KindChecks(t *testing.T) {
	_, err := grid.NewCell(grid.Coordinates{}, grid.Delta)
	assert.ErrorIs(t, err, grid.ErrInvalidCellForNonDeltaMaze)

	_, err = grid.NewTriangleCell(grid.Coordinates{}, grid.Sigma, grid.Normal)
	assert.ErrorIs(t, err, grid.ErrInvalidCellForDeltaMaze)

	cell, err := grid.NewCell(grid.Coordinates{X: 2, Y: 1}, grid.Upsilon)
	require.NoError(t, err)
	assert.Equal(t, -1, cell.Distance)
	assert.Empty(t, cell.OpenWalls)
}
