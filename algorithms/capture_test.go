package algorithms_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazer/algorithms"
	"github.com/katalvlaran/mazer/grid"
)

// growingGenerators carve one passage per mutation, so their capture
// sequence gains exactly one edge per frame.
func growingGenerators() []algorithms.Generator {
	return []algorithms.Generator{
		algorithms.BinaryTree{},
		algorithms.Sidewinder{},
		algorithms.AldousBroder{},
		algorithms.Wilsons{},
		algorithms.HuntAndKill{},
		algorithms.RecursiveBacktracker{},
		algorithms.Prims{},
		algorithms.Kruskals{},
		algorithms.GrowingTree{Strategy: algorithms.SelectRandom},
		algorithms.GrowingTree{Strategy: algorithms.SelectNewest},
		algorithms.Ellers{},
	}
}

// assertFrameWallsConsistent cross-checks a snapshot's open-wall caches
// against its linked sets, in both directions.
func assertFrameWallsConsistent(t *testing.T, frame *grid.Grid) {
	t.Helper()
	for _, cell := range frame.Cells() {
		open := make(map[grid.Direction]bool, len(cell.OpenWalls))
		for _, d := range cell.OpenWalls {
			open[d] = true
		}
		linkedWalls := 0
		for d, n := range cell.NeighborsByDirection() {
			if cell.IsLinked(n) {
				assert.True(t, open[d], "linked neighbor %s of %s missing from open walls", d, cell.Coords)
				linkedWalls++
			} else {
				assert.False(t, open[d], "unlinked neighbor %s of %s listed as open wall", d, cell.Coords)
			}
		}
		assert.Len(t, cell.OpenWalls, linkedWalls)
	}
}

// TestGenerate_CaptureGrowsOneEdgePerFrame checks the capture sequence of
// every edge-carving algorithm: non-empty, strictly one new edge per
// frame, consistent walls, perfect final frame.
func TestGenerate_CaptureGrowsOneEdgePerFrame(t *testing.T) {
	for _, gen := range growingGenerators() {
		t.Run(gen.Name(), func(t *testing.T) {
			g := mustGrid(t, grid.Orthogonal, 4, 4, grid.WithSeed(7), grid.WithCaptureSteps())
			require.NoError(t, algorithms.Build(gen, g))

			steps := g.GenerationSteps()
			require.Len(t, steps, g.CellCount()-1)
			for i, frame := range steps {
				assert.Equal(t, i+1, frame.EdgeCount(), "frame %d", i)
				assertFrameWallsConsistent(t, frame)
			}
			assertPerfect(t, steps[len(steps)-1])
		})
	}
}

// TestGenerate_CaptureShrinksFromFullyOpen checks the wall-adders: the
// first frame is the fully open grid, every later frame removes exactly
// one edge, and the final frame is a perfect maze.
func TestGenerate_CaptureShrinksFromFullyOpen(t *testing.T) {
	cases := []struct {
		gen      algorithms.Generator
		mazeType grid.MazeType
	}{
		{algorithms.RecursiveDivision{}, grid.Orthogonal},
		{algorithms.RecursiveDivision{}, grid.Rhombic},
		{algorithms.ReverseDelete{}, grid.Orthogonal},
		{algorithms.ReverseDelete{}, grid.Delta},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/%s", tc.gen.Name(), tc.mazeType), func(t *testing.T) {
			g := mustGrid(t, tc.mazeType, 4, 4, grid.WithSeed(7), grid.WithCaptureSteps())
			require.NoError(t, algorithms.Build(tc.gen, g))

			steps := g.GenerationSteps()
			require.NotEmpty(t, steps)
			fullyOpen := steps[0].EdgeCount()
			for i, frame := range steps {
				assert.Equal(t, fullyOpen-i, frame.EdgeCount(), "frame %d", i)
				assertFrameWallsConsistent(t, frame)
			}

			final := steps[len(steps)-1]
			assert.Equal(t, g.CellCount()-1, final.EdgeCount())
			assertPerfect(t, final)
		})
	}
}

// TestGenerate_NoCaptureByDefault checks that snapshots stay off unless
// requested at construction.
func TestGenerate_NoCaptureByDefault(t *testing.T) {
	g := mustGrid(t, grid.Orthogonal, 4, 4, grid.WithSeed(7))
	require.NoError(t, algorithms.Build(algorithms.RecursiveBacktracker{}, g))
	assert.Empty(t, g.GenerationSteps())
}
