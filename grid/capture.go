// Package grid - the capture-steps recorder.
//
// When enabled, every mutation of the linked relation appends a deep copy
// of the grid to the step list. Snapshots carry capture disabled and no
// step list of their own, so recording never recurses.
package grid

// snapshot appends a frame when the recorder is enabled. Open walls are
// already refreshed by the mutating caller, so the frame is consistent.
func (g *Grid) snapshot() {
	if !g.captureSteps {
		return
	}
	g.steps = append(g.steps, g.Clone())
}

// GenerationSteps returns the recorded animation frames in mutation order.
// The slice is a fresh copy; the snapshots themselves are shared.
func (g *Grid) GenerationSteps() []*Grid {
	out := make([]*Grid, len(g.steps))
	copy(out, g.steps)
	return out
}

// Clone deep-copies the grid: cells, neighbor maps, linked sets and flags.
// The copy has capture disabled, an empty step list, and its own random
// source seeded from the parent's last draw, so mutating or generating on
// the copy never disturbs the original.
func (g *Grid) Clone() *Grid {
	dup := &Grid{
		mazeType:     g.mazeType,
		width:        g.width,
		height:       g.height,
		cells:        make([]*Cell, len(g.cells)),
		start:        g.start,
		goal:         g.goal,
		rng:          rngFromSeed(int64(g.seed)),
		seed:         g.seed,
		captureSteps: false,
		steps:        nil,
	}
	for i, cell := range g.cells {
		if cell != nil {
			dup.cells[i] = cell.clone()
		}
	}
	return dup
}
