// Package render - ASCII rendering for orthogonal mazes.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazer/grid"
)

// ErrUnsupportedMazeType is returned when a renderer is asked for a
// tessellation it cannot draw.
var ErrUnsupportedMazeType = errors.New("render: maze type unsupported")

// ASCII draws an orthogonal maze with +, -, | box characters:
//
//	+---+---+
//	|       |
//	+---+   +
//	|   |   |
//	+---+---+
//
// Every cell body is three spaces wide; an open east or south wall melts
// into the corridor. Only Orthogonal grids have square cells, so every
// other tessellation is rejected with ErrUnsupportedMazeType.
func ASCII(g *grid.Grid) (string, error) {
	if g == nil {
		return "", ErrUnsupportedMazeType
	}
	if g.MazeType() != grid.Orthogonal {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMazeType, g.MazeType())
	}

	var out strings.Builder
	out.WriteString("+")
	out.WriteString(strings.Repeat("---+", g.Width()))
	out.WriteString("\n")

	for y := 0; y < g.Height(); y++ {
		var top, bottom strings.Builder
		top.WriteString("|")
		bottom.WriteString("+")

		for x := 0; x < g.Width(); x++ {
			cell, err := g.Cell(grid.Coordinates{X: x, Y: y})
			if err != nil {
				return "", err
			}

			top.WriteString("   ")
			if east, ok := cell.Neighbor(grid.Right); ok && cell.IsLinked(east) {
				top.WriteString(" ")
			} else {
				top.WriteString("|")
			}

			if south, ok := cell.Neighbor(grid.Down); ok && cell.IsLinked(south) {
				bottom.WriteString("   ")
			} else {
				bottom.WriteString("---")
			}
			bottom.WriteString("+")
		}

		out.WriteString(top.String())
		out.WriteString("\n")
		out.WriteString(bottom.String())
		out.WriteString("\n")
	}
	return out.String(), nil
}
