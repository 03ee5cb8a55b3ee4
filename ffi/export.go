package main

import (
	"github.com/katalvlaran/mazer/grid"
	"github.com/katalvlaran/mazer/request"
)

// cellExport is the language-neutral view of one cell, ready to be
// copied into C memory. Linked holds the open-wall direction names in
// the cell's canonical order.
type cellExport struct {
	X, Y           int
	MazeType       string
	Linked         []string
	Distance       int
	IsStart        bool
	IsGoal         bool
	IsActive       bool
	IsVisited      bool
	HasBeenVisited bool
	OnSolutionPath bool
	Orientation    string
}

// exportCells flattens the grid's present cells into exportable
// records; absent slots of sparse tessellations are skipped.
func exportCells(g *grid.Grid) []cellExport {
	cells := g.Cells()
	records := make([]cellExport, 0, len(cells))
	for _, cell := range cells {
		linked := make([]string, len(cell.OpenWalls))
		for i, direction := range cell.OpenWalls {
			linked[i] = direction.String()
		}
		records = append(records, cellExport{
			X:              cell.Coords.X,
			Y:              cell.Coords.Y,
			MazeType:       cell.MazeType.String(),
			Linked:         linked,
			Distance:       cell.Distance,
			IsStart:        cell.IsStart,
			IsGoal:         cell.IsGoal,
			IsActive:       cell.IsActive,
			IsVisited:      cell.IsVisited,
			HasBeenVisited: cell.HasBeenVisited,
			OnSolutionPath: cell.OnSolutionPath,
			Orientation:    cell.Orientation.String(),
		})
	}
	return records
}

// generate builds a finished maze from raw request bytes.
func generate(data []byte) (*grid.Grid, error) {
	return request.Generate(data)
}

// generateJSON builds a maze and serializes it in one step.
func generateJSON(data []byte) ([]byte, error) {
	return request.GenerateJSON(data)
}

// moveCursor resolves a direction name and advances the grid's cursor.
func moveCursor(g *grid.Grid, name string) error {
	direction, err := grid.ParseDirection(name)
	if err != nil {
		return err
	}
	return g.MakeMove(direction)
}

// integrationAnswer is the canonical link-check value.
func integrationAnswer() int32 {
	return 42
}
