// Package mazer - the top-level convenience facade.
package mazer

import (
	"github.com/katalvlaran/mazer/grid"
	"github.com/katalvlaran/mazer/request"
)

// Generate parses a JSON maze request, builds the grid and runs the
// requested algorithm plus the shared finalize pass. It is the Go-native
// twin of GenerateJSON for callers who want the live Grid.
func Generate(data []byte) (*grid.Grid, error) {
	return request.Generate(data)
}

// GenerateJSON is the JSON-in/JSON-out entry point: a maze request in,
// the finalized grid's wire form out. Same contract as Generate.
func GenerateJSON(data []byte) ([]byte, error) {
	return request.GenerateJSON(data)
}
