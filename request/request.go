// Package request turns JSON maze requests into generated grids.
package request

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazer/algorithms"
	"github.com/katalvlaran/mazer/grid"
)

// ErrSerialization is returned for malformed request JSON and for enum
// values outside their closed sets (maze types, algorithm names).
var ErrSerialization = errors.New("request: serialization error")

// MazeRequest is the JSON wire format of one generation request.
//
// Only maze_type, width, height and algorithm are required. Start
// defaults to the origin, goal to the far corner, capture_steps to off.
// Seed selects the random stream; 0 (or omitting it) keeps the library's
// fixed default stream, so identical requests yield identical mazes.
type MazeRequest struct {
	MazeType     grid.MazeType     `json:"maze_type"`
	Width        int               `json:"width"`
	Height       int               `json:"height"`
	Algorithm    string            `json:"algorithm"`
	Start        *grid.Coordinates `json:"start,omitempty"`
	Goal         *grid.Coordinates `json:"goal,omitempty"`
	CaptureSteps bool              `json:"capture_steps,omitempty"`
	Seed         int64             `json:"seed,omitempty"`
}

// Parse decodes a request and validates its enums. Malformed JSON,
// an unknown maze type and an unknown algorithm name all come back as
// ErrSerialization; structural problems (dimensions, coordinates) are
// left for Dispatch, which reports them with the precise grid sentinel.
func Parse(data []byte) (*MazeRequest, error) {
	var req MazeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if _, err := algorithms.ByName(req.Algorithm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return &req, nil
}

// Dispatch builds the requested grid and runs the full generate+finalize
// lifecycle on it. The request's optional fields are defaulted here.
func Dispatch(req *MazeRequest) (*grid.Grid, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrSerialization)
	}

	gen, err := algorithms.ByName(req.Algorithm)
	if err != nil {
		return nil, err
	}

	start := grid.Coordinates{X: 0, Y: 0}
	if req.Start != nil {
		start = *req.Start
	}
	goal := grid.Coordinates{X: req.Width - 1, Y: req.Height - 1}
	if req.Goal != nil {
		goal = *req.Goal
	}

	opts := []grid.GridOption{grid.WithSeed(req.Seed)}
	if req.CaptureSteps {
		opts = append(opts, grid.WithCaptureSteps())
	}

	g, err := grid.New(req.MazeType, req.Width, req.Height, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	if err = algorithms.Build(gen, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Generate is the one-call surface: Parse then Dispatch.
func Generate(data []byte) (*grid.Grid, error) {
	req, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Dispatch(req)
}

// GenerateJSON runs Generate and serializes the resulting grid, wrapping
// marshal failures in ErrSerialization.
func GenerateJSON(data []byte) ([]byte, error) {
	g, err := Generate(data)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return out, nil
}
