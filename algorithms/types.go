// Package algorithms defines the generation contract, its sentinel errors,
// and the name registry used by request dispatch.
package algorithms

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazer/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("algorithms: grid is nil")

	// ErrGeneratorNil is returned if Build is handed a nil Generator.
	ErrGeneratorNil = errors.New("algorithms: generator is nil")

	// ErrAlgorithmUnavailable is returned when an algorithm does not
	// support the grid's tessellation. The grid is left untouched.
	ErrAlgorithmUnavailable = errors.New("algorithms: algorithm unavailable for maze type")

	// ErrUnknownAlgorithm is returned by ByName for names outside the
	// closed algorithm set.
	ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

	// ErrEmptyList is returned when a selection step finds no candidate;
	// on a well-formed grid this indicates an invariant violation.
	ErrEmptyList = errors.New("algorithms: empty candidate list")
)

// Generator carves a spanning tree over a grid's adjacency graph.
// Implementations advertise the tessellations they support and must leave
// the grid untouched when rejecting an unsupported one.
type Generator interface {
	// Name returns the canonical algorithm name used in requests.
	Name() string

	// Supports reports whether the algorithm can run on the tessellation.
	Supports(mazeType grid.MazeType) bool

	// Generate mutates the grid's linked relation until it forms a
	// spanning tree. It does not annotate distances; Build does.
	Generate(g *grid.Grid) error
}

// Canonical algorithm names, as spelled in requests.
const (
	NameBinaryTree           = "BinaryTree"
	NameSidewinder           = "Sidewinder"
	NameAldousBroder         = "AldousBroder"
	NameWilsons              = "Wilsons"
	NameHuntAndKill          = "HuntAndKill"
	NameRecursiveBacktracker = "RecursiveBacktracker"
	NamePrims                = "Prims"
	NameKruskals             = "Kruskals"
	NameGrowingTree          = "GrowingTree"
	NameGrowingTreeRandom    = "GrowingTreeRandom"
	NameGrowingTreeNewest    = "GrowingTreeNewest"
	NameEllers               = "Ellers"
	NameRecursiveDivision    = "RecursiveDivision"
	NameReverseDelete        = "ReverseDelete"
)

// ByName resolves a canonical algorithm name to a ready-to-use Generator.
// GrowingTree selects the uniform-random strategy; the Random/Newest
// aliases pick theirs explicitly. Unknown names fail with
// ErrUnknownAlgorithm.
func ByName(name string) (Generator, error) {
	switch name {
	case NameBinaryTree:
		return BinaryTree{}, nil
	case NameSidewinder:
		return Sidewinder{}, nil
	case NameAldousBroder:
		return AldousBroder{}, nil
	case NameWilsons:
		return Wilsons{}, nil
	case NameHuntAndKill:
		return HuntAndKill{}, nil
	case NameRecursiveBacktracker:
		return RecursiveBacktracker{}, nil
	case NamePrims:
		return Prims{}, nil
	case NameKruskals:
		return Kruskals{}, nil
	case NameGrowingTree, NameGrowingTreeRandom:
		return GrowingTree{Strategy: SelectRandom}, nil
	case NameGrowingTreeNewest:
		return GrowingTree{Strategy: SelectNewest}, nil
	case NameEllers:
		return Ellers{}, nil
	case NameRecursiveDivision:
		return RecursiveDivision{}, nil
	case NameReverseDelete:
		return ReverseDelete{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Names lists every canonical algorithm name, aliases included, in the
// order requests document them.
func Names() []string {
	return []string{
		NameBinaryTree,
		NameSidewinder,
		NameAldousBroder,
		NameWilsons,
		NameHuntAndKill,
		NameRecursiveBacktracker,
		NamePrims,
		NameKruskals,
		NameGrowingTree,
		NameGrowingTreeRandom,
		NameGrowingTreeNewest,
		NameEllers,
		NameRecursiveDivision,
		NameReverseDelete,
	}
}

// supportsAny is the support predicate of the geometry-agnostic
// algorithms: every tessellation in the closed MazeType set.
func supportsAny(grid.MazeType) bool { return true }

// rejectUnsupported is the shared geometry gate every Generate runs first:
// it fails with ErrAlgorithmUnavailable before any mutation, so a rejected
// grid is always left untouched.
func rejectUnsupported(gen Generator, g *grid.Grid) error {
	if g == nil {
		return ErrGridNil
	}
	if !gen.Supports(g.MazeType()) {
		return fmt.Errorf("%w: %s for %s", ErrAlgorithmUnavailable, gen.Name(), g.MazeType())
	}
	return nil
}
