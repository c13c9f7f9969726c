// Package gridgraph defines core types, options, and sentinel errors
// for grid environments.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/pathfinder/core"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadPrice indicates a NaN or -Inf cell price.
	ErrBadPrice = errors.New("gridgraph: cell price must be a number or +Inf")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph is a grid of prices exposed as a geometric core.Environment.
// It is immutable once built. Prices[y][x] holds the input price of cell (x, y).
type GridGraph struct {
	*core.Graph

	Width, Height   int
	Prices          [][]float64
	Conn            Connectivity
	neighborOffsets [][2]int
	cells           map[string]int // label → row-major index
}
