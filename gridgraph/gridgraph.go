package gridgraph

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/pathfinder/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice of prices.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadPrice for NaN or -Inf.
// Complexity: O(W×H×d) time and memory, d = 4 or 8.
func NewGridGraph(prices [][]float64, opts GridOptions) (*GridGraph, error) {
	if len(prices) == 0 || len(prices[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(prices), len(prices[0])
	for y, row := range prices {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y+1, len(row), w)
		}
		for x, p := range row {
			if math.IsNaN(p) || math.IsInf(p, -1) {
				return nil, fmt.Errorf("%w: %s is %v", ErrBadPrice, Label(x, y), p)
			}
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]float64, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]float64, w)
		copy(cells[y], prices[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		Prices:          cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
		cells:           make(map[string]int, w*h),
	}

	vertices := make([]core.Vertex, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if gg.Obstacle(x, y) {
				continue
			}
			var edges []core.Edge
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) || gg.Obstacle(nx, ny) {
					continue
				}
				edges = append(edges, core.To(Label(nx, ny), cells[ny][nx]))
			}
			label := Label(x, y)
			gg.cells[label] = gg.index(x, y)
			vertices = append(vertices, core.Location(label, core.At(float64(x), float64(y)), edges...))
		}
	}
	g, err := core.New(vertices)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: %w", err)
	}
	gg.Graph = g

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Obstacle reports whether (x,y) is out of bounds or priced +Inf.
func (gg *GridGraph) Obstacle(x, y int) bool {
	return !gg.InBounds(x, y) || math.IsInf(gg.Prices[y][x], 1)
}

// NeighborOffsets returns the precomputed neighbor offsets in edge order.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Cell returns the coordinates of a passable cell by label.
func (gg *GridGraph) Cell(label string) (x, y int, ok bool) {
	idx, ok := gg.cells[label]
	if !ok {
		return 0, 0, false
	}
	x, y = gg.Coordinate(idx)

	return x, y, true
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Label returns the spreadsheet-style label of cell (x,y), e.g. (27,0) → "AB1".
// Panics if x or y is negative.
func Label(x, y int) string {
	if y < 0 {
		panic(fmt.Sprintf("gridgraph: row must be ≥ 0, got %d", y))
	}

	return ColumnLabel(x) + strconv.Itoa(y+1)
}

// ColumnLabel returns the column letters for x, e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if x < 0.
func ColumnLabel(x int) string {
	if x < 0 {
		panic(fmt.Sprintf("gridgraph: column must be ≥ 0, got %d", x))
	}
	// build letters in reverse order
	var runes []rune
	for i := x; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
