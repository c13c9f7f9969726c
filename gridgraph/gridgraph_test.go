package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/gridgraph"
)

var inf = math.Inf(1)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty, ragged or unpriceable inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]float64
		err  error
	}{
		{"EmptyRows", [][]float64{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]float64{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
		{"NaN", [][]float64{{1, math.NaN()}}, gridgraph.ErrBadPrice},
		{"MinusInf", [][]float64{{math.Inf(-1)}}, gridgraph.ErrBadPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3×2 grid under Conn4.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]float64{{1, 1, 1}, {1, 1, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

//----------------------------------------------------------------------------//
// Labels
//----------------------------------------------------------------------------//

func TestLabels(t *testing.T) {
	assert.Equal(t, "A", gridgraph.ColumnLabel(0))
	assert.Equal(t, "Z", gridgraph.ColumnLabel(25))
	assert.Equal(t, "AA", gridgraph.ColumnLabel(26))
	assert.Equal(t, "AB", gridgraph.ColumnLabel(27))
	assert.Equal(t, "ZZ", gridgraph.ColumnLabel(701))
	assert.Equal(t, "AAA", gridgraph.ColumnLabel(702))
	assert.Equal(t, "B3", gridgraph.Label(1, 2))
	assert.Equal(t, "AB1", gridgraph.Label(27, 0))
	assert.Panics(t, func() { gridgraph.ColumnLabel(-1) })
	assert.Panics(t, func() { gridgraph.Label(0, -1) })
}

//----------------------------------------------------------------------------//
// Graph shape
//----------------------------------------------------------------------------//

func TestGridGraph_Conn4(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]float64{
		{1, 1, 1, 1},
		{1, inf, inf, 1},
		{1, 1, 1, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	assert.Equal(t, 10, gg.Len())
	assert.False(t, gg.Has("B2"))
	assert.Equal(t, []string{"A1", "B1", "C1", "D1", "A2", "D2", "A3", "B3", "C3", "D3"}, gg.All())
	assert.Equal(t, []string{"C1", "A1"}, gg.NeighboursOf("B1"))
	assert.Equal(t, []string{"A1", "A3"}, gg.NeighboursOf("A2"))
	assert.True(t, gg.Traits().Has(core.Geometric))
	assert.False(t, gg.Traits().Has(core.NegativeEdges))
	assert.True(t, gg.PositionOf("C3").Equal(core.At(2, 2)))

	x, y, ok := gg.Cell("D2")
	require.True(t, ok)
	assert.Equal(t, [2]int{3, 1}, [2]int{x, y})
	_, _, ok = gg.Cell("B2")
	assert.False(t, ok)
}

func TestGridGraph_CostIsTargetPrice(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]float64{
		{1, 1.2},
		{-0.5, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	c, err := gg.MovementCostBetween("A1", "B1")
	require.NoError(t, err)
	assert.Equal(t, 1.2, c)

	c, err = gg.MovementCostBetween("B1", "A1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, c)

	c, err = gg.MovementCostBetween("A1", "A2")
	require.NoError(t, err)
	assert.Equal(t, -0.5, c)
	assert.True(t, gg.Traits().Has(core.NegativeEdges))

	_, err = gg.MovementCostBetween("A1", "B2")
	assert.ErrorIs(t, err, core.ErrNotNeighbours)
}

func TestGridGraph_Conn8(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 2},
	}, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	require.NoError(t, err)

	assert.Equal(t, []string{"B1", "C1", "C2", "C3", "B3", "A3", "A2", "A1"}, gg.NeighboursOf("B2"))
	assert.Len(t, gg.NeighboursOf("A1"), 3)

	c, err := gg.MovementCostBetween("B2", "C3")
	require.NoError(t, err)
	assert.Equal(t, 2.0, c)
	assert.Equal(t, "conn8", gg.Conn.String())
}

func TestGridGraph_Immutable(t *testing.T) {
	prices := [][]float64{{1, 1}}
	gg, err := gridgraph.NewGridGraph(prices, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	prices[0][1] = 5
	assert.Equal(t, 1.0, gg.Prices[0][1])
	c, _ := gg.MovementCostBetween("A1", "B1")
	assert.Equal(t, 1.0, c)
}

func TestGridGraph_AllObstacles(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]float64{{inf, inf}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Zero(t, gg.Len())
	assert.Empty(t, gg.Regions())
}

//----------------------------------------------------------------------------//
// Regions
//----------------------------------------------------------------------------//

func TestRegions(t *testing.T) {
	grid := [][]float64{
		{1, 1},
		{inf, inf},
		{1, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A1", "B1"}, {"A3", "B3"}}, gg.Regions())

	diagonal := [][]float64{
		{1, inf},
		{inf, 1},
	}
	gg4, err := gridgraph.NewGridGraph(diagonal, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Len(t, gg4.Regions(), 2)

	gg8, err := gridgraph.NewGridGraph(diagonal, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A1", "B2"}}, gg8.Regions())
}
