// Package fixture builds the small graphs shared by the test suites of the
// search packages. Every constructor panics on error; inputs are constants.
package fixture

import (
	"math"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/gridgraph"
	"github.com/katalvlaran/pathfinder/metric"
)

// Inf marks an obstacle cell.
var Inf = math.Inf(1)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

// Network is the four-node example: A→C→D is the cheapest way from A to D
// and D→B→A the cheapest way back.
func Network() *core.Graph {
	return must(core.New([]core.Vertex{
		core.Node("A", core.To("B", 5), core.To("C", 8)),
		core.Node("B", core.To("D", 9), core.To("A", 1)),
		core.Node("C", core.To("D", 4), core.To("A", 1)),
		core.Node("D", core.To("B", 3), core.To("C", 9)),
	}))
}

// Environment is Network placed on the corners of a 4×4 square.
func Environment() *core.Graph {
	return must(core.New([]core.Vertex{
		core.Location("A", core.At(0, 0), core.To("B", 5), core.To("C", 8)),
		core.Location("B", core.At(0, 4), core.To("D", 9), core.To("A", 1)),
		core.Location("C", core.At(4, 0), core.To("D", 4), core.To("A", 1)),
		core.Location("D", core.At(4, 4), core.To("B", 3), core.To("C", 9)),
	}))
}

// Edgeless has four located nodes and no edges.
func Edgeless() *core.Graph {
	return must(core.New([]core.Vertex{
		core.Location("A", core.At(0, 0)),
		core.Location("B", core.At(0, 4)),
		core.Location("C", core.At(4, 0)),
		core.Location("D", core.At(4, 4)),
	}))
}

// ThreeDimensional derives unit edge costs from 3D distances.
func ThreeDimensional() *core.Graph {
	return must(core.New([]core.Vertex{
		core.Location("A", core.At(0, 0, 0), core.ToAll("B", "C")...),
		core.Location("B", core.At(0, 2, 9), core.ToAll("A", "C", "D")...),
		core.Location("C", core.At(2, 0, 0), core.ToAll("D", "A")...),
		core.Location("D", core.At(2, 2, 0), core.ToAll("B", "C")...),
	}, core.WithEdgeCostsFrom(metric.Euclidean(3))))
}

// FourDimensional carries precomputed 4D distances as edge costs.
func FourDimensional() *core.Graph {
	return must(core.New([]core.Vertex{
		core.Location("A", core.At(0, 0, 0, 0), core.To("B", 13.6014), core.To("C", 2)),
		core.Location("B", core.At(0, 2, 9, 10), core.To("A", 13.6014), core.To("C", 13.7477), core.To("D", 9.2195)),
		core.Location("C", core.At(2, 0, 0, 0), core.To("D", 10.1980), core.To("A", 2)),
		core.Location("D", core.At(2, 2, 0, 10), core.To("B", 9.2195), core.To("C", 10.1980)),
	}))
}

// NegativeCycle contains the cycle B→C→D→B of cost -1; E hangs off B.
func NegativeCycle() *core.Graph {
	return must(core.New([]core.Vertex{
		core.Node("A", core.To("B", 1)),
		core.Node("B", core.To("C", 0), core.To("E", 1)),
		core.Node("C", core.To("D", 0)),
		core.Node("D", core.To("B", -1)),
		core.Node("E"),
	}))
}

// Grid builds a grid environment, panicking on malformed input.
func Grid(conn gridgraph.Connectivity, rows ...[]float64) *gridgraph.GridGraph {
	return must(gridgraph.NewGridGraph(rows, gridgraph.GridOptions{Conn: conn}))
}

// Walled is the 4×3 grid whose B2:C2 block forces B1→B3 around through column A.
func Walled() *gridgraph.GridGraph {
	return Grid(gridgraph.Conn4,
		[]float64{1, 1, 1, 1},
		[]float64{1, Inf, Inf, 1},
		[]float64{1, 1, 1, 1},
	)
}

// WalledDiagonal is Walled with diagonal moves.
func WalledDiagonal() *gridgraph.GridGraph {
	return Grid(gridgraph.Conn8,
		[]float64{1, 1, 1, 1},
		[]float64{1, Inf, Inf, 1},
		[]float64{1, 1, 1, 1},
	)
}

// WalledPricey makes column A expensive enough to prefer the long way round.
func WalledPricey() *gridgraph.GridGraph {
	return Grid(gridgraph.Conn4,
		[]float64{2, 1, 1, 1},
		[]float64{10, Inf, Inf, 1},
		[]float64{2, 1, 1, 1},
	)
}

// WalledNegative prices column A at -1.
func WalledNegative() *gridgraph.GridGraph {
	return Grid(gridgraph.Conn4,
		[]float64{-1, 1, 1, 1},
		[]float64{-1, Inf, Inf, 1},
		[]float64{-1, 1, 1, 1},
	)
}

// Wide is a 30×3 open grid with diagonal moves.
func Wide() *gridgraph.GridGraph {
	rows := make([][]float64, 3)
	for y := range rows {
		rows[y] = make([]float64, 30)
		for x := range rows[y] {
			rows[y][x] = 1
		}
	}

	return Grid(gridgraph.Conn8, rows...)
}

// Open is an n×n grid of unit prices.
func Open(n int) *gridgraph.GridGraph {
	rows := make([][]float64, n)
	for y := range rows {
		rows[y] = make([]float64, n)
		for x := range rows[y] {
			rows[y][x] = 1
		}
	}

	return Grid(gridgraph.Conn4, rows...)
}
