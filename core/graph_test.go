package core_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/metric"
)

func example(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.New([]core.Vertex{
		core.Node("A", core.To("B", 5), core.To("C", 8)),
		core.Node("B", core.To("D", 9), core.To("A", 1)),
		core.Node("C", core.To("D", 4), core.To("A", 1)),
		core.Node("D", core.To("B", 3), core.To("C", 9)),
	})
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestNew_Validation(t *testing.T) {
	origin := core.At(0, 0)
	cases := []struct {
		name     string
		vertices []core.Vertex
		opts     []core.Option
		want     error
	}{
		{"empty label", []core.Vertex{core.Node("")}, nil, core.ErrEmptyLabel},
		{"duplicate node", []core.Vertex{core.Node("A"), core.Node("A")}, nil, core.ErrDuplicateNode},
		{"duplicate edge", []core.Vertex{core.Node("A", core.To("B", 1), core.To("B", 2)), core.Node("B")}, nil, core.ErrDuplicateEdge},
		{"unknown target", []core.Vertex{core.Node("A", core.To("Z", 1))}, nil, core.ErrUnknownTarget},
		{"mixed positions", []core.Vertex{core.Location("A", origin), core.Node("B")}, nil, core.ErrMixedPositions},
		{"metric without positions", []core.Vertex{core.Node("A")}, []core.Option{core.WithEdgeCostsFrom(metric.Euclidean(2))}, core.ErrNoPositions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.New(tc.vertices, tc.opts...)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestWithEdgeCostsFrom_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { core.WithEdgeCostsFrom(nil) })
}

// ------------------------------------------------------------------------
// 2. Queries
// ------------------------------------------------------------------------

func TestGraph_Queries(t *testing.T) {
	g := example(t)

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.All())
	assert.Equal(t, 4, g.Len())
	assert.True(t, g.Has("C"))
	assert.False(t, g.Has("Z"))
	assert.Equal(t, []string{"D", "A"}, g.NeighboursOf("B"))
	assert.Nil(t, g.NeighboursOf("Z"))
	assert.True(t, g.AreNeighbours("A", "B"))
	assert.False(t, g.AreNeighbours("A", "D"))
	assert.False(t, g.AreNeighbours("Z", "A"))

	c, err := g.MovementCostBetween("C", "D")
	require.NoError(t, err)
	assert.Equal(t, 4.0, c)

	_, err = g.MovementCostBetween("A", "D")
	assert.ErrorIs(t, err, core.ErrNotNeighbours)

	assert.Equal(t, core.Traits(0), g.Traits())
	assert.Equal(t, 0, g.PositionOf("A").Dimensions())
}

func TestGraph_ResultsAreCopies(t *testing.T) {
	g := example(t)

	all := g.All()
	all[0] = "mutated"
	assert.Equal(t, "A", g.All()[0])

	edges := g.EdgesOf("A")
	edges[0].Cost = 100
	c, _ := g.MovementCostBetween("A", "B")
	assert.Equal(t, 5.0, c)
}

func TestGraph_NegativeEdges(t *testing.T) {
	g, err := core.New([]core.Vertex{
		core.Node("A", core.To("B", -1)),
		core.Node("B"),
	})
	require.NoError(t, err)
	assert.True(t, g.Traits().Has(core.NegativeEdges))
	assert.False(t, g.Traits().Has(core.Geometric))
	assert.Equal(t, "negative-edges", g.Traits().String())
}

func TestGraph_Located(t *testing.T) {
	g, err := core.New([]core.Vertex{
		core.Location("A", core.At(0, 0), core.ToAll("B", "C")...),
		core.Location("B", core.At(0, 2, 9), core.ToAll("A")...),
		core.Location("C", core.At(2, 0, 0), core.To("A", 3)),
	}, core.WithEdgeCostsFrom(metric.Euclidean(3)))
	require.NoError(t, err)

	assert.True(t, g.Traits().Has(core.Geometric))
	assert.Equal(t, "geometric", g.Traits().String())
	assert.True(t, g.PositionOf("B").Equal(core.At(0, 2, 9)))
	assert.True(t, g.PositionOf("Z").Equal(core.At()))

	ab, err := g.MovementCostBetween("A", "B")
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(85), ab, 1e-9)

	ca, err := g.MovementCostBetween("C", "A")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, ca, 1e-9) // 3 - 1 + 2
}

func TestTraits_String(t *testing.T) {
	assert.Equal(t, "plain", core.Traits(0).String())
	assert.Equal(t, "geometric|negative-edges", (core.Geometric | core.NegativeEdges).String())
}

func TestView(t *testing.T) {
	plain := example(t)
	env := core.View(plain)
	assert.True(t, env.PositionOf("A").Equal(core.At()))
	assert.Equal(t, plain.NeighboursOf("A"), env.NeighboursOf("A"))
	assert.False(t, env.Traits().Has(core.Geometric))

	located, err := core.New([]core.Vertex{core.Location("A", core.At(1, 2))})
	require.NoError(t, err)
	assert.Same(t, located, core.View(located))
}

func TestGraph_ConcurrentReads(t *testing.T) {
	g := example(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, n := range g.All() {
				for _, m := range g.NeighboursOf(n) {
					_, err := g.MovementCostBetween(n, m)
					assert.NoError(t, err)
				}
			}
		}()
	}
	wg.Wait()
}
