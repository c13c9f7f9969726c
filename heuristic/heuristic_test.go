package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/heuristic"
	"github.com/katalvlaran/pathfinder/metric"
)

type table map[[2]string]float64

func (t table) Distance(start, goal string) (float64, bool) {
	d, ok := t[[2]string{start, goal}]
	return d, ok
}

func square(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.New([]core.Vertex{
		core.Location("A", core.At(0, 0), core.To("B", 5), core.To("C", 8)),
		core.Location("B", core.At(0, 4), core.To("D", 9), core.To("A", 1)),
		core.Location("C", core.At(4, 0), core.To("D", 4), core.To("A", 1)),
		core.Location("D", core.At(4, 4), core.To("B", 3), core.To("C", 9)),
	})
	require.NoError(t, err)

	return g
}

func TestDirect(t *testing.T) {
	env := square(t)
	h := heuristic.Direct(metric.Euclidean(2), env)

	assert.InDelta(t, 4*math.Sqrt2, h.Estimate("A", "D"), 1e-9)
	assert.Equal(t, 4.0, h.Estimate("A", "B"))
	assert.Equal(t, 0.0, h.Estimate("C", "C"))
	assert.Same(t, env, h.Environment())

	taxi := heuristic.Direct(metric.Taxicab(2), env)
	assert.Equal(t, 8.0, taxi.Estimate("A", "D"))
}

func TestIndexed(t *testing.T) {
	env := square(t)
	h := heuristic.Indexed(table{{"A", "D"}: 12}, env)

	assert.Equal(t, 12.0, h.Estimate("A", "D"))
	assert.True(t, math.IsInf(h.Estimate("D", "A"), 1))
	assert.True(t, math.IsInf(h.Estimate("A", "X3456"), 1))
}

func TestSafely(t *testing.T) {
	env := square(t)
	h := heuristic.Safely(heuristic.Direct(metric.Euclidean(2), env))

	assert.Equal(t, 9.0, h.Estimate("B", "D"), "neighbours get the exact edge cost")
	assert.Equal(t, 1.0, h.Estimate("B", "A"))
	assert.InDelta(t, 4*math.Sqrt2, h.Estimate("A", "D"), 1e-9, "non-neighbours delegate")
	assert.Same(t, env, h.Environment())
}

func TestSafely_CapsOverestimates(t *testing.T) {
	env := square(t)
	h := heuristic.Safely(heuristic.Indexed(table{{"C", "D"}: 100}, env))

	assert.Equal(t, 4.0, h.Estimate("C", "D"))
}

func TestRebind(t *testing.T) {
	old := square(t)
	fresh, err := core.New([]core.Vertex{
		core.Location("A", core.At(0, 0), core.To("D", 2)),
		core.Location("D", core.At(4, 4)),
	})
	require.NoError(t, err)

	inner := heuristic.Indexed(table{{"A", "D"}: 12}, old)
	h := heuristic.Rebind(inner, fresh)

	assert.Equal(t, 12.0, h.Estimate("A", "D"), "estimates come from the old index")
	assert.Same(t, fresh, h.Environment())

	// Safety consults the rebound environment.
	assert.Equal(t, 2.0, heuristic.Safely(h).Estimate("A", "D"))
}

func TestConstructors_PanicOnNil(t *testing.T) {
	env := square(t)
	assert.Panics(t, func() { heuristic.Direct(nil, env) })
	assert.Panics(t, func() { heuristic.Direct(metric.Euclidean(2), nil) })
	assert.Panics(t, func() { heuristic.Indexed(nil, env) })
	assert.Panics(t, func() { heuristic.Safely(nil) })
	assert.Panics(t, func() { heuristic.Rebind(nil, env) })
}
