package pathfinding_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/pathfinding"
)

// ------------------------------------------------------------------------
// 1. Error family
// ------------------------------------------------------------------------

func TestErrors_Family(t *testing.T) {
	for _, err := range []error{
		pathfinding.NonExistingStart("Z"),
		pathfinding.NoSuchPath("A", "Z"),
		pathfinding.NegativeCycle("B", "D"),
	} {
		assert.ErrorIs(t, err, pathfinding.ErrNoPathAvailable, err.Error())
	}

	assert.ErrorIs(t, pathfinding.NonExistingStart("Z"), pathfinding.ErrNonExistingStart)
	assert.NotErrorIs(t, pathfinding.NonExistingStart("Z"), pathfinding.ErrNoSuchPath)
	assert.ErrorIs(t, pathfinding.NoSuchPath("A", "Z"), pathfinding.ErrNoSuchPath)
}

func TestNegativeCycleError(t *testing.T) {
	err := pathfinding.NegativeCycle("B", "D")

	var nc *pathfinding.NegativeCycleError
	require.True(t, errors.As(err, &nc))
	assert.Equal(t, "B", nc.From)
	assert.Equal(t, "D", nc.To)
	assert.ErrorIs(t, err, pathfinding.ErrNegativeCycle)
	assert.Contains(t, err.Error(), `near the nodes "B" and "D"`)
}

// ------------------------------------------------------------------------
// 2. Retracing
// ------------------------------------------------------------------------

func TestRetrace(t *testing.T) {
	prev := map[string]string{"B": "A", "C": "B", "D": "C"}

	path, err := pathfinding.Retrace("A", "D", prev)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)

	path, err = pathfinding.Retrace("A", "A", prev)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)

	_, err = pathfinding.Retrace("A", "E", prev)
	assert.ErrorIs(t, err, pathfinding.ErrNoSuchPath)
}

func TestRetrace_Loop(t *testing.T) {
	prev := map[string]string{"B": "C", "C": "D", "D": "B"}

	_, err := pathfinding.Retrace("A", "D", prev)
	assert.ErrorIs(t, err, pathfinding.ErrNegativeCycle)
}

func TestPaths(t *testing.T) {
	prev := map[string]string{"B": "A", "C": "A", "D": "C", "A": "B"}

	paths, err := pathfinding.Paths("A", prev)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"B": {"A", "B"},
		"C": {"A", "C"},
		"D": {"A", "C", "D"},
	}, paths)
}

func TestCost(t *testing.T) {
	g, err := core.New([]core.Vertex{
		core.Node("A", core.To("B", 5), core.To("C", 8)),
		core.Node("B"),
		core.Node("C", core.To("D", 4)),
		core.Node("D"),
	})
	require.NoError(t, err)

	c, err := pathfinding.Cost(g, []string{"A", "C", "D"})
	require.NoError(t, err)
	assert.Equal(t, 12.0, c)

	c, err = pathfinding.Cost(g, []string{"A"})
	require.NoError(t, err)
	assert.Zero(t, c)

	_, err = pathfinding.Cost(g, []string{"A", "D"})
	assert.ErrorIs(t, err, core.ErrNotNeighbours)
}

// ------------------------------------------------------------------------
// 3. Frontier
// ------------------------------------------------------------------------

func TestFrontier_MinOrder(t *testing.T) {
	f := pathfinding.NewFrontier(0)
	f.Push("c", 3)
	f.Push("a", -1)
	f.Push("inf", math.Inf(1))
	f.Push("b", 2)
	f.Push("b2", 2)

	var order []string
	for f.Len() > 0 {
		n, _ := f.Pop()
		order = append(order, n)
	}
	assert.Equal(t, []string{"a", "b", "b2", "c", "inf"}, order)
}

// ------------------------------------------------------------------------
// 4. Options
// ------------------------------------------------------------------------

func TestOptions(t *testing.T) {
	o := pathfinding.Configure()
	assert.NoError(t, o.Interrupted())
	assert.True(t, math.IsInf(o.MaxCost, 1))
	o.Expand("A") // no hook: no-op

	var seen []string
	ctx, cancel := context.WithCancel(context.Background())
	o = pathfinding.Configure(
		pathfinding.WithContext(ctx),
		pathfinding.WithOnExpand(func(n string) { seen = append(seen, n) }),
		pathfinding.WithMaxCost(10),
	)
	o.Expand("A")
	assert.Equal(t, []string{"A"}, seen)
	assert.Equal(t, 10.0, o.MaxCost)

	cancel()
	assert.ErrorIs(t, o.Interrupted(), context.Canceled)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	//nolint:staticcheck // nil context is the point of the test
	assert.Panics(t, func() { pathfinding.WithContext(nil) })
	assert.Panics(t, func() { pathfinding.WithOnExpand(nil) })
	assert.Panics(t, func() { pathfinding.WithMaxCost(math.NaN()) })
}
