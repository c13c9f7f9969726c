package fixture

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/pathfinder/core"
)

// RandomNetwork returns a directed Erdős–Rényi graph on n nodes labelled
// "0".."n-1". Every ordered pair (i, j), i != j, is tried once in i asc,
// j asc order and kept with probability p; kept edges cost a uniform value
// in [1, 10). The same seed always yields the same graph.
func RandomNetwork(seed int64, n int, p float64) *core.Graph {
	if n < 1 || p < 0 || p > 1 {
		panic(fmt.Sprintf("fixture: RandomNetwork(n=%d, p=%g)", n, p))
	}
	rng := rand.New(rand.NewSource(seed))

	vertices := make([]core.Vertex, n)
	for i := range vertices {
		var edges []core.Edge
		for j := 0; j < n; j++ {
			if i == j || rng.Float64() > p {
				continue
			}
			edges = append(edges, core.To(strconv.Itoa(j), 1+9*rng.Float64()))
		}
		vertices[i] = core.Node(strconv.Itoa(i), edges...)
	}

	return must(core.New(vertices))
}

// RandomTerrain is RandomNetwork with every node placed in a 100×100 plane.
// An edge costs its straight-line length times a surcharge in [1, 2), so the
// Euclidean distance never overestimates.
func RandomTerrain(seed int64, n int, p float64) *core.Graph {
	if n < 1 || p < 0 || p > 1 {
		panic(fmt.Sprintf("fixture: RandomTerrain(n=%d, p=%g)", n, p))
	}
	rng := rand.New(rand.NewSource(seed))

	xs, ys := make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i], ys[i] = 100*rng.Float64(), 100*rng.Float64()
	}

	vertices := make([]core.Vertex, n)
	for i := range vertices {
		var edges []core.Edge
		for j := 0; j < n; j++ {
			if i == j || rng.Float64() > p {
				continue
			}
			length := math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
			edges = append(edges, core.To(strconv.Itoa(j), length*(1+rng.Float64())))
		}
		vertices[i] = core.Location(strconv.Itoa(i), core.At(xs[i], ys[i]), edges...)
	}

	return must(core.New(vertices))
}
