// Package metric provides distance functions between core.Position values.
//
// Each metric reads only the first N axes of its operands (default 2);
// axes missing from a position count as 0, so positions of differing
// dimensionality can be compared.
//
//	Euclidean  – sqrt(Σ (aᵢ - bᵢ)²)
//	Taxicab    – Σ |aᵢ - bᵢ|
//	Chebyshev  – max |aᵢ - bᵢ|
//
// All three are admissible heuristics on graphs whose edge costs are at least
// the corresponding distance between the endpoints.
package metric

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/pathfinder/core"
)

// DefaultDimensions is the axis count used when none is given.
const DefaultDimensions = 2

// ErrUnknownMetric indicates ByName was asked for a metric it does not know.
var ErrUnknownMetric = errors.New("metric: unknown metric")

// Kind names a family of metrics.
type Kind string

// Supported kinds.
const (
	KindEuclidean Kind = "euclidean"
	KindTaxicab   Kind = "taxicab"
	KindChebyshev Kind = "chebyshev"
)

// Metric is a distance function restricted to a fixed number of axes.
type Metric struct {
	kind       Kind
	dimensions int
}

var _ core.Metric = Metric{}

// Euclidean returns the straight-line distance over the first dims axes.
// Panics if dims < 1.
func Euclidean(dims int) Metric { return newMetric(KindEuclidean, dims) }

// Taxicab returns the sum of absolute axis differences over the first dims axes.
// Panics if dims < 1.
func Taxicab(dims int) Metric { return newMetric(KindTaxicab, dims) }

// Chebyshev returns the largest absolute axis difference over the first dims axes.
// Panics if dims < 1.
func Chebyshev(dims int) Metric { return newMetric(KindChebyshev, dims) }

func newMetric(k Kind, dims int) Metric {
	if dims < 1 {
		panic(fmt.Sprintf("metric: %s in %d dimensions", k, dims))
	}

	return Metric{kind: k, dimensions: dims}
}

// ByName resolves a metric by its case-insensitive name.
// A dims value of 0 selects DefaultDimensions.
func ByName(name string, dims int) (Metric, error) {
	if dims == 0 {
		dims = DefaultDimensions
	}
	if dims < 0 {
		return Metric{}, fmt.Errorf("%w: %s in %d dimensions", ErrUnknownMetric, name, dims)
	}
	switch k := Kind(strings.ToLower(strings.TrimSpace(name))); k {
	case KindEuclidean, KindTaxicab, KindChebyshev:
		return newMetric(k, dims), nil
	default:
		return Metric{}, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// Kind reports the metric family.
func (m Metric) Kind() Kind { return m.kind }

// Dimensions reports how many axes the metric reads.
func (m Metric) Dimensions() int { return m.dimensions }

// String formats the metric as e.g. "euclidean/3d".
func (m Metric) String() string { return fmt.Sprintf("%s/%dd", m.kind, m.dimensions) }

// DistanceBetween measures the distance between a and b.
func (m Metric) DistanceBetween(a, b core.Position) float64 {
	var acc float64
	for i := 0; i < m.dimensions; i++ {
		d := math.Abs(a.Axis(i) - b.Axis(i))
		switch m.kind {
		case KindEuclidean:
			acc += d * d
		case KindTaxicab:
			acc += d
		case KindChebyshev:
			acc = math.Max(acc, d)
		}
	}
	if m.kind == KindEuclidean {
		return math.Sqrt(acc)
	}

	return acc
}
