package floydwarshall

import (
	"math"

	"github.com/katalvlaran/pathfinder/heuristic"
	"github.com/katalvlaran/pathfinder/pathfinding"
)

// Index is the result of one closure: a distance table and a next-hop table
// over a fixed list of labels. It is immutable and safe for concurrent reads.
type Index struct {
	labels []string
	pos    map[string]int
	dist   []float64 // row-major, +Inf when unreachable
	next   []int     // row-major, -1 when there is no next hop
}

var (
	_ pathfinding.ShortestPathForest = (*Index)(nil)
	_ heuristic.DistanceTable        = (*Index)(nil)
)

func newIndex(labels []string) *Index {
	size := len(labels)
	x := &Index{
		labels: labels,
		pos:    make(map[string]int, size),
		dist:   make([]float64, size*size),
		next:   make([]int, size*size),
	}
	for i, l := range labels {
		x.pos[l] = i
	}
	inf := math.Inf(1)
	for c := range x.dist {
		x.dist[c] = inf
		x.next[c] = -1
	}

	return x
}

// Len returns the number of indexed nodes.
func (x *Index) Len() int { return len(x.labels) }

// Labels returns the indexed nodes in table order.
func (x *Index) Labels() []string {
	out := make([]string, len(x.labels))
	copy(out, x.labels)

	return out
}

// NextStepOnTheRoadBetween returns the node that follows start on the
// cheapest known path to goal. Unknown labels, start == goal and
// unreachable pairs all fail with pathfinding.ErrNoSuchPath.
func (x *Index) NextStepOnTheRoadBetween(start, goal string) (string, error) {
	i, ok := x.pos[start]
	if !ok {
		return "", pathfinding.NoSuchPath(start, goal)
	}
	j, ok := x.pos[goal]
	if !ok {
		return "", pathfinding.NoSuchPath(start, goal)
	}
	hop := x.next[i*len(x.labels)+j]
	if hop < 0 {
		return "", pathfinding.NoSuchPath(start, goal)
	}

	return x.labels[hop], nil
}

// Distance returns the indexed distance from start to goal; false when
// either label is unknown or goal is unreachable.
func (x *Index) Distance(start, goal string) (float64, bool) {
	i, ok := x.pos[start]
	if !ok {
		return 0, false
	}
	j, ok := x.pos[goal]
	if !ok {
		return 0, false
	}
	d := x.dist[i*len(x.labels)+j]
	if math.IsInf(d, 1) {
		return 0, false
	}

	return d, true
}

// NegativeCycle reports whether some node reaches itself at negative cost,
// in which case distances and next hops through that node are meaningless.
func (x *Index) NegativeCycle() bool {
	size := len(x.labels)
	for i := 0; i < size; i++ {
		if x.dist[i*size+i] < 0 {
			return true
		}
	}

	return false
}
