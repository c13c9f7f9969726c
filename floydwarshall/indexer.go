package floydwarshall

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/heuristic"
	"github.com/katalvlaran/pathfinder/pathfinding"
)

// Indexer lazily builds and caches the Index of one network.
// It is safe for concurrent use; only a successful build is cached.
type Indexer struct {
	network core.Network
	options Options

	mu    sync.Mutex
	index *Index
}

var _ pathfinding.Indexer = (*Indexer)(nil)

// NewIndexer returns an Indexer over n. Panics if n is nil.
func NewIndexer(n core.Network, opts ...Option) *Indexer {
	if n == nil {
		panic("floydwarshall: nil network")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Indexer{network: n, options: o}
}

// Index returns the cached Index, building it on first use.
func (x *Indexer) Index() (*Index, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.index != nil {
		return x.index, nil
	}
	idx, err := build(x.network, x.options)
	if err != nil {
		return nil, err
	}
	x.index = idx

	return idx, nil
}

// AllShortestPaths returns the cached Index as a forest.
func (x *Indexer) AllShortestPaths() (pathfinding.ShortestPathForest, error) {
	idx, err := x.Index()
	if err != nil {
		return nil, err
	}

	return idx, nil
}

// Heuristic returns an indexed heuristic over the network. Its estimates are
// exact for the network as it was when indexed.
func (x *Indexer) Heuristic() (heuristic.Heuristic, error) {
	idx, err := x.Index()
	if err != nil {
		return nil, err
	}

	return heuristic.Indexed(idx, core.View(x.network)), nil
}

// Build runs the closure over n once, without caching. Panics if n is nil.
func Build(n core.Network, opts ...Option) (*Index, error) {
	x := NewIndexer(n, opts...)

	return build(x.network, x.options)
}

func build(n core.Network, o Options) (*Index, error) {
	labels := n.All()
	idx := newIndex(labels)
	if err := idx.seed(n); err != nil {
		return nil, err
	}

	r := &runner{idx: idx, options: o, pivot: make([]float64, len(labels))}
	if err := r.run(); err != nil {
		return nil, err
	}

	return idx, nil
}

// seed fills the tables with self-distances and direct edges.
func (x *Index) seed(n core.Network) error {
	size := len(x.labels)
	for i, from := range x.labels {
		x.dist[i*size+i] = 0
		for _, to := range n.NeighboursOf(from) {
			j, ok := x.pos[to]
			if !ok {
				return fmt.Errorf("floydwarshall: edge %s→%s leaves the graph: %w", from, to, core.ErrUnknownTarget)
			}
			w, err := n.MovementCostBetween(from, to)
			if err != nil {
				return fmt.Errorf("floydwarshall: seeding %s→%s: %w", from, to, err)
			}
			if w < x.dist[i*size+j] {
				x.dist[i*size+j] = w
				x.next[i*size+j] = j
			}
		}
	}

	return nil
}

// runner holds the state of one closure.
type runner struct {
	idx     *Index
	options Options
	pivot   []float64 // copy of row k for the current pass
}

func (r *runner) run() error {
	size := len(r.idx.labels)
	workers := r.options.Workers
	if workers > size {
		workers = size
	}

	for k := 0; k < size; k++ {
		if err := r.options.Ctx.Err(); err != nil {
			return fmt.Errorf("floydwarshall: indexing interrupted: %w", err)
		}
		copy(r.pivot, r.idx.dist[k*size:(k+1)*size])

		if workers <= 1 {
			r.rows(k, 0, size)
			continue
		}

		// Rows are disjoint; each goroutine owns a contiguous band.
		var g errgroup.Group
		band := (size + workers - 1) / workers
		for lo := 0; lo < size; lo += band {
			lo, hi := lo, min(lo+band, size)
			g.Go(func() error {
				r.rows(k, lo, hi)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	return nil
}

// rows relaxes rows [lo, hi) through intermediate k.
func (r *runner) rows(k, lo, hi int) {
	size := len(r.idx.labels)
	dist, next := r.idx.dist, r.idx.next

	var (
		i, j     int
		base     int
		ik, cand float64
	)
	for i = lo; i < hi; i++ {
		base = i * size
		ik = dist[base+k]
		if math.IsInf(ik, 1) {
			continue
		}
		for j = 0; j < size; j++ {
			cand = ik + r.pivot[j]
			if cand < dist[base+j] {
				dist[base+j] = cand
				next[base+j] = next[base+k]
			}
		}
	}
}
