package floydwarshall

import (
	"fmt"
	"math"
)

// Snapshot is the portable form of an Index. Unreachable distances are +Inf
// and missing next hops are -1.
type Snapshot struct {
	Labels    []string    `yaml:"labels"`
	Distances [][]float64 `yaml:"distances"`
	Next      [][]int     `yaml:"next"`
}

// Snapshot copies the index tables out.
func (x *Index) Snapshot() Snapshot {
	size := len(x.labels)
	s := Snapshot{
		Labels:    x.Labels(),
		Distances: make([][]float64, size),
		Next:      make([][]int, size),
	}
	for i := 0; i < size; i++ {
		s.Distances[i] = append([]float64(nil), x.dist[i*size:(i+1)*size]...)
		s.Next[i] = append([]int(nil), x.next[i*size:(i+1)*size]...)
	}

	return s
}

// Restore rebuilds an Index from s.
//
// Checks (in order):
//  1. labels are non-empty and unique;
//  2. both tables are square over the labels;
//  3. no distance is NaN and every next hop is -1 or a valid row.
func Restore(s Snapshot) (*Index, error) {
	size := len(s.Labels)
	seen := make(map[string]struct{}, size)
	for _, l := range s.Labels {
		if l == "" {
			return nil, fmt.Errorf("%w: empty label", ErrCorruptSnapshot)
		}
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrCorruptSnapshot, l)
		}
		seen[l] = struct{}{}
	}
	if len(s.Distances) != size || len(s.Next) != size {
		return nil, fmt.Errorf("%w: %d labels, %d distance rows, %d next rows",
			ErrCorruptSnapshot, size, len(s.Distances), len(s.Next))
	}

	x := newIndex(append([]string(nil), s.Labels...))
	for i := 0; i < size; i++ {
		if len(s.Distances[i]) != size || len(s.Next[i]) != size {
			return nil, fmt.Errorf("%w: row %d is not %d wide", ErrCorruptSnapshot, i, size)
		}
		for j := 0; j < size; j++ {
			d, hop := s.Distances[i][j], s.Next[i][j]
			if math.IsNaN(d) {
				return nil, fmt.Errorf("%w: NaN distance at (%d,%d)", ErrCorruptSnapshot, i, j)
			}
			if hop < -1 || hop >= size {
				return nil, fmt.Errorf("%w: next hop %d out of range at (%d,%d)", ErrCorruptSnapshot, hop, i, j)
			}
			x.dist[i*size+j] = d
			x.next[i*size+j] = hop
		}
	}

	return x, nil
}
