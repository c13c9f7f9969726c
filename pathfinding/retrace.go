package pathfinding

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/pathfinder/core"
)

// Retrace walks the predecessor map back from goal to start and returns the
// path in forward order. It fails with ErrNoSuchPath if the chain breaks
// before reaching start, and with ErrNegativeCycle if the chain loops.
//
// Complexity: O(path length).
func Retrace(start, goal string, prev map[string]string) ([]string, error) {
	path := []string{goal}
	node := goal
	for node != start {
		p, ok := prev[node]
		if !ok {
			return nil, NoSuchPath(start, goal)
		}
		path = append(path, p)
		if len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: predecessors of %q loop", ErrNegativeCycle, goal)
		}
		node = p
	}
	slices.Reverse(path)

	return path, nil
}

// Paths retraces every goal recorded in prev, skipping start itself.
func Paths(start string, prev map[string]string) (map[string][]string, error) {
	out := make(map[string][]string, len(prev))
	for goal := range prev {
		if goal == start {
			continue
		}
		path, err := Retrace(start, goal, prev)
		if err != nil {
			return nil, err
		}
		out[goal] = path
	}

	return out, nil
}

// Cost sums the edge costs along path. A path of fewer than two nodes costs 0.
// Consecutive nodes that share no edge yield the network's error.
func Cost(n core.Network, path []string) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		c, err := n.MovementCostBetween(path[i-1], path[i])
		if err != nil {
			return 0, err
		}
		total += c
	}

	return total, nil
}
