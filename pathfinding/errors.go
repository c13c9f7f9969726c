package pathfinding

import (
	"errors"
	"fmt"
)

// The "no path available" failure family.
var (
	// ErrNoPathAvailable is wrapped by every query failure below.
	ErrNoPathAvailable = errors.New("pathfinding: no path available")

	// ErrNonExistingStart indicates the start node is not part of the graph.
	ErrNonExistingStart = fmt.Errorf("%w: start does not exist", ErrNoPathAvailable)

	// ErrNoSuchPath indicates the goal is absent or cannot be reached.
	ErrNoSuchPath = fmt.Errorf("%w: no such path", ErrNoPathAvailable)

	// ErrNegativeCycle indicates a reachable cycle of negative total cost.
	ErrNegativeCycle = fmt.Errorf("%w: negative cycle detected", ErrNoPathAvailable)
)

// NonExistingStart reports that start is not a node.
func NonExistingStart(start string) error {
	return fmt.Errorf("%w: %q", ErrNonExistingStart, start)
}

// NoSuchPath reports that goal cannot be reached from start.
func NoSuchPath(start, goal string) error {
	return fmt.Errorf("%w: between %q and %q", ErrNoSuchPath, start, goal)
}

// NegativeCycleError names the edge From→To that could still be relaxed
// after the search should have converged.
type NegativeCycleError struct {
	From, To string
}

// Error implements error.
func (e *NegativeCycleError) Error() string {
	return fmt.Sprintf("%s near the nodes %q and %q", ErrNegativeCycle, e.From, e.To)
}

// Unwrap returns ErrNegativeCycle.
func (e *NegativeCycleError) Unwrap() error { return ErrNegativeCycle }

// NegativeCycle builds a *NegativeCycleError.
func NegativeCycle(from, to string) error {
	return &NegativeCycleError{From: from, To: to}
}
