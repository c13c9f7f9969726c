// File: position.go
// Role: Immutable n-dimensional coordinates.

package core

import (
	"strconv"
	"strings"
)

// Position is a read-only point in n-dimensional space.
// The zero value is the origin in zero dimensions.
type Position struct {
	coords []float64
}

// At returns a position with the given coordinates. The slice is copied.
func At(coords ...float64) Position {
	c := make([]float64, len(coords))
	copy(c, coords)

	return Position{coords: c}
}

// Axis returns the coordinate on axis i, or 0 for any axis outside the
// declared dimensions (including negative ones).
func (p Position) Axis(i int) float64 {
	if i < 0 || i >= len(p.coords) {
		return 0
	}

	return p.coords[i]
}

// Dimensions returns the number of declared axes.
func (p Position) Dimensions() int { return len(p.coords) }

// Coordinates returns a copy of the declared axes.
func (p Position) Coordinates() []float64 {
	c := make([]float64, len(p.coords))
	copy(c, p.coords)

	return c
}

// Equal reports whether p and q agree on every axis; missing axes count as 0.
func (p Position) Equal(q Position) bool {
	n := max(len(p.coords), len(q.coords))
	for i := 0; i < n; i++ {
		if p.Axis(i) != q.Axis(i) {
			return false
		}
	}

	return true
}

// String formats the position as "(x, y, ...)".
func (p Position) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteByte(')')

	return sb.String()
}
