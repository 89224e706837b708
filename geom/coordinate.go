// Package geom holds the planar primitives shared by the subdivision and the
// triangulators: coordinates, envelopes, line segments and the orientation
// predicates everything else is built from.
package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Coordinate is a 2D location with an optional Z ordinate. Z is never used by
// the predicates, but it is carried through insertion and interpolated at
// split points.
type Coordinate struct {
	X, Y, Z float64
}

func (c Coordinate) Equals2D(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

func (c Coordinate) Equals2DTolerance(other Coordinate, tolerance float64) bool {
	if tolerance == 0 {
		return c.Equals2D(other)
	}
	return c.Distance(other) <= tolerance
}

func (c Coordinate) Distance(other Coordinate) float64 {
	return math.Hypot(c.X-other.X, c.Y-other.Y)
}

func (c Coordinate) DistanceSq(other Coordinate) float64 {
	dx := c.X - other.X
	dy := c.Y - other.Y
	return dx*dx + dy*dy
}

// Compare orders coordinates lexicographically by X, then Y.
func (c Coordinate) Compare(other Coordinate) int {
	switch {
	case c.X < other.X:
		return -1
	case c.X > other.X:
		return 1
	case c.Y < other.Y:
		return -1
	case c.Y > other.Y:
		return 1
	}
	return 0
}

func (c Coordinate) Point() r2.Point {
	return r2.Point{X: c.X, Y: c.Y}
}

func FromPoint(p r2.Point) Coordinate {
	return Coordinate{X: p.X, Y: p.Y}
}

func (c Coordinate) String() string {
	if c.Z == 0 {
		return fmt.Sprintf("(%g %g)", c.X, c.Y)
	}
	return fmt.Sprintf("(%g %g %g)", c.X, c.Y, c.Z)
}
