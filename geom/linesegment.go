package geom

import (
	"fmt"
	"math"
)

// LineSegment is a pair of coordinates. Unlike a constraint segment it has no
// identity and carries no data, so it is passed by value.
type LineSegment struct {
	P0, P1 Coordinate
}

func (s LineSegment) Length() float64 {
	return s.P0.Distance(s.P1)
}

func (s LineSegment) Midpoint() Coordinate {
	return s.PointAlong(0.5)
}

// PointAlong returns the point at fraction frac of the way from P0 to P1. Z
// is interpolated linearly.
func (s LineSegment) PointAlong(frac float64) Coordinate {
	return Coordinate{
		X: s.P0.X + frac*(s.P1.X-s.P0.X),
		Y: s.P0.Y + frac*(s.P1.Y-s.P0.Y),
		Z: s.P0.Z + frac*(s.P1.Z-s.P0.Z),
	}
}

// PointAlongReverse is PointAlong measured from P1 back towards P0.
func (s LineSegment) PointAlongReverse(frac float64) Coordinate {
	return s.PointAlong(1 - frac)
}

// ProjectionFactor is the position of the projection of p along the line
// through the segment, where 0 is P0 and 1 is P1. Values outside [0, 1] lie
// beyond the endpoints.
func (s LineSegment) ProjectionFactor(p Coordinate) float64 {
	if p.Equals2D(s.P0) {
		return 0
	}
	if p.Equals2D(s.P1) {
		return 1
	}
	dx := s.P1.X - s.P0.X
	dy := s.P1.Y - s.P0.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.NaN()
	}
	return ((p.X-s.P0.X)*dx + (p.Y-s.P0.Y)*dy) / lenSq
}

// Project returns the orthogonal projection of p onto the line through the
// segment. The result is not clamped to the segment.
func (s LineSegment) Project(p Coordinate) Coordinate {
	if p.Equals2D(s.P0) || p.Equals2D(s.P1) {
		return p
	}
	r := s.ProjectionFactor(p)
	if math.IsNaN(r) {
		return s.P0
	}
	return s.PointAlong(r)
}

// Distance from p to the closest point of the segment.
func (s LineSegment) Distance(p Coordinate) float64 {
	if s.P0.Equals2D(s.P1) {
		return p.Distance(s.P0)
	}
	r := s.ProjectionFactor(p)
	if r <= 0 {
		return p.Distance(s.P0)
	}
	if r >= 1 {
		return p.Distance(s.P1)
	}
	dx := s.P1.X - s.P0.X
	dy := s.P1.Y - s.P0.Y
	cross := (s.P0.Y-p.Y)*dx - (s.P0.X-p.X)*dy
	return math.Abs(cross) / math.Hypot(dx, dy)
}

// Intersection returns a point shared by both segments, if any. Collinear
// overlapping segments report one of the endpoints inside the overlap.
func (s LineSegment) Intersection(other LineSegment) (Coordinate, bool) {
	d1 := Orientation(other.P0, other.P1, s.P0)
	d2 := Orientation(other.P0, other.P1, s.P1)
	d3 := Orientation(s.P0, s.P1, other.P0)
	d4 := Orientation(s.P0, s.P1, other.P1)

	if d1*d2 < 0 && d3*d4 < 0 {
		rx := s.P1.X - s.P0.X
		ry := s.P1.Y - s.P0.Y
		sx := other.P1.X - other.P0.X
		sy := other.P1.Y - other.P0.Y
		denom := rx*sy - ry*sx
		t := ((other.P0.X-s.P0.X)*sy - (other.P0.Y-s.P0.Y)*sx) / denom
		return s.PointAlong(t), true
	}

	// Touching and collinear cases
	for _, candidate := range []struct {
		d   int
		pt  Coordinate
		seg LineSegment
	}{
		{d1, s.P0, other},
		{d2, s.P1, other},
		{d3, other.P0, s},
		{d4, other.P1, s},
	} {
		if candidate.d == 0 && candidate.seg.envelopeContains(candidate.pt) {
			return candidate.pt, true
		}
	}
	return Coordinate{}, false
}

func (s LineSegment) envelopeContains(p Coordinate) bool {
	return p.X >= math.Min(s.P0.X, s.P1.X) && p.X <= math.Max(s.P0.X, s.P1.X) &&
		p.Y >= math.Min(s.P0.Y, s.P1.Y) && p.Y <= math.Max(s.P0.Y, s.P1.Y)
}

// EqualsTopo is true if the segments have the same endpoints in either order.
func (s LineSegment) EqualsTopo(other LineSegment) bool {
	return (s.P0.Equals2D(other.P0) && s.P1.Equals2D(other.P1)) ||
		(s.P0.Equals2D(other.P1) && s.P1.Equals2D(other.P0))
}

func (s LineSegment) Envelope() Envelope {
	return NewEnvelope(s.P0, s.P1)
}

func (s LineSegment) String() string {
	return fmt.Sprintf("LINESTRING(%g %g, %g %g)", s.P0.X, s.P0.Y, s.P1.X, s.P1.Y)
}
