package quadedge

import (
	"math"

	"github.com/osuushi/delaunay/geom"
)

// Vertex is a site in the subdivision. Data is carried untouched so callers
// can map output geometry back to their own records.
type Vertex struct {
	geom.Coordinate
	Data interface{}
}

func NewVertex(x, y float64) *Vertex {
	return &Vertex{Coordinate: geom.Coordinate{X: x, Y: y}}
}

func NewVertexFromCoordinate(c geom.Coordinate) *Vertex {
	return &Vertex{Coordinate: c}
}

// Equals compares 2D position exactly.
func (v *Vertex) Equals(other *Vertex) bool {
	return v.Equals2D(other.Coordinate)
}

func (v *Vertex) EqualsTolerance(other *Vertex, tolerance float64) bool {
	return v.Equals2DTolerance(other.Coordinate, tolerance)
}

// IsCCW tests whether the triangle v, b, c winds counterclockwise.
func (v *Vertex) IsCCW(b, c *Vertex) bool {
	return geom.IsCCW(v.Coordinate, b.Coordinate, c.Coordinate)
}

func (v *Vertex) RightOf(e Edge) bool {
	return v.IsCCW(e.Dest(), e.Orig())
}

func (v *Vertex) LeftOf(e Edge) bool {
	return v.IsCCW(e.Orig(), e.Dest())
}

// IsInCircle tests whether v is strictly inside the circumcircle of the
// counterclockwise triangle a, b, c.
func (v *Vertex) IsInCircle(a, b, c *Vertex) bool {
	return geom.InCircleNormalized(a.Coordinate, b.Coordinate, c.Coordinate, v.Coordinate)
}

type Classification int

const (
	Left Classification = iota
	Right
	Beyond
	Behind
	Between
	Origin
	Destination
)

func (c Classification) String() string {
	return [...]string{"Left", "Right", "Beyond", "Behind", "Between", "Origin", "Destination"}[c]
}

// Classify locates v relative to the directed line p0 -> p1.
func (v *Vertex) Classify(p0, p1 *Vertex) Classification {
	ax, ay := p1.X-p0.X, p1.Y-p0.Y
	bx, by := v.X-p0.X, v.Y-p0.Y
	sa := ax*by - bx*ay
	switch {
	case sa > 0:
		return Left
	case sa < 0:
		return Right
	case ax*bx < 0 || ay*by < 0:
		return Behind
	case math.Hypot(ax, ay) < math.Hypot(bx, by):
		return Beyond
	case p0.Equals(v):
		return Origin
	case p1.Equals(v):
		return Destination
	}
	return Between
}

// CircleCenter is the centre of the circle through v, b and c. Z is left at
// zero.
func (v *Vertex) CircleCenter(b, c *Vertex) *Vertex {
	return NewVertexFromCoordinate(geom.Circumcentre(v.Coordinate, b.Coordinate, c.Coordinate))
}

func (v *Vertex) MidPoint(other *Vertex) *Vertex {
	return NewVertexFromCoordinate(geom.LineSegment{P0: v.Coordinate, P1: other.Coordinate}.Midpoint())
}

// InterpolateZValue is the Z of v on the plane through v0, v1, v2.
func (v *Vertex) InterpolateZValue(v0, v1, v2 *Vertex) float64 {
	return geom.InterpolateZ(v.Coordinate, v0.Coordinate, v1.Coordinate, v2.Coordinate)
}

// CircumRadiusRatio is the circumradius of triangle v, b, c over its
// shortest edge. Well shaped triangles have small ratios.
func (v *Vertex) CircumRadiusRatio(b, c *Vertex) float64 {
	center := v.CircleCenter(b, c)
	radius := center.Distance(b.Coordinate)
	edgeLength := v.Distance(b.Coordinate)
	edgeLength = math.Min(edgeLength, b.Distance(c.Coordinate))
	edgeLength = math.Min(edgeLength, c.Distance(v.Coordinate))
	return radius / edgeLength
}

func (v *Vertex) String() string {
	if v == nil {
		return "Ø"
	}
	return v.Coordinate.String()
}
