package geom

// Twice the signed area of triangle abc. Positive when abc winds
// counterclockwise.
func TriArea(a, b, c Coordinate) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func IsCCW(a, b, c Coordinate) bool {
	return TriArea(a, b, c) > 0
}

// Orientation returns 1 for a left turn at b, -1 for a right turn and 0 when
// the points are collinear.
func Orientation(a, b, c Coordinate) int {
	area := TriArea(a, b, c)
	switch {
	case area > 0:
		return 1
	case area < 0:
		return -1
	}
	return 0
}

// InCircleNormalized reports whether p lies strictly inside the circumcircle
// of the counterclockwise triangle abc. The points are translated so that p is
// at the origin before the lifted determinant is evaluated, which keeps the
// magnitudes small for real world coordinates.
func InCircleNormalized(a, b, c, p Coordinate) bool {
	adx := a.X - p.X
	ady := a.Y - p.Y
	bdx := b.X - p.X
	bdy := b.Y - p.Y
	cdx := c.X - p.X
	cdy := c.Y - p.Y

	abdet := adx*bdy - bdx*ady
	bcdet := bdx*cdy - cdx*bdy
	cadet := cdx*ady - adx*cdy
	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	disc := alift*bcdet + blift*cadet + clift*abdet
	return disc > 0
}

func det(m00, m01, m10, m11 float64) float64 {
	return m00*m11 - m01*m10
}

// Circumcentre of triangle abc. For collinear points there is no
// circumcircle, and the midpoint of the longest side is returned instead.
func Circumcentre(a, b, c Coordinate) Coordinate {
	ax := a.X - c.X
	ay := a.Y - c.Y
	bx := b.X - c.X
	by := b.Y - c.Y

	denom := 2 * det(ax, ay, bx, by)
	if denom == 0 {
		return longestSideMidpoint(a, b, c)
	}
	numx := det(ay, ax*ax+ay*ay, by, bx*bx+by*by)
	numy := det(ax, ax*ax+ay*ay, bx, bx*bx+by*by)
	return Coordinate{X: c.X - numx/denom, Y: c.Y + numy/denom}
}

func longestSideMidpoint(a, b, c Coordinate) Coordinate {
	p, q := a, b
	longest := a.DistanceSq(b)
	if d := b.DistanceSq(c); d > longest {
		p, q, longest = b, c, d
	}
	if d := c.DistanceSq(a); d > longest {
		p, q = c, a
	}
	return Coordinate{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// InterpolateZ computes the Z value of p on the plane through triangle v0 v1
// v2.
func InterpolateZ(p, v0, v1, v2 Coordinate) float64 {
	a := v1.X - v0.X
	b := v2.X - v0.X
	c := v1.Y - v0.Y
	d := v2.Y - v0.Y
	determinant := a*d - b*c
	if determinant == 0 {
		return v0.Z
	}
	u := p.X - v0.X
	v := p.Y - v0.Y
	dx := (d*u - b*v) / determinant
	dy := (-c*u + a*v) / determinant
	return v0.Z + dx*(v1.Z-v0.Z) + dy*(v2.Z-v0.Z)
}

// InterpolateZSegment computes the Z value of p projected onto segment p0 p1.
func InterpolateZSegment(p, p0, p1 Coordinate) float64 {
	segLen := p0.Distance(p1)
	if segLen == 0 {
		return p0.Z
	}
	ptLen := p.Distance(p0)
	return p0.Z + (p1.Z-p0.Z)*(ptLen/segLen)
}
