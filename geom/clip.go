package geom

// ClipToEnvelope clips a convex ring to env, one side of the box at a time.
// The ring is open (first point not repeated) and the result is too. Rings
// that end up with fewer than three points are clipped away entirely, as is
// everything when env has no area.
func ClipToEnvelope(ring []Coordinate, env Envelope) []Coordinate {
	if env.IsEmpty() || env.Width() == 0 || env.Height() == 0 || len(ring) < 3 {
		return nil
	}
	corners := env.Corners()
	output := ring
	for i := range corners {
		output = clipToHalfPlane(output, corners[i], corners[(i+1)%4])
		if len(output) < 3 {
			return nil
		}
	}
	return output
}

// Keeps the part of ring to the left of the directed line a -> b.
func clipToHalfPlane(ring []Coordinate, a, b Coordinate) []Coordinate {
	n := len(ring)
	output := make([]Coordinate, 0, n+1)
	for i := 0; i < n; i++ {
		curr := ring[i]
		next := ring[(i+1)%n]
		currInside := TriArea(a, b, curr) >= 0
		nextInside := TriArea(a, b, next) >= 0

		switch {
		case currInside && nextInside:
			output = append(output, next)
		case currInside && !nextInside:
			output = append(output, lineIntersection(curr, next, a, b))
		case !currInside && nextInside:
			output = append(output, lineIntersection(curr, next, a, b), next)
		}
	}
	return output
}

// Intersection of segment p0 p1 with the infinite line through a and b. The
// caller guarantees the segment crosses the line.
func lineIntersection(p0, p1, a, b Coordinate) Coordinate {
	d0 := TriArea(a, b, p0)
	d1 := TriArea(a, b, p1)
	return LineSegment{P0: p0, P1: p1}.PointAlong(d0 / (d0 - d1))
}
