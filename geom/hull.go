package geom

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
	"golang.org/x/exp/slices"
)

const hullEps = 1e-12

// ConvexHull returns the vertices of the convex hull of coords in
// counterclockwise order, starting from the lowest coordinate in Compare
// order. Fewer than three distinct inputs, or collinear inputs, return the
// distinct extreme points.
//
// The planar hull is read off a 3D hull of the points extruded into a prism,
// so only the bottom cap vertices are kept.
func ConvexHull(coords []Coordinate) []Coordinate {
	unique := UniqueCoordinates(coords)
	if len(unique) < 3 {
		return unique
	}
	if allCollinear(unique) {
		return []Coordinate{unique[0], unique[len(unique)-1]}
	}

	env := NewEnvelope(unique...)
	height := math.Max(env.Width(), env.Height())
	n := len(unique)
	cloud := make([]r3.Vector, 2*n)
	for i, c := range unique {
		cloud[i] = r3.Vector{X: c.X, Y: c.Y, Z: 0}
		cloud[n+i] = r3.Vector{X: c.X, Y: c.Y, Z: height}
	}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(cloud, true, true, hullEps)

	seen := make([]bool, n)
	var hull []Coordinate
	for _, idx := range ch.Indices {
		if idx >= n {
			idx -= n
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		hull = append(hull, unique[idx])
	}

	// The extrusion gives us the hull vertices but not their order
	center := NewEnvelope(hull...).Center()
	slices.SortFunc(hull, func(a, b Coordinate) bool {
		return math.Atan2(a.Y-center.Y, a.X-center.X) < math.Atan2(b.Y-center.Y, b.X-center.X)
	})
	hull = dropCollinear(hull)

	start := 0
	for i, c := range hull {
		if c.Compare(hull[start]) < 0 {
			start = i
		}
	}
	return append(hull[start:], hull[:start]...)
}

func allCollinear(coords []Coordinate) bool {
	a, b := coords[0], coords[len(coords)-1]
	for _, c := range coords[1 : len(coords)-1] {
		if Orientation(a, b, c) != 0 {
			return false
		}
	}
	return true
}

// Removes ring vertices which lie on the line through their neighbors.
func dropCollinear(ring []Coordinate) []Coordinate {
	result := make([]Coordinate, 0, len(ring))
	n := len(ring)
	for i, c := range ring {
		prev := ring[(i+n-1)%n]
		next := ring[(i+1)%n]
		if Orientation(prev, c, next) == 0 {
			continue
		}
		result = append(result, c)
	}
	return result
}
