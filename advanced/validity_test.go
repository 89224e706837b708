package advanced

// This contains no actual tests. It is just helpers for checking
// triangulation validity.

import (
	"math"
	"testing"

	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/quadedge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validityEpsilon = 1e-9

// Checks that no real vertex lies strictly inside the circumcircle of any
// triangle which doesn't touch the frame. Every triangle must also be
// counterclockwise with nonzero area.
func assertDelaunay(t *testing.T, subdiv *quadedge.Subdivision) {
	vertices := subdiv.Vertices(false)
	for _, tri := range subdiv.Triangles() {
		a, b, c := tri[0].Coordinate, tri[1].Coordinate, tri[2].Coordinate
		require.Greater(t, geom.TriArea(a, b, c), 0.0, "degenerate or clockwise triangle %v %v %v", a, b, c)

		centre := geom.Circumcentre(a, b, c)
		radius := centre.Distance(a)
		for _, v := range vertices {
			if v == tri[0] || v == tri[1] || v == tri[2] {
				continue
			}
			require.GreaterOrEqual(t, centre.Distance(v.Coordinate), radius*(1-validityEpsilon),
				"%v is inside the circumcircle of %v %v %v", v, a, b, c)
		}
	}
}

// Euler's relation for the connected planar graph of real vertices and edges,
// where every bounded face is a triangle.
func assertEuler(t *testing.T, subdiv *quadedge.Subdivision) {
	n := len(subdiv.Vertices(false))
	e := len(subdiv.PrimaryEdges(false))
	f := len(subdiv.Triangles())
	assert.Equal(t, 1, n-e+f, "n=%d e=%d f=%d", n, e, f)
}

// Every piece of every constraint must be an edge of the subdivision.
func assertConforms(t *testing.T, subdiv *quadedge.Subdivision, segments []*Segment) {
	for _, seg := range segments {
		_, found, err := subdiv.LocateSegment(seg.Start(), seg.End())
		require.NoError(t, err)
		require.True(t, found, "segment %v is not an edge", seg)
	}
}

// The pieces must lie on, and exactly cover, the original constraints.
func assertCovers(t *testing.T, constraints []Constraint, segments []*Segment) {
	var originalLen, pieceLen float64
	for _, c := range constraints {
		for i := 1; i < len(c.Coords); i++ {
			originalLen += c.Coords[i-1].Distance(c.Coords[i])
		}
	}
	for _, seg := range segments {
		pieceLen += seg.Length()
		onSome := false
		for _, c := range constraints {
			for i := 1; i < len(c.Coords); i++ {
				line := geom.LineSegment{P0: c.Coords[i-1], P1: c.Coords[i]}
				if line.Distance(seg.Start()) < 1e-6 && line.Distance(seg.End()) < 1e-6 {
					onSome = true
				}
			}
		}
		assert.True(t, onSome, "segment %v does not lie on a constraint", seg)
	}
	assert.InDelta(t, originalLen, pieceLen, 1e-6*math.Max(1, originalLen))
}

// No inserted site may be strictly inside the diametral circle of a segment.
func assertGabriel(t *testing.T, cdt *ConformingDelaunayTriangulator) {
	for _, seg := range cdt.ConstraintSegments() {
		mid := seg.Midpoint()
		radius := seg.Length() / 2
		env := geom.NewEnvelope(mid)
		env.ExpandBy(radius)
		for _, site := range cdt.SitesWithin(env) {
			if site.Equals2D(seg.Start()) || site.Equals2D(seg.End()) {
				continue
			}
			assert.GreaterOrEqual(t, site.Distance(mid), radius*(1-validityEpsilon), "%v encroaches on %v", site, seg)
		}
	}
}
