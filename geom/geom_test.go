package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func TestEnvelope(t *testing.T) {
	var env Envelope
	assert.True(t, env.IsEmpty())
	assert.False(t, env.Contains(Coordinate{}))

	env.ExpandToInclude(Coordinate{X: 1, Y: 2})
	assert.False(t, env.IsEmpty())
	assert.Equal(t, 0.0, env.Width())
	assert.True(t, env.Contains(Coordinate{X: 1, Y: 2}))

	env.ExpandToInclude(Coordinate{X: -3, Y: 4})
	assert.Equal(t, 4.0, env.Width())
	assert.Equal(t, 2.0, env.Height())
	assert.Equal(t, Coordinate{X: -1, Y: 3}, env.Center())

	env.ExpandBy(1)
	assert.Equal(t, -4.0, env.MinX())
	assert.Equal(t, 5.0, env.MaxY())

	other := EnvelopeFromBounds(10, 10, 11, 11)
	assert.False(t, env.Intersects(other))
	env.ExpandToIncludeEnvelope(other)
	assert.True(t, env.Intersects(other))
}

func TestCoordinateCompare(t *testing.T) {
	a := Coordinate{X: 0, Y: 1}
	b := Coordinate{X: 0, Y: 2}
	c := Coordinate{X: 1, Y: 0}
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, a.Compare(Coordinate{X: 0, Y: 1, Z: 7}))
	assert.True(t, a.Equals2DTolerance(Coordinate{X: 1e-9, Y: 1}, 1e-6))
	assert.False(t, a.Equals2DTolerance(Coordinate{X: 1e-9, Y: 1}, 0))
}

func TestLineSegment(t *testing.T) {
	seg := LineSegment{Coordinate{X: 0, Y: 0, Z: 0}, Coordinate{X: 10, Y: 0, Z: 10}}

	t.Run("Projection", func(t *testing.T) {
		assert.InDelta(t, 0.3, seg.ProjectionFactor(Coordinate{X: 3, Y: 5}), epsilon)
		p := seg.Project(Coordinate{X: 3, Y: 5})
		assert.InDelta(t, 3, p.X, epsilon)
		assert.InDelta(t, 0, p.Y, epsilon)
		assert.InDelta(t, 3, p.Z, epsilon, "Z is interpolated along the segment")
		// Projection onto the line, not the segment
		assert.InDelta(t, -2, seg.Project(Coordinate{X: -2, Y: 1}).X, epsilon)
	})

	t.Run("Distance", func(t *testing.T) {
		assert.InDelta(t, 5, seg.Distance(Coordinate{X: 3, Y: 5}), epsilon)
		assert.InDelta(t, 5, seg.Distance(Coordinate{X: 13, Y: 4}), epsilon)
		assert.InDelta(t, 0, seg.Distance(Coordinate{X: 7, Y: 0}), epsilon)
	})

	t.Run("PointAlong", func(t *testing.T) {
		assert.Equal(t, Coordinate{X: 5, Y: 0, Z: 5}, seg.Midpoint())
		assert.Equal(t, Coordinate{X: 8, Y: 0, Z: 8}, seg.PointAlongReverse(0.2))
	})

	t.Run("Intersection", func(t *testing.T) {
		other := LineSegment{Coordinate{X: 5, Y: -5}, Coordinate{X: 5, Y: 5}}
		pt, ok := seg.Intersection(other)
		require.True(t, ok)
		assert.InDelta(t, 5, pt.X, epsilon)
		assert.InDelta(t, 0, pt.Y, epsilon)

		_, ok = seg.Intersection(LineSegment{Coordinate{X: 0, Y: 1}, Coordinate{X: 10, Y: 1}})
		assert.False(t, ok)

		pt, ok = seg.Intersection(LineSegment{Coordinate{X: 10, Y: 0}, Coordinate{X: 12, Y: 3}})
		require.True(t, ok)
		assert.True(t, pt.Equals2D(Coordinate{X: 10, Y: 0}))
	})

	assert.True(t, seg.EqualsTopo(LineSegment{seg.P1, seg.P0}))
}

func TestPredicates(t *testing.T) {
	a := Coordinate{X: 0, Y: 0}
	b := Coordinate{X: 1, Y: 0}
	c := Coordinate{X: 0, Y: 1}

	assert.True(t, IsCCW(a, b, c))
	assert.False(t, IsCCW(a, c, b))
	assert.Equal(t, 0, Orientation(a, b, Coordinate{X: 2, Y: 0}))

	assert.True(t, InCircleNormalized(a, b, c, Coordinate{X: 0.5, Y: 0.5}))
	assert.False(t, InCircleNormalized(a, b, c, Coordinate{X: 1, Y: 1}), "cocircular points are not inside")
	assert.False(t, InCircleNormalized(a, b, c, Coordinate{X: 2, Y: 2}))

	cc := Circumcentre(a, b, c)
	assert.InDelta(t, 0.5, cc.X, epsilon)
	assert.InDelta(t, 0.5, cc.Y, epsilon)

	collinear := Circumcentre(Coordinate{X: 1, Y: 1}, Coordinate{X: 5, Y: 5}, Coordinate{X: 2, Y: 2})
	assert.Equal(t, Coordinate{X: 3, Y: 3}, collinear, "midpoint of the longest side")
	assert.Equal(t, Coordinate{X: 4, Y: 0}, Circumcentre(Coordinate{X: 4, Y: 0}, Coordinate{X: 4, Y: 0}, Coordinate{X: 4, Y: 0}))

	// Large offsets do not hurt the normalized test
	offset := Coordinate{X: 1e7, Y: 1e7}
	shift := func(p Coordinate) Coordinate { return Coordinate{X: p.X + offset.X, Y: p.Y + offset.Y} }
	assert.True(t, InCircleNormalized(shift(a), shift(b), shift(c), shift(Coordinate{X: 0.5, Y: 0.5})))
}

func TestInterpolateZ(t *testing.T) {
	v0 := Coordinate{X: 0, Y: 0, Z: 0}
	v1 := Coordinate{X: 10, Y: 0, Z: 10}
	v2 := Coordinate{X: 0, Y: 10, Z: 20}
	assert.InDelta(t, 5+10, InterpolateZ(Coordinate{X: 5, Y: 5}, v0, v1, v2), epsilon)
	assert.InDelta(t, 5, InterpolateZSegment(Coordinate{X: 5, Y: 0}, v0, v1), epsilon)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(3.0, 0, 1))
	assert.Equal(t, 0.0, Clamp(-3.0, 0, 1))
	assert.Equal(t, float32(0.5), Clamp(float32(0.5), 0, 1))
}

func TestUniqueCoordinates(t *testing.T) {
	input := []Coordinate{{X: 1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 2}}
	got := UniqueCoordinates(input)
	want := []Coordinate{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 1, Y: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UniqueCoordinates mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, input, 4, "input is untouched")
}

func TestConvexHull(t *testing.T) {
	t.Run("Square with interior and edge points", func(t *testing.T) {
		coords := []Coordinate{
			{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
			{X: 5, Y: 5}, {X: 5, Y: 0}, {X: 3, Y: 7},
		}
		hull := ConvexHull(coords)
		want := []Coordinate{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
		if diff := cmp.Diff(want, hull); diff != "" {
			t.Errorf("ConvexHull mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Circle", func(t *testing.T) {
		var coords []Coordinate
		for i := 0; i < 12; i++ {
			angle := 2 * math.Pi * float64(i) / 12
			coords = append(coords, Coordinate{X: 100 * math.Cos(angle), Y: 100 * math.Sin(angle)})
		}
		coords = append(coords, Coordinate{X: 1, Y: 1})
		hull := ConvexHull(coords)
		require.Len(t, hull, 12)
		for i := range hull {
			assert.True(t, IsCCW(hull[i], hull[(i+1)%12], hull[(i+2)%12]))
		}
	})

	t.Run("Degenerate", func(t *testing.T) {
		assert.Empty(t, ConvexHull(nil))
		assert.Len(t, ConvexHull([]Coordinate{{X: 1, Y: 1}, {X: 1, Y: 1}}), 1)
		line := ConvexHull([]Coordinate{{X: 2, Y: 2}, {X: 0, Y: 0}, {X: 1, Y: 1}})
		assert.Equal(t, []Coordinate{{X: 0, Y: 0}, {X: 2, Y: 2}}, line)
	})
}

func TestClipToEnvelope(t *testing.T) {
	env := EnvelopeFromBounds(0, 0, 10, 10)

	t.Run("Inside", func(t *testing.T) {
		ring := []Coordinate{{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 3, Y: 4}}
		clipped := ClipToEnvelope(ring, env)
		assert.ElementsMatch(t, ring, clipped)
	})

	t.Run("Crossing", func(t *testing.T) {
		ring := []Coordinate{{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5}}
		clipped := ClipToEnvelope(ring, env)
		require.Len(t, clipped, 4)
		area := 0.0
		for i := range clipped {
			a, b := clipped[i], clipped[(i+1)%len(clipped)]
			area += a.X*b.Y - b.X*a.Y
		}
		assert.InDelta(t, 25, area/2, epsilon)
		for _, c := range clipped {
			assert.True(t, env.Contains(c))
		}
	})

	t.Run("Outside", func(t *testing.T) {
		ring := []Coordinate{{X: 20, Y: 20}, {X: 30, Y: 20}, {X: 25, Y: 30}}
		assert.Nil(t, ClipToEnvelope(ring, env))
	})

	t.Run("Degenerate envelope", func(t *testing.T) {
		ring := []Coordinate{{X: 11, Y: 1}, {X: 1, Y: 11}, {X: -9, Y: 1}, {X: 1, Y: -9}}
		assert.Nil(t, ClipToEnvelope(ring, NewEnvelope(Coordinate{X: 1, Y: 1})))
		assert.Nil(t, ClipToEnvelope(ring, EnvelopeFromBounds(0, 1, 2, 1)))
	})
}
