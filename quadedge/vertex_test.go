package quadedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVertexClassify(t *testing.T) {
	p0 := NewVertex(0, 0)
	p1 := NewVertex(10, 0)
	testCases := []struct {
		v        *Vertex
		expected Classification
	}{
		{NewVertex(5, 1), Left},
		{NewVertex(5, -1), Right},
		{NewVertex(-1, 0), Behind},
		{NewVertex(11, 0), Beyond},
		{NewVertex(0, 0), Origin},
		{NewVertex(10, 0), Destination},
		{NewVertex(4, 0), Between},
	}
	for _, testCase := range testCases {
		t.Run(testCase.expected.String(), func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.v.Classify(p0, p1))
		})
	}
}

func TestVertexPredicates(t *testing.T) {
	arena := NewArena()
	a, b, c := NewVertex(0, 0), NewVertex(4, 0), NewVertex(0, 4)
	e := arena.MakeEdge(a, b)

	assert.True(t, c.LeftOf(e))
	assert.False(t, c.RightOf(e))
	assert.True(t, NewVertex(1, -1).RightOf(e))
	assert.True(t, a.IsCCW(b, c))

	assert.True(t, NewVertex(1, 1).IsInCircle(a, b, c))
	assert.False(t, NewVertex(4, 4).IsInCircle(a, b, c))

	center := a.CircleCenter(b, c)
	assert.InDelta(t, 2, center.X, 1e-12)
	assert.InDelta(t, 2, center.Y, 1e-12)

	mid := a.MidPoint(b)
	assert.True(t, mid.Equals(NewVertex(2, 0)))

	// Right isoceles triangle: circumradius is half the hypotenuse
	assert.InDelta(t, 2*1.4142135623730951/4, a.CircumRadiusRatio(b, c), 1e-12)

	a.Z, b.Z, c.Z = 0, 4, 8
	assert.InDelta(t, 3, NewVertex(1, 1).InterpolateZValue(a, b, c), 1e-12)

	assert.True(t, a.EqualsTolerance(NewVertex(1e-9, 0), 1e-6))
	assert.False(t, a.EqualsTolerance(NewVertex(1e-9, 0), 0))
	assert.Equal(t, "(0 0)", NewVertex(0, 0).String())
	assert.Equal(t, "Ø", (*Vertex)(nil).String())
}
