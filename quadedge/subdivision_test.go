package quadedge

import (
	"testing"

	"github.com/osuushi/delaunay/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSubdivision(tolerance float64) *Subdivision {
	return NewSubdivision(geom.EnvelopeFromBounds(0, 0, 10, 10), tolerance)
}

func TestNewSubdivision(t *testing.T) {
	s := unitSubdivision(0)

	assert.Equal(t, 5, s.NumQuads(), "four border edges and a diagonal")
	assert.Len(t, s.TriangleVertices(true), 2)
	assert.Empty(t, s.Triangles())
	assert.Empty(t, s.Vertices(false))
	assert.Len(t, s.Vertices(true), 4)
	assert.Empty(t, s.PrimaryEdges(false))
	assert.Len(t, s.PrimaryEdges(true), 5)

	env := s.Envelope()
	assert.Equal(t, -100.0, env.MinX())
	assert.Equal(t, 110.0, env.MaxY())
	assert.True(t, env.Contains(geom.Coordinate{X: 10, Y: 10}))

	for _, frameVertex := range s.FrameVertices() {
		assert.True(t, s.IsFrameVertex(frameVertex))
	}
	assert.False(t, s.IsFrameVertex(NewVertex(-100, -100)), "frame vertices are matched by identity")

	border := 0
	for _, e := range s.PrimaryEdges(true) {
		assert.True(t, s.IsFrameEdge(e))
		if s.IsFrameBorderEdge(e) {
			border++
		}
	}
	assert.Equal(t, 4, border)

	for _, tri := range s.TriangleVertices(true) {
		assert.True(t, tri[0].IsCCW(tri[1], tri[2]), "triangles are counterclockwise")
	}
}

func TestEmptyEnvelopeSubdivision(t *testing.T) {
	s := NewSubdivision(geom.Envelope{}, 0)
	assert.True(t, s.Envelope().Contains(geom.Coordinate{X: 0, Y: 0}))
	assert.Equal(t, 5, s.NumQuads())
}

func TestNaiveInsertSite(t *testing.T) {
	s := unitSubdivision(0)
	sites := []*Vertex{NewVertex(3, 6), NewVertex(7, 2), NewVertex(8, 9)}
	for i, v := range sites {
		e, err := s.InsertSite(v)
		require.NoError(t, err)
		assert.Same(t, v, e.Orig())
		assert.Len(t, s.TriangleVertices(true), 2+2*(i+1))
	}
	assert.ElementsMatch(t, sites, s.Vertices(false))

	// Reinserting is a no-op
	before := s.NumQuads()
	e, err := s.InsertSite(NewVertex(7, 2))
	require.NoError(t, err)
	assert.True(t, e.Orig().Equals(NewVertex(7, 2)))
	assert.Equal(t, before, s.NumQuads())
}

func TestInsertSiteSnapsWithinTolerance(t *testing.T) {
	s := unitSubdivision(0.5)
	_, err := s.InsertSite(NewVertex(3, 6))
	require.NoError(t, err)
	_, err = s.InsertSite(NewVertex(3.1, 6))
	require.NoError(t, err)
	assert.Len(t, s.Vertices(false), 1)
}

func TestLocate(t *testing.T) {
	s := unitSubdivision(0)
	sites := []*Vertex{NewVertex(3, 6), NewVertex(7, 2), NewVertex(8, 9)}
	for _, v := range sites {
		_, err := s.InsertSite(v)
		require.NoError(t, err)
	}

	t.Run("Existing vertices", func(t *testing.T) {
		for _, v := range sites {
			e, err := s.Locate(NewVertex(v.X, v.Y))
			require.NoError(t, err)
			assert.True(t, e.Orig() == v || e.Dest() == v)
		}
	})

	t.Run("Interior point", func(t *testing.T) {
		p := NewVertex(5, 5)
		e, err := s.Locate(p)
		require.NoError(t, err)
		assert.False(t, p.RightOf(e))
		assert.False(t, p.RightOf(e.LNext()))
		assert.False(t, p.RightOf(e.LNext().LNext()))
	})

	t.Run("Outside the frame", func(t *testing.T) {
		_, err := s.LocateCoordinate(geom.Coordinate{X: 5, Y: -1e6})
		var locateErr *LocateFailureError
		require.ErrorAs(t, err, &locateErr)
		assert.Contains(t, err.Error(), "failed to converge")
	})

	t.Run("Segment", func(t *testing.T) {
		found := 0
		for _, e := range s.PrimaryEdges(false) {
			located, ok, err := s.LocateSegment(e.Orig().Coordinate, e.Dest().Coordinate)
			require.NoError(t, err)
			require.True(t, ok)
			assert.True(t, located.EqualsOriented(e))
			found++
		}
		assert.NotZero(t, found)

		_, ok, err := s.LocateSegment(geom.Coordinate{X: 5, Y: 5}, geom.Coordinate{X: 8, Y: 9})
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func edgeBetween(a, b *Vertex) Edge {
	return NewArena().MakeEdge(a, b)
}

func TestSwap(t *testing.T) {
	s := unitSubdivision(0)
	var diagonal Edge
	for _, e := range s.PrimaryEdges(true) {
		if !s.IsFrameBorderEdge(e) {
			diagonal = e
		}
	}
	require.False(t, diagonal.IsNil())
	frame := s.FrameVertices()
	assert.True(t, diagonal.EqualsNonOriented(edgeBetween(frame[0], frame[2])))

	s.Swap(diagonal)
	assert.True(t, diagonal.EqualsNonOriented(edgeBetween(frame[1], frame[3])))
	assert.Len(t, s.TriangleVertices(true), 2)
	for _, tri := range s.TriangleVertices(true) {
		assert.True(t, tri[0].IsCCW(tri[1], tri[2]))
	}

	assert.Panics(t, func() {
		s.Swap(s.StartingEdge())
	})
}

func TestIsOnEdge(t *testing.T) {
	s := unitSubdivision(1)
	arena := NewArena()
	e := arena.MakeEdge(NewVertex(0, 0), NewVertex(10, 0))
	assert.True(t, s.IsOnEdge(e, geom.Coordinate{X: 5, Y: 0}))
	assert.True(t, s.IsOnEdge(e, geom.Coordinate{X: 5, Y: 0.0009}))
	assert.False(t, s.IsOnEdge(e, geom.Coordinate{X: 5, Y: 0.01}), "edge tolerance is much tighter than vertex tolerance")

	exact := unitSubdivision(0)
	assert.True(t, exact.IsOnEdge(e, geom.Coordinate{X: 5, Y: 0}))
}

func TestVoronoiCellsOfNaiveInsert(t *testing.T) {
	s := unitSubdivision(0)
	v := NewVertex(3, 6)
	_, err := s.InsertSite(v)
	require.NoError(t, err)

	cells := s.VoronoiCells()
	require.Len(t, cells, 1)
	assert.Same(t, v, cells[0].Site)
	assert.Len(t, cells[0].Ring, 3)
}
