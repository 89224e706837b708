package advanced

import (
	"math/rand"
	"testing"

	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/quadedge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangulateCoords(t *testing.T, tolerance float64, coords ...geom.Coordinate) *quadedge.Subdivision {
	env := geom.NewEnvelope(coords...)
	subdiv := quadedge.NewSubdivision(env, tolerance)
	triangulator := NewIncrementalDelaunayTriangulator(subdiv)
	for _, c := range coords {
		_, err := triangulator.InsertSite(quadedge.NewVertexFromCoordinate(c))
		require.NoError(t, err)
	}
	return subdiv
}

func randomCoords(seed int64, n int, size float64) []geom.Coordinate {
	r := rand.New(rand.NewSource(seed))
	coords := make([]geom.Coordinate, n)
	for i := range coords {
		coords[i] = geom.Coordinate{X: r.Float64() * size, Y: r.Float64() * size}
	}
	return coords
}

func TestIncrementalRandomSites(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		coords := randomCoords(seed, 200, 100)
		subdiv := triangulateCoords(t, 0, coords...)

		assert.Len(t, subdiv.Vertices(false), len(coords))
		assertDelaunay(t, subdiv)
		assertEuler(t, subdiv)
	}
}

func TestIncrementalSquareWithCentre(t *testing.T) {
	subdiv := triangulateCoords(t, 0,
		geom.Coordinate{X: 0, Y: 0},
		geom.Coordinate{X: 10, Y: 0},
		geom.Coordinate{X: 10, Y: 10},
		geom.Coordinate{X: 0, Y: 10},
		geom.Coordinate{X: 5, Y: 5},
	)

	triangles := subdiv.Triangles()
	require.Len(t, triangles, 4)
	for _, tri := range triangles {
		hasCentre := false
		for _, v := range tri {
			if v.Equals2D(geom.Coordinate{X: 5, Y: 5}) {
				hasCentre = true
			}
		}
		assert.True(t, hasCentre, "triangle %v does not use the centre", tri)
	}
	assert.Len(t, subdiv.PrimaryEdges(false), 8)
	assertDelaunay(t, subdiv)
}

func TestIncrementalSnapsWithinTolerance(t *testing.T) {
	subdiv := triangulateCoords(t, 1e-6,
		geom.Coordinate{X: 0, Y: 0},
		geom.Coordinate{X: 1e-9, Y: 0},
		geom.Coordinate{X: 3, Y: 4},
	)
	assert.Len(t, subdiv.Vertices(false), 2)
}

func TestIncrementalInsertReturnsVertexEdge(t *testing.T) {
	subdiv := quadedge.NewSubdivision(geom.EnvelopeFromBounds(0, 0, 10, 10), 0)
	triangulator := NewIncrementalDelaunayTriangulator(subdiv)

	v := quadedge.NewVertex(2, 3)
	e, err := triangulator.InsertSite(v)
	require.NoError(t, err)
	assert.Same(t, v, e.Orig())

	again, err := triangulator.InsertSite(quadedge.NewVertex(2, 3))
	require.NoError(t, err)
	assert.Same(t, v, again.Orig(), "existing vertex stands in for the duplicate")
	assert.Len(t, subdiv.Vertices(false), 1)
}

func TestIncrementalInsertOnEdge(t *testing.T) {
	subdiv := triangulateCoords(t, 0,
		geom.Coordinate{X: 0, Y: 0},
		geom.Coordinate{X: 10, Y: 0},
		geom.Coordinate{X: 5, Y: 10},
	)
	require.Len(t, subdiv.Triangles(), 1)

	triangulator := NewIncrementalDelaunayTriangulator(subdiv)
	_, err := triangulator.InsertSite(quadedge.NewVertex(5, 0))
	require.NoError(t, err)

	assert.Len(t, subdiv.Triangles(), 2)
	assertDelaunay(t, subdiv)
	assertEuler(t, subdiv)

	_, found, err := subdiv.LocateSegment(geom.Coordinate{X: 0, Y: 0}, geom.Coordinate{X: 10, Y: 0})
	require.NoError(t, err)
	assert.False(t, found, "the split edge is gone")
}

func TestIncrementalInsertSites(t *testing.T) {
	coords := randomCoords(7, 50, 10)
	subdiv := quadedge.NewSubdivision(geom.NewEnvelope(coords...), 0)
	vertices := make([]*quadedge.Vertex, len(coords))
	for i, c := range coords {
		vertices[i] = quadedge.NewVertexFromCoordinate(c)
	}
	require.NoError(t, NewIncrementalDelaunayTriangulator(subdiv).InsertSites(vertices))

	for _, v := range vertices {
		e, err := subdiv.Locate(v)
		require.NoError(t, err)
		assert.True(t, v.Equals(e.Orig()) || v.Equals(e.Dest()), "locating %v gives an edge touching it", v)
	}
	assertDelaunay(t, subdiv)
}

func TestIncrementalCollinearSites(t *testing.T) {
	var coords []geom.Coordinate
	for i := 0; i < 6; i++ {
		coords = append(coords, geom.Coordinate{X: float64(i), Y: 0})
	}
	subdiv := triangulateCoords(t, 0, coords...)
	assert.Empty(t, subdiv.Triangles())
	assert.Len(t, subdiv.Edges(), 5)
}
