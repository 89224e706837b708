package advanced

import (
	"github.com/osuushi/delaunay/quadedge"
)

// IncrementalDelaunayTriangulator inserts sites into a subdivision one at a
// time, restoring the Delaunay condition after each insertion by flipping
// edges.
type IncrementalDelaunayTriangulator struct {
	subdiv *quadedge.Subdivision
}

func NewIncrementalDelaunayTriangulator(subdiv *quadedge.Subdivision) *IncrementalDelaunayTriangulator {
	return &IncrementalDelaunayTriangulator{subdiv: subdiv}
}

func (t *IncrementalDelaunayTriangulator) Subdivision() *quadedge.Subdivision {
	return t.subdiv
}

// InsertSites inserts vertices in the order given, stopping at the first
// error.
func (t *IncrementalDelaunayTriangulator) InsertSites(vertices []*quadedge.Vertex) error {
	for _, v := range vertices {
		if _, err := t.InsertSite(v); err != nil {
			return err
		}
	}
	return nil
}

// InsertSite adds v to the triangulation and returns an edge originating at
// the vertex now standing for it. If v is within tolerance of an existing
// vertex, nothing changes and the edge is for the existing vertex.
//
// A point landing exactly on an edge would leave a zero width triangle, so
// that edge is deleted first and the point is connected to the surrounding
// quadrilateral instead.
func (t *IncrementalDelaunayTriangulator) InsertSite(v *quadedge.Vertex) (quadedge.Edge, error) {
	subdiv := t.subdiv
	e, err := subdiv.Locate(v)
	if err != nil {
		return quadedge.Edge{}, err
	}

	if existing, ok := subdiv.TriangleVertexEdge(e, v); ok {
		return existing, nil
	}
	if subdiv.IsOnEdge(e, v.Coordinate) {
		e = e.OPrev()
		subdiv.Delete(e.ONext())
	}

	// Connect v to every vertex of the enclosing polygon, making a fan
	base := subdiv.MakeEdge(e.Orig(), v)
	quadedge.Splice(base, e)
	startEdge := base
	for {
		base = subdiv.Connect(e, base.Sym())
		e = base.OPrev()
		if e.LNext() == startEdge {
			break
		}
	}

	// Walk the boundary of the fan, flipping edges whose far vertex is inside
	// the circumcircle through v. Each flip exposes two new boundary edges,
	// which the walk then visits.
	for {
		far := e.OPrev()
		if far.Dest().RightOf(e) && v.IsInCircle(e.Orig(), far.Dest(), e.Dest()) {
			subdiv.Swap(e)
			e = e.OPrev()
		} else if e.ONext() == startEdge {
			return base.Sym(), nil
		} else {
			e = e.ONext().LPrev()
		}
	}
}
