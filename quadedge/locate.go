package quadedge

import "github.com/osuushi/delaunay/geom"

// Locator finds an edge of the triangle containing a vertex.
type Locator interface {
	Locate(v *Vertex) (Edge, error)
}

// LastFoundLocator starts each walk from the edge the previous walk ended on,
// which is fast when consecutive queries are near each other.
type LastFoundLocator struct {
	subdiv   *Subdivision
	lastEdge Edge
}

func NewLastFoundLocator(subdiv *Subdivision) *LastFoundLocator {
	return &LastFoundLocator{subdiv: subdiv}
}

func (l *LastFoundLocator) Locate(v *Vertex) (Edge, error) {
	if !l.lastEdge.IsLive() {
		l.lastEdge = l.subdiv.StartingEdge()
	}
	e, err := l.subdiv.LocateFromEdge(v, l.lastEdge)
	if err != nil {
		return Edge{}, err
	}
	l.lastEdge = e
	return e, nil
}

// Locate returns an edge e such that v is either on e or inside the triangle
// to the left of e.
func (s *Subdivision) Locate(v *Vertex) (Edge, error) {
	return s.locator.Locate(v)
}

func (s *Subdivision) LocateCoordinate(p geom.Coordinate) (Edge, error) {
	return s.locator.Locate(NewVertexFromCoordinate(p))
}

// LocateFromEdge walks from startEdge towards v. The walk only converges on a
// Delaunay subdivision, so it gives up after visiting as many edges as the
// subdivision has.
func (s *Subdivision) LocateFromEdge(v *Vertex, startEdge Edge) (Edge, error) {
	maxIter := s.arena.NumLive()
	e := startEdge
	for iter := 1; ; iter++ {
		if iter > maxIter {
			return Edge{}, &LocateFailureError{Segment: e.LineSegment()}
		}

		if v.Equals(e.Orig()) || v.Equals(e.Dest()) {
			break
		} else if v.RightOf(e) {
			e = e.Sym()
		} else if !v.RightOf(e.ONext()) {
			e = e.ONext()
		} else if !v.RightOf(e.DPrev()) {
			e = e.DPrev()
		} else {
			// On the edge, or inside the triangle to its left
			break
		}
	}
	return e, nil
}

// LocateSegment finds the edge from p0 to p1, if the subdivision has one.
func (s *Subdivision) LocateSegment(p0, p1 geom.Coordinate) (Edge, bool, error) {
	e, err := s.LocateCoordinate(p0)
	if err != nil {
		return Edge{}, false, err
	}

	base := e
	if e.Dest().Equals2D(p0) {
		base = e.Sym()
	}
	if !base.Orig().Equals2D(p0) {
		return Edge{}, false, nil
	}
	locEdge := base
	for {
		if locEdge.Dest().Equals2D(p1) {
			return locEdge, true, nil
		}
		locEdge = locEdge.ONext()
		if locEdge == base {
			break
		}
	}
	return Edge{}, false, nil
}
