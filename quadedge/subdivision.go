package quadedge

import (
	"fmt"
	"math"

	"github.com/osuushi/delaunay/geom"
)

const (
	// How far outside the data the frame sits, as a multiple of the larger
	// envelope dimension
	frameSizeFactor = 10.0
	// IsOnEdge uses a much tighter tolerance than vertex snapping
	edgeCoincidenceTolFactor = 1000.0
)

// LocateFailureError is returned when walking towards a location does not
// converge, which indicates corrupt topology or precision failure between very
// close sites.
type LocateFailureError struct {
	Segment geom.LineSegment
}

func (e *LocateFailureError) Error() string {
	return fmt.Sprintf("locate failed to converge (at edge: %v)", e.Segment)
}

// Subdivision is a triangulation of the square frame surrounding the
// envelope it was created with. Every real site must be inserted inside that
// envelope.
type Subdivision struct {
	arena                    *Arena
	startingEdge             Edge
	tolerance                float64
	edgeCoincidenceTolerance float64
	frameVertices            [4]*Vertex
	frameEnv                 geom.Envelope
	locator                  Locator
}

// NewSubdivision creates a subdivision whose frame encloses env. Vertices
// closer than tolerance are treated as the same vertex; zero disables
// snapping.
func NewSubdivision(env geom.Envelope, tolerance float64) *Subdivision {
	s := &Subdivision{
		arena:                    NewArena(),
		tolerance:                tolerance,
		edgeCoincidenceTolerance: tolerance / edgeCoincidenceTolFactor,
	}
	s.createFrame(env)
	s.startingEdge = s.initSubdiv()
	s.locator = NewLastFoundLocator(s)
	return s
}

func (s *Subdivision) createFrame(env geom.Envelope) {
	if env.IsEmpty() {
		env = geom.NewEnvelope(geom.Coordinate{})
	}
	offset := math.Max(env.Width(), env.Height()) * frameSizeFactor
	if offset == 0 {
		offset = frameSizeFactor
	}

	s.frameVertices = [4]*Vertex{
		NewVertex(env.MinX()-offset, env.MinY()-offset),
		NewVertex(env.MaxX()+offset, env.MinY()-offset),
		NewVertex(env.MaxX()+offset, env.MaxY()+offset),
		NewVertex(env.MinX()-offset, env.MaxY()+offset),
	}
	s.frameEnv = geom.NewEnvelope(s.frameVertices[0].Coordinate, s.frameVertices[2].Coordinate)
}

// Builds the frame ring counterclockwise, then splits it with a diagonal so
// that the subdivision starts out as two triangles.
func (s *Subdivision) initSubdiv() Edge {
	var border [4]Edge
	for i := range border {
		border[i] = s.arena.MakeEdge(s.frameVertices[i], s.frameVertices[(i+1)%4])
		border[i].q().frame = true
		if i > 0 {
			Splice(border[i-1].Sym(), border[i])
		}
	}
	Splice(border[3].Sym(), border[0])
	Connect(border[1], border[0])
	return border[0]
}

func (s *Subdivision) Tolerance() float64 {
	return s.tolerance
}

// Envelope of the frame, which contains every vertex.
func (s *Subdivision) Envelope() geom.Envelope {
	return s.frameEnv
}

func (s *Subdivision) StartingEdge() Edge {
	return s.startingEdge
}

func (s *Subdivision) FrameVertices() [4]*Vertex {
	return s.frameVertices
}

func (s *Subdivision) SetLocator(locator Locator) {
	s.locator = locator
}

// NumQuads is the number of physical edges, frame included.
func (s *Subdivision) NumQuads() int {
	return s.arena.NumLive()
}

func (s *Subdivision) MakeEdge(o, d *Vertex) Edge {
	return s.arena.MakeEdge(o, d)
}

func (s *Subdivision) Connect(a, b Edge) Edge {
	return Connect(a, b)
}

func (s *Subdivision) Delete(e Edge) {
	s.arena.Delete(e)
}

func (s *Subdivision) Swap(e Edge) {
	Swap(e)
}

func (s *Subdivision) IsFrameVertex(v *Vertex) bool {
	for _, frameVertex := range s.frameVertices {
		if v == frameVertex {
			return true
		}
	}
	return false
}

// IsFrameEdge is true if e touches the frame at either end.
func (s *Subdivision) IsFrameEdge(e Edge) bool {
	return s.IsFrameVertex(e.Orig()) || s.IsFrameVertex(e.Dest())
}

// IsFrameBorderEdge is true only for the outer edges of the frame, which can
// never be swapped or deleted.
func (s *Subdivision) IsFrameBorderEdge(e Edge) bool {
	return e.IsFrame()
}

// IsOnEdge tests whether p lies on e, within the edge coincidence tolerance.
func (s *Subdivision) IsOnEdge(e Edge, p geom.Coordinate) bool {
	return e.LineSegment().Distance(p) <= s.edgeCoincidenceTolerance
}

func (s *Subdivision) IsVertexOfEdge(e Edge, v *Vertex) bool {
	return v.EqualsTolerance(e.Orig(), s.tolerance) || v.EqualsTolerance(e.Dest(), s.tolerance)
}

// TriangleVertexEdge looks for a vertex of the triangle left of e that
// coincides with v within tolerance, and returns an edge originating there.
func (s *Subdivision) TriangleVertexEdge(e Edge, v *Vertex) (Edge, bool) {
	for _, candidate := range [3]Edge{e, e.Sym(), e.LNext().Sym()} {
		if v.EqualsTolerance(candidate.Orig(), s.tolerance) {
			return candidate, true
		}
	}
	return Edge{}, false
}

// InsertSite connects v to the vertices of the triangle containing it,
// without restoring the Delaunay condition. If v already exists, the edge
// touching it is returned unchanged. Points on an existing edge are not
// handled, and will leave a degenerate triangle.
func (s *Subdivision) InsertSite(v *Vertex) (Edge, error) {
	e, err := s.Locate(v)
	if err != nil {
		return Edge{}, err
	}
	if existing, ok := s.TriangleVertexEdge(e, v); ok {
		return existing, nil
	}

	base := s.MakeEdge(e.Orig(), v)
	Splice(base, e)
	startEdge := base
	for {
		base = Connect(e, base.Sym())
		e = base.OPrev()
		if e.LNext() == startEdge {
			break
		}
	}
	return startEdge, nil
}
