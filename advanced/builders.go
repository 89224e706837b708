package advanced

import (
	"math"

	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/internal/kdtree"
	"github.com/osuushi/delaunay/quadedge"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// Sites closer than the tolerance collapse onto the first one inserted.
// Sorting first makes the insertion order, and so the result, independent of
// input order.
func uniqueSiteVertices(coords []geom.Coordinate, tolerance float64) []*quadedge.Vertex {
	sorted := slices.Clone(coords)
	geom.SortCoordinates(sorted)

	kdt := kdtree.New(tolerance)
	var vertices []*quadedge.Vertex
	for _, p := range sorted {
		node := kdt.Insert(p, nil)
		if node.IsRepeated() {
			continue
		}
		vertices = append(vertices, quadedge.NewVertexFromCoordinate(p))
	}
	return vertices
}

func vertexEnvelope(vertices []*quadedge.Vertex) geom.Envelope {
	var env geom.Envelope
	for _, v := range vertices {
		env.ExpandToInclude(v.Coordinate)
	}
	return env
}

// DelaunayBuilder triangulates a set of sites.
type DelaunayBuilder struct {
	siteCoords []geom.Coordinate
	sites      []*quadedge.Vertex
	tolerance  float64
	subdiv     *quadedge.Subdivision
}

func NewDelaunayBuilder() *DelaunayBuilder {
	return &DelaunayBuilder{}
}

// SetSites sets the sites to triangulate. Duplicates within tolerance are
// removed when the triangulation is built.
func (b *DelaunayBuilder) SetSites(coords []geom.Coordinate) {
	b.siteCoords = coords
	b.sites = nil
	b.subdiv = nil
}

// SetSiteVertices uses the given vertices as is, so that their Data is kept
// in the result. No deduplication takes place beyond the subdivision's own
// snapping.
func (b *DelaunayBuilder) SetSiteVertices(vertices []*quadedge.Vertex) {
	b.siteCoords = nil
	b.sites = vertices
	b.subdiv = nil
}

func (b *DelaunayBuilder) SetTolerance(tolerance float64) {
	b.tolerance = tolerance
	b.subdiv = nil
}

// Subdivision builds the triangulation on first call and caches it.
func (b *DelaunayBuilder) Subdivision() (*quadedge.Subdivision, error) {
	if b.subdiv != nil {
		return b.subdiv, nil
	}
	sites := b.sites
	if sites == nil {
		sites = uniqueSiteVertices(b.siteCoords, b.tolerance)
	}
	subdiv := quadedge.NewSubdivision(vertexEnvelope(sites), b.tolerance)
	triangulator := NewIncrementalDelaunayTriangulator(subdiv)
	if err := triangulator.InsertSites(sites); err != nil {
		return nil, err
	}
	b.subdiv = subdiv
	return subdiv, nil
}

func (b *DelaunayBuilder) Edges() ([]geom.LineSegment, error) {
	subdiv, err := b.Subdivision()
	if err != nil {
		return nil, err
	}
	return subdiv.Edges(), nil
}

func (b *DelaunayBuilder) Triangles() ([]quadedge.Triangle, error) {
	subdiv, err := b.Subdivision()
	if err != nil {
		return nil, err
	}
	return subdiv.Triangles(), nil
}

// Constraint is a polyline that must appear in a conforming triangulation.
// Data is attached to every segment of the polyline and to the vertices
// created on it.
type Constraint struct {
	Coords []geom.Coordinate
	Data   interface{}
}

// ConformingBuilder builds a conforming Delaunay triangulation of sites and
// constraint polylines.
type ConformingBuilder struct {
	siteCoords    []geom.Coordinate
	constraints   []Constraint
	tolerance     float64
	splitFinder   SplitPointFinder
	vertexFactory VertexFactory
	maxSplitIter  int
	debug         bool
	logger        *zap.Logger

	cdt    *ConformingDelaunayTriangulator
	subdiv *quadedge.Subdivision
}

func NewConformingBuilder() *ConformingBuilder {
	return &ConformingBuilder{
		splitFinder:   NonEncroachingSplitPointFinder{},
		vertexFactory: DefaultVertexFactory,
		maxSplitIter:  DefaultMaxSplitIterations,
		logger:        zap.NewNop(),
	}
}

func (b *ConformingBuilder) SetSites(coords []geom.Coordinate) {
	b.siteCoords = coords
	b.reset()
}

func (b *ConformingBuilder) SetConstraints(constraints []Constraint) {
	b.constraints = constraints
	b.reset()
}

func (b *ConformingBuilder) SetTolerance(tolerance float64) {
	b.tolerance = tolerance
	b.reset()
}

func (b *ConformingBuilder) SetSplitPointFinder(splitFinder SplitPointFinder) {
	b.splitFinder = splitFinder
	b.reset()
}

func (b *ConformingBuilder) SetVertexFactory(vertexFactory VertexFactory) {
	b.vertexFactory = vertexFactory
	b.reset()
}

func (b *ConformingBuilder) SetMaxSplitIterations(n int) {
	b.maxSplitIter = n
	b.reset()
}

func (b *ConformingBuilder) SetDebug(debug bool) {
	b.debug = debug
	b.reset()
}

func (b *ConformingBuilder) SetLogger(logger *zap.Logger) {
	b.logger = logger
}

func (b *ConformingBuilder) reset() {
	b.cdt = nil
	b.subdiv = nil
}

func (b *ConformingBuilder) createVertex(p geom.Coordinate) *ConstraintVertex {
	v := b.vertexFactory(p, nil)
	if v == nil {
		fatalf("vertex factory returned nil for %v", p)
	}
	return v
}

// Returns the constraint segments along with their distinct endpoints. The
// first constraint to reach a coordinate owns the vertex there.
func (b *ConformingBuilder) constraintSegments() ([]*Segment, []*ConstraintVertex) {
	vertexAt := make(map[geom.Coordinate]*ConstraintVertex)
	var vertices []*ConstraintVertex
	var segments []*Segment

	vertexFor := func(p geom.Coordinate, c Constraint) *ConstraintVertex {
		key := geom.Coordinate{X: p.X, Y: p.Y}
		if v, ok := vertexAt[key]; ok {
			return v
		}
		v := b.createVertex(p)
		v.OnConstraint = true
		v.Constraint = c.Data
		vertexAt[key] = v
		vertices = append(vertices, v)
		return v
	}

	for _, c := range b.constraints {
		for i := range c.Coords {
			v0 := vertexFor(c.Coords[i], c)
			if i == 0 {
				continue
			}
			prev := vertexFor(c.Coords[i-1], c)
			if prev.Coordinate.Equals2D(v0.Coordinate) {
				continue
			}
			segments = append(segments, NewSegment(prev.Coordinate, v0.Coordinate, c.Data))
		}
	}
	return segments, vertices
}

// Sites lying on a constraint vertex would only be snapped to it.
func (b *ConformingBuilder) siteVertices(segVertices []*ConstraintVertex) []*ConstraintVertex {
	onConstraint := make(map[geom.Coordinate]struct{}, len(segVertices))
	for _, v := range segVertices {
		onConstraint[geom.Coordinate{X: v.X, Y: v.Y}] = struct{}{}
	}

	coords := slices.Clone(b.siteCoords)
	geom.SortCoordinates(coords)
	var sites []*ConstraintVertex
	for _, p := range coords {
		if _, ok := onConstraint[geom.Coordinate{X: p.X, Y: p.Y}]; ok {
			continue
		}
		sites = append(sites, b.createVertex(p))
	}
	return sites
}

// Triangulator returns the triangulator after it has been run, so that the
// constraint segments and inserted sites can be inspected.
func (b *ConformingBuilder) Triangulator() (*ConformingDelaunayTriangulator, error) {
	if _, err := b.Subdivision(); err != nil {
		return nil, err
	}
	return b.cdt, nil
}

// Subdivision runs the conforming triangulation on first call and caches it.
// In debug mode a partial result is returned rather than an error when
// enforcement does not converge.
func (b *ConformingBuilder) Subdivision() (*quadedge.Subdivision, error) {
	if b.subdiv != nil {
		return b.subdiv, nil
	}
	segments, segVertices := b.constraintSegments()
	sites := b.siteVertices(segVertices)

	cdt := NewConformingDelaunayTriangulator(sites, b.tolerance)
	cdt.SetConstraints(segments, segVertices)
	cdt.SetSplitPointFinder(b.splitFinder)
	cdt.SetVertexFactory(b.vertexFactory)
	cdt.SetMaxSplitIterations(b.maxSplitIter)
	cdt.SetDebug(b.debug)
	cdt.SetLogger(b.logger)

	if err := cdt.FormInitialDelaunay(); err != nil {
		return nil, err
	}
	if err := cdt.EnforceConstraints(); err != nil {
		return nil, err
	}
	b.cdt = cdt
	b.subdiv = cdt.Subdivision()
	return b.subdiv, nil
}

func (b *ConformingBuilder) Edges() ([]geom.LineSegment, error) {
	subdiv, err := b.Subdivision()
	if err != nil {
		return nil, err
	}
	return subdiv.Edges(), nil
}

func (b *ConformingBuilder) Triangles() ([]quadedge.Triangle, error) {
	subdiv, err := b.Subdivision()
	if err != nil {
		return nil, err
	}
	return subdiv.Triangles(), nil
}

// ConstraintSegments returns the pieces the constraints were split into.
func (b *ConformingBuilder) ConstraintSegments() ([]*Segment, error) {
	if _, err := b.Subdivision(); err != nil {
		return nil, err
	}
	return b.cdt.ConstraintSegments(), nil
}

// VoronoiBuilder computes the Voronoi diagram of a set of sites.
type VoronoiBuilder struct {
	delaunay *DelaunayBuilder
	clipEnv  geom.Envelope
	hasClip  bool
}

func NewVoronoiBuilder() *VoronoiBuilder {
	return &VoronoiBuilder{delaunay: NewDelaunayBuilder()}
}

func (b *VoronoiBuilder) SetSites(coords []geom.Coordinate) {
	b.delaunay.SetSites(coords)
}

func (b *VoronoiBuilder) SetSiteVertices(vertices []*quadedge.Vertex) {
	b.delaunay.SetSiteVertices(vertices)
}

func (b *VoronoiBuilder) SetTolerance(tolerance float64) {
	b.delaunay.SetTolerance(tolerance)
}

// SetClipEnvelope sets the region cells are clipped to. By default this is
// the envelope of the sites grown by its larger side.
func (b *VoronoiBuilder) SetClipEnvelope(env geom.Envelope) {
	b.clipEnv = env
	b.hasClip = true
}

func (b *VoronoiBuilder) Subdivision() (*quadedge.Subdivision, error) {
	return b.delaunay.Subdivision()
}

// DefaultClipMargin is how far the default clip envelope extends past env:
// its larger side, or 1 when env is a single point.
func DefaultClipMargin(env geom.Envelope) float64 {
	margin := math.Max(env.Width(), env.Height())
	if margin == 0 {
		margin = 1
	}
	return margin
}

// Diagram returns one clipped cell per distinct site. Cells falling wholly
// outside the clip envelope are left out.
func (b *VoronoiBuilder) Diagram() ([]quadedge.VoronoiCell, error) {
	subdiv, err := b.delaunay.Subdivision()
	if err != nil {
		return nil, err
	}
	clipEnv := b.clipEnv
	if !b.hasClip {
		clipEnv = vertexEnvelope(subdiv.Vertices(false))
		clipEnv.ExpandBy(DefaultClipMargin(clipEnv))
	}

	var cells []quadedge.VoronoiCell
	for _, cell := range subdiv.VoronoiCells() {
		ring := geom.ClipToEnvelope(cell.Ring, clipEnv)
		if len(ring) < 3 {
			continue
		}
		cells = append(cells, quadedge.VoronoiCell{Site: cell.Site, Ring: ring})
	}
	return cells, nil
}
