package advanced

import (
	"math"

	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/internal/kdtree"
	"github.com/osuushi/delaunay/quadedge"
	"go.uber.org/zap"
)

const DefaultMaxSplitIterations = 99

type conformingState int

const (
	unbuilt conformingState = iota
	initialDelaunay
	constraintsEnforced
)

// ConformingDelaunayTriangulator computes a Delaunay triangulation in which
// every constraint segment is a union of triangulation edges. Segments are
// split by inserting extra vertices until each satisfies the Gabriel
// condition: no vertex strictly inside the circle having the segment as its
// diameter. A Delaunay triangulation always contains every Gabriel segment.
//
// Typical use:
//
//	cdt := NewConformingDelaunayTriangulator(sites, tolerance)
//	cdt.SetConstraints(segments, segmentVertices)
//	err := cdt.FormInitialDelaunay()
//	...
//	err = cdt.EnforceConstraints()
type ConformingDelaunayTriangulator struct {
	initialVertices []*ConstraintVertex
	segVertices     []*ConstraintVertex
	// Worklist of segments still to be checked, replaced after every pass
	segments      []*Segment
	subdiv        *quadedge.Subdivision
	incDel        *IncrementalDelaunayTriangulator
	convexHull    []geom.Coordinate
	splitFinder   SplitPointFinder
	kdt           *kdtree.Tree
	vertexFactory VertexFactory
	// Maps subdivision vertices back to the constraint vertices embedding them
	vertices       map[*quadedge.Vertex]*ConstraintVertex
	computeAreaEnv geom.Envelope
	splitPt        geom.Coordinate
	tolerance      float64
	maxSplitIter   int
	debug          bool
	logger         *zap.Logger
	state          conformingState
}

func NewConformingDelaunayTriangulator(initialVertices []*ConstraintVertex, tolerance float64) *ConformingDelaunayTriangulator {
	return &ConformingDelaunayTriangulator{
		initialVertices: append([]*ConstraintVertex(nil), initialVertices...),
		splitFinder:     NonEncroachingSplitPointFinder{},
		kdt:             kdtree.New(tolerance),
		vertexFactory:   DefaultVertexFactory,
		vertices:        make(map[*quadedge.Vertex]*ConstraintVertex),
		tolerance:       tolerance,
		maxSplitIter:    DefaultMaxSplitIterations,
		logger:          zap.NewNop(),
	}
}

// SetConstraints sets the segments to conform to, along with their distinct
// endpoints.
func (c *ConformingDelaunayTriangulator) SetConstraints(segments []*Segment, segVertices []*ConstraintVertex) {
	c.segments = append([]*Segment(nil), segments...)
	c.segVertices = append([]*ConstraintVertex(nil), segVertices...)
}

func (c *ConformingDelaunayTriangulator) SetSplitPointFinder(splitFinder SplitPointFinder) {
	c.splitFinder = splitFinder
}

func (c *ConformingDelaunayTriangulator) SetVertexFactory(vertexFactory VertexFactory) {
	c.vertexFactory = vertexFactory
}

func (c *ConformingDelaunayTriangulator) VertexFactory() VertexFactory {
	return c.vertexFactory
}

// SetDebug stops EnforceConstraints from failing when it runs out of
// iterations, so the partial result can be inspected.
func (c *ConformingDelaunayTriangulator) SetDebug(debug bool) {
	c.debug = debug
}

func (c *ConformingDelaunayTriangulator) SetLogger(logger *zap.Logger) {
	c.logger = logger
}

func (c *ConformingDelaunayTriangulator) SetMaxSplitIterations(n int) {
	c.maxSplitIter = n
}

func (c *ConformingDelaunayTriangulator) Tolerance() float64 {
	return c.tolerance
}

func (c *ConformingDelaunayTriangulator) Subdivision() *quadedge.Subdivision {
	return c.subdiv
}

func (c *ConformingDelaunayTriangulator) InitialVertices() []*ConstraintVertex {
	return c.initialVertices
}

// ConstraintSegments returns the current segments. After enforcement these
// are the pieces the original segments were split into.
func (c *ConformingDelaunayTriangulator) ConstraintSegments() []*Segment {
	return c.segments
}

// ConvexHull of all sites and constraint vertices, available after
// EnforceConstraints.
func (c *ConformingDelaunayTriangulator) ConvexHull() []geom.Coordinate {
	return c.convexHull
}

// NumSites is the number of distinct vertices inserted so far.
func (c *ConformingDelaunayTriangulator) NumSites() int {
	return c.kdt.Size()
}

// SitesWithin returns the inserted vertices inside env.
func (c *ConformingDelaunayTriangulator) SitesWithin(env geom.Envelope) []*ConstraintVertex {
	var sites []*ConstraintVertex
	c.kdt.Query(env, func(node *kdtree.Node) {
		sites = append(sites, node.Data().(*ConstraintVertex))
	})
	return sites
}

// ConstraintVertexOf returns the constraint vertex for a vertex of the
// subdivision. Frame vertices have none.
func (c *ConformingDelaunayTriangulator) ConstraintVertexOf(v *quadedge.Vertex) (*ConstraintVertex, bool) {
	cv, ok := c.vertices[v]
	return cv, ok
}

func computeVertexEnvelope(vertices []*ConstraintVertex) geom.Envelope {
	var env geom.Envelope
	for _, v := range vertices {
		env.ExpandToInclude(v.Coordinate)
	}
	return env
}

// The working area is padded so that constraint enforcement stays clear of
// the frame.
func (c *ConformingDelaunayTriangulator) computeBoundingBox() {
	env := computeVertexEnvelope(c.initialVertices)
	env.ExpandToIncludeEnvelope(computeVertexEnvelope(c.segVertices))
	delta := math.Max(env.Width()*0.2, env.Height()*0.2)
	env.ExpandBy(delta)
	c.computeAreaEnv = env
}

// Hull of every vertex in the index, at the coordinates they were inserted at.
func (c *ConformingDelaunayTriangulator) computeConvexHull() {
	c.convexHull = geom.ConvexHull(kdtree.Coordinates(c.kdt.Nodes(), false))
}

func (c *ConformingDelaunayTriangulator) createVertex(p geom.Coordinate) *ConstraintVertex {
	v := c.vertexFactory(p, nil)
	if v == nil {
		fatalf("vertex factory returned nil for site %v", p)
	}
	return v
}

func (c *ConformingDelaunayTriangulator) createConstraintVertex(p geom.Coordinate, seg *Segment) *ConstraintVertex {
	v := c.vertexFactory(p, seg)
	if v == nil {
		fatalf("vertex factory returned nil for split of %v at %v", seg, p)
	}
	v.OnConstraint = true
	if v.Constraint == nil {
		v.Constraint = seg.Data()
	}
	return v
}

func (c *ConformingDelaunayTriangulator) insertSites(vertices []*ConstraintVertex) error {
	c.logger.Debug("adding sites", zap.Int("count", len(vertices)))
	for _, v := range vertices {
		if _, err := c.insertSite(v); err != nil {
			return err
		}
	}
	return nil
}

// Inserts v, unless it snaps to an existing vertex, in which case the
// existing vertex absorbs v's constraint flags and is returned instead.
func (c *ConformingDelaunayTriangulator) insertSite(v *ConstraintVertex) (*ConstraintVertex, error) {
	node := c.kdt.Insert(v.Coordinate, v)
	if node.IsRepeated() {
		snapped := node.Data().(*ConstraintVertex)
		snapped.Merge(v)
		return snapped, nil
	}
	e, err := c.incDel.InsertSite(&v.Vertex)
	if err != nil {
		return nil, err
	}
	// The subdivision can still snap where the index did not
	if existing, ok := c.vertices[e.Orig()]; ok && existing != v {
		existing.Merge(v)
		return existing, nil
	}
	c.vertices[&v.Vertex] = v
	return v, nil
}

// InsertSite adds an extra unconstrained site.
func (c *ConformingDelaunayTriangulator) InsertSite(p geom.Coordinate) (*ConstraintVertex, error) {
	if c.state == unbuilt {
		return nil, ErrNotInitialized
	}
	return c.insertSite(c.createVertex(p))
}

// FormInitialDelaunay triangulates the initial vertices. Constraint vertices
// are included in the working area but not inserted yet.
func (c *ConformingDelaunayTriangulator) FormInitialDelaunay() error {
	c.computeBoundingBox()
	c.subdiv = quadedge.NewSubdivision(c.computeAreaEnv, c.tolerance)
	c.subdiv.SetLocator(quadedge.NewLastFoundLocator(c.subdiv))
	c.incDel = NewIncrementalDelaunayTriangulator(c.subdiv)
	c.kdt = kdtree.New(c.tolerance)
	c.vertices = make(map[*quadedge.Vertex]*ConstraintVertex)
	if err := c.insertSites(c.initialVertices); err != nil {
		return err
	}
	c.state = initialDelaunay
	return nil
}

type xy struct{ x, y float64 }

// Inserts the segment endpoints. An endpoint may snap onto a vertex already
// present, in which case the segments are moved onto that vertex and any
// which collapse are dropped.
func (c *ConformingDelaunayTriangulator) insertConstraintVertices() error {
	c.logger.Debug("adding constraint vertices", zap.Int("count", len(c.segVertices)))
	snappedTo := make(map[xy]geom.Coordinate)
	for _, v := range c.segVertices {
		inserted, err := c.insertSite(v)
		if err != nil {
			return err
		}
		if !inserted.Equals2D(v.Coordinate) {
			snappedTo[xy{v.X, v.Y}] = inserted.Coordinate
		}
	}
	if len(snappedTo) == 0 {
		return nil
	}

	segments := make([]*Segment, 0, len(c.segments))
	for _, seg := range c.segments {
		start, end := seg.Start(), seg.End()
		startSnap, movedStart := snappedTo[xy{start.X, start.Y}]
		endSnap, movedEnd := snappedTo[xy{end.X, end.Y}]
		if !movedStart && !movedEnd {
			segments = append(segments, seg)
			continue
		}
		if movedStart {
			start = startSnap
		}
		if movedEnd {
			end = endSnap
		}
		if start.Equals2D(end) {
			c.logger.Debug("constraint segment collapsed by snapping", zap.Stringer("segment", seg))
			continue
		}
		segments = append(segments, NewSegment(start, end, seg.Data()))
	}
	c.segments = segments
	return nil
}

// EnforceConstraints inserts the constraint vertices, then splits segments
// until every one of them is Gabriel. If that hasn't happened after the
// maximum number of passes, a ConstraintEnforcementError is returned, unless
// debug mode is on.
func (c *ConformingDelaunayTriangulator) EnforceConstraints() error {
	if c.state == unbuilt {
		return ErrNotInitialized
	}
	if err := c.insertConstraintVertices(); err != nil {
		return err
	}
	c.computeConvexHull()

	count := 0
	splits := 0
	for {
		var err error
		c.segments, splits, err = c.enforceGabriel(c.segments)
		if err != nil {
			return err
		}
		count++
		c.logger.Info("constraint pass",
			zap.Int("iter", count),
			zap.Int("splits", splits),
			zap.Int("segments", len(c.segments)))
		if splits == 0 || count >= c.maxSplitIter {
			break
		}
	}
	c.state = constraintsEnforced

	if splits > 0 {
		c.logger.Warn("aborted constraint enforcement",
			zap.Int("iter", count),
			zap.Stringer("splitPt", c.splitPt))
		if !c.debug {
			return &ConstraintEnforcementError{Pt: c.splitPt}
		}
	}
	return nil
}

// One pass over the worklist. Segments with an encroaching point are split in
// two at the inserted vertex; the rest carry over unchanged.
func (c *ConformingDelaunayTriangulator) enforceGabriel(segments []*Segment) ([]*Segment, int, error) {
	next := make([]*Segment, 0, len(segments))
	splits := 0
	for _, seg := range segments {
		encroachPt, ok := c.findNonGabrielPoint(seg)
		if !ok {
			next = append(next, seg)
			continue
		}

		c.splitPt = c.splitFinder.FindSplitPoint(seg, encroachPt)
		splitVertex := c.createConstraintVertex(c.splitPt, seg)
		inserted, err := c.insertSite(splitVertex)
		if err != nil {
			return nil, 0, err
		}
		splits++

		at := inserted.Coordinate
		if !at.Equals2D(c.splitPt) {
			c.logger.Debug("split point snapped",
				zap.Stringer("splitPt", c.splitPt),
				zap.Stringer("snappedTo", at))
		}
		if at.Equals2D(seg.Start()) || at.Equals2D(seg.End()) {
			// Nothing to split at; the segment stays on the worklist and keeps
			// counting as a split so that a stuck segment ends in an error
			c.logger.Debug("split snapped onto segment endpoint", zap.Stringer("segment", seg))
			next = append(next, seg)
			continue
		}
		next = append(next,
			NewSegment(seg.Start(), at, seg.Data()),
			NewSegment(at, seg.End(), seg.Data()),
		)
	}
	return next, splits, nil
}

// Finds the inserted vertex nearest the midpoint of seg that lies strictly
// inside the circle with seg as its diameter. Equally near candidates are
// broken by coordinate order, so the result does not depend on the index.
func (c *ConformingDelaunayTriangulator) findNonGabrielPoint(seg *Segment) (geom.Coordinate, bool) {
	p := seg.Start()
	q := seg.End()
	midPt := geom.Coordinate{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
	segRadius := p.Distance(midPt)

	env := geom.NewEnvelope(midPt)
	env.ExpandBy(segRadius)

	var closest geom.Coordinate
	found := false
	minDist := math.MaxFloat64
	c.kdt.Query(env, func(node *kdtree.Node) {
		testPt := node.Coordinate()
		if testPt.Equals2D(p) || testPt.Equals2D(q) {
			return
		}
		testRadius := midPt.Distance(testPt)
		if testRadius >= segRadius {
			return
		}
		if !found || testRadius < minDist || (testRadius == minDist && testPt.Compare(closest) < 0) {
			closest = testPt
			minDist = testRadius
			found = true
		}
	})
	return closest, found
}
