// Delaunay triangulation, conforming Delaunay triangulation and Voronoi
// diagrams for Go.
//
// Sites are 2D points, optionally carrying a Z value. Conforming
// triangulation additionally takes constraint polylines and adds points along
// them until each one appears as a chain of triangulation edges.
//
// The subdivision returned by each function gives access to the edges,
// triangles and Voronoi cells, as well as the quad-edge structure itself. For
// finer control, see the advanced package.
package delaunay

import (
	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/quadedge"
	"go.uber.org/zap"
)

type Coordinate = geom.Coordinate
type Envelope = geom.Envelope
type Subdivision = quadedge.Subdivision
type Triangle = quadedge.Triangle
type VoronoiCell = quadedge.VoronoiCell
type Constraint = advanced.Constraint
type Segment = advanced.Segment
type ConstraintVertex = advanced.ConstraintVertex
type SplitPointFinder = advanced.SplitPointFinder
type VertexFactory = advanced.VertexFactory

type LocateFailureError = advanced.LocateFailureError
type ConstraintEnforcementError = advanced.ConstraintEnforcementError

// Triangulate computes the Delaunay triangulation of sites. Sites within
// tolerance of each other are merged.
func Triangulate(sites []Coordinate, tolerance float64) (result *Subdivision, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	b := advanced.NewDelaunayBuilder()
	b.SetSites(sites)
	b.SetTolerance(tolerance)
	return b.Subdivision()
}

// Option configures Conform.
type Option func(*advanced.ConformingBuilder)

// WithSplitPointFinder chooses where encroached constraint segments are
// split.
func WithSplitPointFinder(splitFinder SplitPointFinder) Option {
	return func(b *advanced.ConformingBuilder) { b.SetSplitPointFinder(splitFinder) }
}

func WithVertexFactory(vertexFactory VertexFactory) Option {
	return func(b *advanced.ConformingBuilder) { b.SetVertexFactory(vertexFactory) }
}

// WithDebug returns the partially conforming triangulation instead of a
// ConstraintEnforcementError.
func WithDebug(debug bool) Option {
	return func(b *advanced.ConformingBuilder) { b.SetDebug(debug) }
}

// WithLogger reports enforcement progress to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(b *advanced.ConformingBuilder) { b.SetLogger(logger) }
}

func WithMaxSplitIterations(n int) Option {
	return func(b *advanced.ConformingBuilder) { b.SetMaxSplitIterations(n) }
}

// Conform computes a conforming Delaunay triangulation of sites and
// constraints. Along with the subdivision, it returns the pieces the
// constraints were split into.
func Conform(sites []Coordinate, constraints []Constraint, tolerance float64, opts ...Option) (result *Subdivision, segments []*Segment, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			segments = nil
			err = recoveredErr
		}
	}()
	b := advanced.NewConformingBuilder()
	b.SetSites(sites)
	b.SetConstraints(constraints)
	b.SetTolerance(tolerance)
	for _, opt := range opts {
		opt(b)
	}
	result, err = b.Subdivision()
	if err != nil {
		return nil, nil, err
	}
	segments, err = b.ConstraintSegments()
	return result, segments, err
}

// Voronoi computes the Voronoi cells of sites, clipped to the envelope of
// the sites grown by its larger side.
func Voronoi(sites []Coordinate, tolerance float64) (result []VoronoiCell, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	b := advanced.NewVoronoiBuilder()
	b.SetSites(sites)
	b.SetTolerance(tolerance)
	return b.Diagram()
}

// VoronoiClipped is Voronoi with an explicit clip envelope.
func VoronoiClipped(sites []Coordinate, tolerance float64, clip Envelope) (result []VoronoiCell, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	b := advanced.NewVoronoiBuilder()
	b.SetSites(sites)
	b.SetTolerance(tolerance)
	b.SetClipEnvelope(clip)
	return b.Diagram()
}
