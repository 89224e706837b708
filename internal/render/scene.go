// Package render draws triangulations for debugging and for the command line
// tool, as PNG (optionally shown in the terminal) or SVG.
package render

import (
	"math"

	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/quadedge"
)

// Padding around the drawing, in pixels
const drawPadding = 20

// Scene is everything that can be drawn. Any part may be left empty.
type Scene struct {
	Subdivision *quadedge.Subdivision
	// Drawn over the triangulation edges
	Constraints []geom.LineSegment
	Cells       []quadedge.VoronoiCell
	// Label vertices with their debug names
	Labels      bool
}

func (s Scene) vertices() []*quadedge.Vertex {
	if s.Subdivision == nil {
		return nil
	}
	return s.Subdivision.Vertices(false)
}

func (s Scene) triangles() []quadedge.Triangle {
	if s.Subdivision == nil {
		return nil
	}
	return s.Subdivision.Triangles()
}

func (s Scene) edges() []geom.LineSegment {
	if s.Subdivision == nil {
		return nil
	}
	return s.Subdivision.Edges()
}

// Envelope bounds everything in the scene. An empty scene gets the unit
// square.
func (s Scene) Envelope() geom.Envelope {
	var env geom.Envelope
	for _, v := range s.vertices() {
		env.ExpandToInclude(v.Coordinate)
	}
	for _, seg := range s.Constraints {
		env.ExpandToInclude(seg.P0)
		env.ExpandToInclude(seg.P1)
	}
	for _, cell := range s.Cells {
		for _, c := range cell.Ring {
			env.ExpandToInclude(c)
		}
	}
	if env.IsEmpty() {
		env = geom.EnvelopeFromBounds(0, 0, 1, 1)
	}
	return env
}

// Maps scene coordinates to image coordinates, with the origin at the bottom
// left.
type viewport struct {
	env    geom.Envelope
	scale  float64
	width  int
	height int
}

func newViewport(env geom.Envelope, scale float64) viewport {
	return viewport{
		env:    env,
		scale:  scale,
		width:  int(math.Ceil(scale*env.Width())) + drawPadding*2,
		height: int(math.Ceil(scale*env.Height())) + drawPadding*2,
	}
}

func (v viewport) point(c geom.Coordinate) (float64, float64) {
	x := (c.X-v.env.MinX())*v.scale + drawPadding
	y := float64(v.height) - ((c.Y-v.env.MinY())*v.scale + drawPadding)
	return x, y
}

// FitScale picks the scale which draws env at about size pixels along its
// larger side.
func FitScale(env geom.Envelope, size float64) float64 {
	extent := math.Max(env.Width(), env.Height())
	if extent == 0 {
		return 1
	}
	return size / extent
}
