package advanced

import (
	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/quadedge"
)

// ConstraintVertex is a vertex that may lie on a constraint segment.
type ConstraintVertex struct {
	quadedge.Vertex
	// Once set, never cleared
	OnConstraint bool
	// Data of the constraint the vertex lies on
	Constraint interface{}
}

func NewConstraintVertex(p geom.Coordinate) *ConstraintVertex {
	return &ConstraintVertex{Vertex: quadedge.Vertex{Coordinate: p}}
}

// Merge folds in the constraint information of a vertex which was snapped to
// this one. Merging never takes a vertex off a constraint.
func (v *ConstraintVertex) Merge(other *ConstraintVertex) {
	if other.OnConstraint {
		v.OnConstraint = true
		v.Constraint = other.Constraint
	}
}

// VertexFactory creates the vertices inserted by the conforming
// triangulator. seg is the segment being split, or nil for a plain site.
type VertexFactory func(p geom.Coordinate, seg *Segment) *ConstraintVertex

func DefaultVertexFactory(p geom.Coordinate, seg *Segment) *ConstraintVertex {
	return NewConstraintVertex(p)
}
