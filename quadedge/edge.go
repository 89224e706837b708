// Package quadedge implements the Guibas-Stolfi quad-edge structure and a
// planar subdivision built on it.
//
// Every physical edge is one quad of four directed edges stored in an Arena.
// An Edge is a small value handle (arena, quad index, rotation), so rotating,
// reversing and comparing edges never allocates, and quads freed by Delete are
// recycled by later allocations.
package quadedge

import (
	"fmt"

	"github.com/osuushi/delaunay/geom"
)

type quad struct {
	// Next directed edge counterclockwise around the origin, per rotation
	next [4]Edge
	// Only the primal pair (rotations 0 and 2) has an origin
	orig  [2]*Vertex
	data  interface{}
	frame bool
	live  bool
}

// Edge is a handle to one of the four directed edges of a quad. The zero
// value is the nil edge.
type Edge struct {
	arena *Arena
	id    int32
}

func (e Edge) IsNil() bool {
	return e.arena == nil
}

func (e Edge) q() *quad {
	return &e.arena.quads[e.id>>2]
}

func (e Edge) withRotation(r int32) Edge {
	return Edge{e.arena, e.id&^3 | r&3}
}

func (e Edge) rotation() int32 {
	return e.id & 3
}

// Quad is the index of the physical edge this directed edge belongs to. All
// four rotations share it.
func (e Edge) Quad() int {
	return int(e.id >> 2)
}

// Rot is the dual edge, directed from the right face to the left face.
func (e Edge) Rot() Edge {
	return e.withRotation(e.id + 1)
}

func (e Edge) InvRot() Edge {
	return e.withRotation(e.id + 3)
}

func (e Edge) Sym() Edge {
	return e.withRotation(e.id + 2)
}

// ONext is the next edge counterclockwise around the origin.
func (e Edge) ONext() Edge {
	return e.q().next[e.rotation()]
}

func (e Edge) setNext(next Edge) {
	e.q().next[e.rotation()] = next
}

// OPrev is the next edge clockwise around the origin.
func (e Edge) OPrev() Edge {
	return e.Rot().ONext().Rot()
}

func (e Edge) DNext() Edge {
	return e.Sym().ONext().Sym()
}

func (e Edge) DPrev() Edge {
	return e.InvRot().ONext().InvRot()
}

// LNext is the next edge counterclockwise around the left face.
func (e Edge) LNext() Edge {
	return e.InvRot().ONext().Rot()
}

func (e Edge) LPrev() Edge {
	return e.ONext().Sym()
}

func (e Edge) RNext() Edge {
	return e.Rot().ONext().InvRot()
}

func (e Edge) RPrev() Edge {
	return e.Sym().ONext()
}

func (e Edge) IsPrimal() bool {
	return e.rotation()&1 == 0
}

// Orig is nil for dual edges.
func (e Edge) Orig() *Vertex {
	r := e.rotation()
	if r&1 == 1 {
		return nil
	}
	return e.q().orig[r>>1]
}

func (e Edge) Dest() *Vertex {
	return e.Sym().Orig()
}

func (e Edge) SetOrig(v *Vertex) {
	r := e.rotation()
	if r&1 == 1 {
		panic("quadedge: dual edges have no origin")
	}
	e.q().orig[r>>1] = v
}

func (e Edge) SetDest(v *Vertex) {
	e.Sym().SetOrig(v)
}

// Primary returns whichever of e and e.Sym() has the lower origin in
// coordinate order.
func (e Edge) Primary() Edge {
	if e.Orig().Compare(e.Dest().Coordinate) <= 0 {
		return e
	}
	return e.Sym()
}

func (e Edge) IsLive() bool {
	return !e.IsNil() && int(e.id>>2) < len(e.arena.quads) && e.q().live
}

// IsFrame is true for the four border edges of the subdivision frame.
func (e Edge) IsFrame() bool {
	return e.q().frame
}

func (e Edge) Data() interface{} {
	return e.q().data
}

// SetData attaches data to the whole quad.
func (e Edge) SetData(data interface{}) {
	e.q().data = data
}

func (e Edge) Length() float64 {
	return e.Orig().Distance(e.Dest().Coordinate)
}

func (e Edge) LineSegment() geom.LineSegment {
	return geom.LineSegment{P0: e.Orig().Coordinate, P1: e.Dest().Coordinate}
}

// EqualsOriented compares edge geometry including direction.
func (e Edge) EqualsOriented(other Edge) bool {
	return e.Orig().Equals(other.Orig()) && e.Dest().Equals(other.Dest())
}

func (e Edge) EqualsNonOriented(other Edge) bool {
	return e.EqualsOriented(other) || e.EqualsOriented(other.Sym())
}

func (e Edge) String() string {
	if e.IsNil() {
		return "Edge(nil)"
	}
	if !e.IsPrimal() {
		return fmt.Sprintf("Edge(dual %d.%d)", e.Quad(), e.rotation())
	}
	return fmt.Sprintf("Edge(%v -> %v)", e.Orig(), e.Dest())
}
