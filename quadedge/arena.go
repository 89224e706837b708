package quadedge

import "github.com/osuushi/delaunay/internal"

// Arena owns the quads of one subdivision.
type Arena struct {
	quads []quad
	free  []int32
	live  int
}

func NewArena() *Arena {
	return &Arena{}
}

// MakeEdge creates a new isolated edge from o to d.
func (a *Arena) MakeEdge(o, d *Vertex) Edge {
	var index int32
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
		a.quads[index] = quad{}
	} else {
		index = int32(len(a.quads))
		a.quads = append(a.quads, quad{})
	}

	base := Edge{a, index << 2}
	q := base.q()
	q.live = true
	// An isolated edge: each primal direction is alone in its origin ring, and
	// the two dual directions point at each other.
	q.next[0] = base
	q.next[1] = base.withRotation(3)
	q.next[2] = base.withRotation(2)
	q.next[3] = base.withRotation(1)
	q.orig[0] = o
	q.orig[1] = d
	a.live++
	return base
}

// NumLive is the number of quads currently in use.
func (a *Arena) NumLive() int {
	return a.live
}

// LiveEdges returns the rotation 0 edge of every live quad, in allocation
// order.
func (a *Arena) LiveEdges() []Edge {
	edges := make([]Edge, 0, a.live)
	for i := range a.quads {
		if a.quads[i].live {
			edges = append(edges, Edge{a, int32(i) << 2})
		}
	}
	return edges
}

// Splice joins or splits the origin rings of a and b, and the corresponding
// dual rings. It is its own inverse.
func Splice(a, b Edge) {
	alpha := a.ONext().Rot()
	beta := b.ONext().Rot()

	t1 := b.ONext()
	t2 := a.ONext()
	t3 := beta.ONext()
	t4 := alpha.ONext()

	a.setNext(t1)
	b.setNext(t2)
	alpha.setNext(t3)
	beta.setNext(t4)
}

// Connect adds a new edge from a.Dest() to b.Orig(), so that a, the new edge
// and b share a left face.
func Connect(a, b Edge) Edge {
	e := a.arena.MakeEdge(a.Dest(), b.Orig())
	Splice(e, a.LNext())
	Splice(e.Sym(), b)
	return e
}

// Delete disconnects e from the structure and frees its quad for reuse.
// Handles to e are invalid afterwards.
func (a *Arena) Delete(e Edge) {
	Splice(e, e.OPrev())
	Splice(e.Sym(), e.Sym().OPrev())

	index := int32(e.Quad())
	a.quads[index] = quad{}
	a.free = append(a.free, index)
	a.live--
}

// Swap turns e counterclockwise inside the quadrilateral formed by its two
// adjacent triangles.
//
//	      c                c
//	     / \              /|\
//	    /   \            / | \
//	   a--e->b    =>    a  e  b
//	    \   /            \ | /
//	     \ /              \|/
//	      d                d
func Swap(e Edge) {
	if e.IsFrame() {
		internal.Fatalf("cannot swap frame border edge %v", e)
	}
	a := e.OPrev()
	b := e.Sym().OPrev()
	Splice(e, a)
	Splice(e.Sym(), b)
	Splice(e, a.LNext())
	Splice(e.Sym(), b.LNext())
	e.SetOrig(a.Dest())
	e.SetDest(b.Dest())
}
