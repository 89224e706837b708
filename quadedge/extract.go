package quadedge

import "github.com/osuushi/delaunay/geom"

// Triangle is three vertices in counterclockwise order.
type Triangle [3]*Vertex

func (t Triangle) Coordinates() [3]geom.Coordinate {
	return [3]geom.Coordinate{t[0].Coordinate, t[1].Coordinate, t[2].Coordinate}
}

// VoronoiCell is the region of the plane closer to Site than to any other
// vertex. The ring is open and counterclockwise.
type VoronoiCell struct {
	Site *Vertex
	Ring []geom.Coordinate
}

// Vertices returns each distinct vertex once, in order of first appearance.
func (s *Subdivision) Vertices(includeFrame bool) []*Vertex {
	var vertices []*Vertex
	for _, e := range s.VertexUniqueEdges(includeFrame) {
		vertices = append(vertices, e.Orig())
	}
	return vertices
}

// VertexUniqueEdges returns one edge originating at each distinct vertex.
func (s *Subdivision) VertexUniqueEdges(includeFrame bool) []Edge {
	var edges []Edge
	visited := make(map[*Vertex]struct{})
	for _, qe := range s.arena.LiveEdges() {
		// A vertex may only ever appear as a destination, so check both ends
		for _, e := range [2]Edge{qe, qe.Sym()} {
			v := e.Orig()
			if _, ok := visited[v]; ok {
				continue
			}
			visited[v] = struct{}{}
			if includeFrame || !s.IsFrameVertex(v) {
				edges = append(edges, e)
			}
		}
	}
	return edges
}

// PrimaryEdges returns every edge once, oriented from its lower vertex.
func (s *Subdivision) PrimaryEdges(includeFrame bool) []Edge {
	var edges []Edge
	stack := []Edge{s.startingEdge}
	visited := make(map[Edge]struct{})

	for len(stack) > 0 {
		edge := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[edge]; ok {
			continue
		}
		primary := edge.Primary()
		if includeFrame || !s.IsFrameEdge(primary) {
			edges = append(edges, primary)
		}
		stack = append(stack, edge.ONext(), edge.Sym().ONext())
		visited[edge] = struct{}{}
		visited[edge.Sym()] = struct{}{}
	}
	return edges
}

// Edges returns the geometry of every edge not touching the frame.
func (s *Subdivision) Edges() []geom.LineSegment {
	primary := s.PrimaryEdges(false)
	segments := make([]geom.LineSegment, len(primary))
	for i, e := range primary {
		segments[i] = e.LineSegment()
	}
	return segments
}

// TriangleVisitor receives the three edges of a face, each with the face on
// its left.
type TriangleVisitor func(triEdges [3]Edge)

// VisitTriangles calls visit once for every triangular face. Triangles with a
// frame vertex are skipped unless includeFrame is set. The face outside the
// frame is never visited.
func (s *Subdivision) VisitTriangles(visit TriangleVisitor, includeFrame bool) {
	stack := []Edge{s.startingEdge}
	visited := make(map[Edge]struct{})

	for len(stack) > 0 {
		edge := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[edge]; ok {
			continue
		}
		if triEdges, ok := s.fetchTriangleToVisit(edge, &stack, includeFrame, visited); ok {
			visit(triEdges)
		}
	}
}

// Marks every edge of the face left of edge as visited and queues the
// neighboring faces.
func (s *Subdivision) fetchTriangleToVisit(edge Edge, stack *[]Edge, includeFrame bool, visited map[Edge]struct{}) ([3]Edge, bool) {
	var triEdges [3]Edge
	count := 0
	isFrame := false
	curr := edge
	for {
		if count < 3 {
			triEdges[count] = curr
		}
		if s.IsFrameEdge(curr) {
			isFrame = true
		}
		sym := curr.Sym()
		if _, ok := visited[sym]; !ok {
			*stack = append(*stack, sym)
		}
		visited[curr] = struct{}{}
		count++
		curr = curr.LNext()
		if curr == edge {
			break
		}
	}

	if count != 3 || (isFrame && !includeFrame) {
		return triEdges, false
	}
	return triEdges, true
}

func (s *Subdivision) TriangleEdges(includeFrame bool) [][3]Edge {
	var triangles [][3]Edge
	s.VisitTriangles(func(triEdges [3]Edge) {
		triangles = append(triangles, triEdges)
	}, includeFrame)
	return triangles
}

func (s *Subdivision) TriangleVertices(includeFrame bool) []Triangle {
	var triangles []Triangle
	s.VisitTriangles(func(triEdges [3]Edge) {
		triangles = append(triangles, Triangle{triEdges[0].Orig(), triEdges[1].Orig(), triEdges[2].Orig()})
	}, includeFrame)
	return triangles
}

func (s *Subdivision) TriangleCoordinates(includeFrame bool) [][3]geom.Coordinate {
	var triangles [][3]geom.Coordinate
	for _, tri := range s.TriangleVertices(includeFrame) {
		triangles = append(triangles, tri.Coordinates())
	}
	return triangles
}

// Triangles returns the triangles not touching the frame.
func (s *Subdivision) Triangles() []Triangle {
	return s.TriangleVertices(false)
}

// VoronoiCells returns the cell of every real vertex. Cells of vertices on the
// convex hull reach out to circumcentres of frame triangles, so callers will
// usually want to clip them.
func (s *Subdivision) VoronoiCells() []VoronoiCell {
	// Computing each circumcentre once keeps neighboring cells consistent
	centres := make(map[Edge]geom.Coordinate)
	s.VisitTriangles(func(triEdges [3]Edge) {
		cc := geom.Circumcentre(triEdges[0].Orig().Coordinate, triEdges[1].Orig().Coordinate, triEdges[2].Orig().Coordinate)
		for _, e := range triEdges {
			centres[e] = cc
		}
	}, true)

	var cells []VoronoiCell
	for _, start := range s.VertexUniqueEdges(false) {
		var ring []geom.Coordinate
		qe := start
		for {
			ring = append(ring, centres[qe])
			// Next triangle clockwise around the site
			qe = qe.OPrev()
			if qe == start {
				break
			}
		}
		// Reverse into counterclockwise order
		for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
			ring[i], ring[j] = ring[j], ring[i]
		}
		cells = append(cells, VoronoiCell{Site: start.Orig(), Ring: ring})
	}
	return cells
}
