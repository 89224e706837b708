// Package kdtree is a 2D k-d tree over coordinates. Points inserted within the
// tree's tolerance of an existing node are merged into that node rather than
// added, which makes the tree double as a snapping index.
package kdtree

import (
	"math"

	"github.com/osuushi/delaunay/geom"
)

type Node struct {
	coord       geom.Coordinate
	data        interface{}
	left, right *Node
	count       int
}

func newNode(p geom.Coordinate, data interface{}) *Node {
	return &Node{coord: p, data: data, count: 1}
}

func (n *Node) Coordinate() geom.Coordinate { return n.coord }
func (n *Node) Data() interface{}           { return n.data }

// Count is the number of insertions which landed on this node.
func (n *Node) Count() int { return n.count }

// IsRepeated is true once a second point has been snapped to this node.
func (n *Node) IsRepeated() bool { return n.count > 1 }

func (n *Node) splitValue(isXLevel bool) float64 {
	if isXLevel {
		return n.coord.X
	}
	return n.coord.Y
}

func (n *Node) isRangeOverLeft(isXLevel bool, env geom.Envelope) bool {
	if isXLevel {
		return env.MinX() < n.coord.X
	}
	return env.MinY() < n.coord.Y
}

func (n *Node) isRangeOverRight(isXLevel bool, env geom.Envelope) bool {
	if isXLevel {
		return n.coord.X <= env.MaxX()
	}
	return n.coord.Y <= env.MaxY()
}

type Tree struct {
	root        *Node
	size        int
	tolerance   float64
	toleranceSq float64
}

func New(tolerance float64) *Tree {
	return &Tree{tolerance: tolerance, toleranceSq: tolerance * tolerance}
}

func (t *Tree) IsEmpty() bool { return t.root == nil }

// Size is the number of distinct nodes.
func (t *Tree) Size() int { return t.size }

func (t *Tree) Tolerance() float64 { return t.tolerance }

// Insert adds p, or returns the existing node p snaps to. When several nodes
// are within tolerance the nearest wins, with ties going to the lower
// coordinate. Callers can tell the cases apart with IsRepeated.
func (t *Tree) Insert(p geom.Coordinate, data interface{}) *Node {
	if t.root == nil {
		t.root = newNode(p, data)
		t.size = 1
		return t.root
	}
	if t.tolerance > 0 {
		if match := t.bestMatch(p); match != nil {
			match.count++
			return match
		}
	}
	return t.insertExact(p, data)
}

func (t *Tree) bestMatch(p geom.Coordinate) *Node {
	queryEnv := geom.NewEnvelope(p)
	queryEnv.ExpandBy(t.tolerance)

	var match *Node
	matchDist := 0.0
	t.Query(queryEnv, func(node *Node) {
		dist := p.Distance(node.coord)
		if dist > t.tolerance {
			return
		}
		if match == nil || dist < matchDist ||
			(dist == matchDist && node.coord.Compare(match.coord) < 0) {
			match = node
			matchDist = dist
		}
	})
	return match
}

func (t *Tree) insertExact(p geom.Coordinate, data interface{}) *Node {
	current := t.root
	leaf := t.root
	isXLevel := true
	isLessThan := true

	for current != nil {
		if p.DistanceSq(current.coord) <= t.toleranceSq {
			current.count++
			return current
		}
		if isXLevel {
			isLessThan = p.X < current.coord.X
		} else {
			isLessThan = p.Y < current.coord.Y
		}
		leaf = current
		if isLessThan {
			current = current.left
		} else {
			current = current.right
		}
		isXLevel = !isXLevel
	}

	node := newNode(p, data)
	if isLessThan {
		leaf.left = node
	} else {
		leaf.right = node
	}
	t.size++
	return node
}

// Query visits every node inside env, in tree order.
func (t *Tree) Query(env geom.Envelope, visit func(*Node)) {
	if env.IsEmpty() {
		return
	}
	var query func(node *Node, isXLevel bool)
	query = func(node *Node, isXLevel bool) {
		if node == nil {
			return
		}
		if node.isRangeOverLeft(isXLevel, env) {
			query(node.left, !isXLevel)
		}
		if env.Contains(node.coord) {
			visit(node)
		}
		if node.isRangeOverRight(isXLevel, env) {
			query(node.right, !isXLevel)
		}
	}
	query(t.root, true)
}

func (t *Tree) QueryNodes(env geom.Envelope) []*Node {
	var nodes []*Node
	t.Query(env, func(node *Node) {
		nodes = append(nodes, node)
	})
	return nodes
}

// QueryPoint finds the node at exactly p, if any.
func (t *Tree) QueryPoint(p geom.Coordinate) *Node {
	current := t.root
	isXLevel := true
	for current != nil {
		if current.coord.Equals2D(p) {
			return current
		}
		if p.X < current.coord.X && isXLevel || p.Y < current.coord.Y && !isXLevel {
			current = current.left
		} else {
			current = current.right
		}
		isXLevel = !isXLevel
	}
	return nil
}

// Nodes returns every node in tree order.
func (t *Tree) Nodes() []*Node {
	var nodes []*Node
	var walk func(*Node)
	walk = func(node *Node) {
		if node == nil {
			return
		}
		walk(node.left)
		nodes = append(nodes, node)
		walk(node.right)
	}
	walk(t.root)
	return nodes
}

func (t *Tree) Depth() int {
	var depth func(*Node) int
	depth = func(node *Node) int {
		if node == nil {
			return 0
		}
		left, right := depth(node.left), depth(node.right)
		if left > right {
			return left + 1
		}
		return right + 1
	}
	return depth(t.root)
}

// NearestNeighbor finds the node closest to query, or nil for an empty tree.
func (t *Tree) NearestNeighbor(query geom.Coordinate) *Node {
	var best *Node
	bestDist := math.Inf(1)

	var search func(node *Node, isXLevel bool)
	search = func(node *Node, isXLevel bool) {
		if node == nil || bestDist == 0 {
			return
		}
		if dist := query.DistanceSq(node.coord); dist < bestDist {
			best = node
			bestDist = dist
		}
		split := node.splitValue(isXLevel)
		q := query.Y
		if isXLevel {
			q = query.X
		}
		near, far := node.right, node.left
		if q < split {
			near, far = node.left, node.right
		}
		search(near, !isXLevel)
		// The far side can only help if the splitting line is closer than the
		// best match so far
		if diff := q - split; diff*diff < bestDist {
			search(far, !isXLevel)
		}
	}
	search(t.root, true)
	return best
}

// Coordinates of the given nodes, repeated by count if includeRepeated.
func Coordinates(nodes []*Node, includeRepeated bool) []geom.Coordinate {
	var coords []geom.Coordinate
	for _, node := range nodes {
		count := 1
		if includeRepeated {
			count = node.count
		}
		for i := 0; i < count; i++ {
			coords = append(coords, node.coord)
		}
	}
	return coords
}
