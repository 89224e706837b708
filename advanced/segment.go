package advanced

import (
	"fmt"

	"github.com/osuushi/delaunay/geom"
)

// Segment is a constraint segment, with arbitrary data which is carried over
// to the pieces it is split into.
type Segment struct {
	ls   geom.LineSegment
	data interface{}
}

func NewSegment(start, end geom.Coordinate, data interface{}) *Segment {
	return &Segment{ls: geom.LineSegment{P0: start, P1: end}, data: data}
}

func (s *Segment) Start() geom.Coordinate { return s.ls.P0 }
func (s *Segment) End() geom.Coordinate   { return s.ls.P1 }

func (s *Segment) LineSegment() geom.LineSegment {
	return s.ls
}

func (s *Segment) Data() interface{} {
	return s.data
}

func (s *Segment) SetData(data interface{}) {
	s.data = data
}

func (s *Segment) Length() float64 {
	return s.ls.Length()
}

func (s *Segment) Midpoint() geom.Coordinate {
	return s.ls.Midpoint()
}

// EqualsTopo is true if both segments have the same endpoints, in either
// order.
func (s *Segment) EqualsTopo(other *Segment) bool {
	return s.ls.EqualsTopo(other.ls)
}

func (s *Segment) Intersection(other *Segment) (geom.Coordinate, bool) {
	return s.ls.Intersection(other.ls)
}

func (s *Segment) String() string {
	return fmt.Sprintf("%v", s.ls)
}

// SplitSegment picks split points along a segment while keeping both pieces
// at least a minimum length.
type SplitSegment struct {
	seg        geom.LineSegment
	segLen     float64
	minimumLen float64
	splitPt    geom.Coordinate
}

func NewSplitSegment(seg geom.LineSegment) *SplitSegment {
	return &SplitSegment{seg: seg, segLen: seg.Length()}
}

func (s *SplitSegment) SetMinimumLength(minLen float64) {
	s.minimumLen = minLen
}

func (s *SplitSegment) SplitPoint() geom.Coordinate {
	return s.splitPt
}

// SplitAt splits at pt, unless that would leave a piece shorter than the
// minimum length, in which case the split moves inward to the minimum length.
func (s *SplitSegment) SplitAt(pt geom.Coordinate) {
	minFrac := geom.Clamp(s.minimumLen/s.segLen, 0, 0.5)
	if pt.Distance(s.seg.P0) < s.minimumLen {
		s.splitPt = s.seg.PointAlong(minFrac)
		return
	}
	if pt.Distance(s.seg.P1) < s.minimumLen {
		s.splitPt = s.seg.PointAlongReverse(minFrac)
		return
	}
	s.splitPt = pt
}

// SplitAtLength splits length along the segment, measured from endPt, which
// must be one of the segment's endpoints.
func (s *SplitSegment) SplitAtLength(length float64, endPt geom.Coordinate) {
	frac := geom.Clamp(length, s.minimumLen, s.segLen) / s.segLen
	if endPt.Equals2D(s.seg.P0) {
		s.splitPt = s.seg.PointAlong(frac)
	} else {
		s.splitPt = s.seg.PointAlongReverse(frac)
	}
}
