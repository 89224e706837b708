package advanced

import (
	"strings"

	"github.com/osuushi/delaunay/geom"
	"github.com/pkg/errors"
)

// SplitPointFinder chooses where to split a constraint segment which has a
// point encroaching on its diametral circle.
type SplitPointFinder interface {
	FindSplitPoint(seg *Segment, encroachPt geom.Coordinate) geom.Coordinate
}

type SplitPointFinderFunc func(seg *Segment, encroachPt geom.Coordinate) geom.Coordinate

func (f SplitPointFinderFunc) FindSplitPoint(seg *Segment, encroachPt geom.Coordinate) geom.Coordinate {
	return f(seg, encroachPt)
}

// MidpointSplitPointFinder always splits in the middle. Near narrow angles
// this can split the same region over and over.
type MidpointSplitPointFinder struct{}

func (MidpointSplitPointFinder) FindSplitPoint(seg *Segment, encroachPt geom.Coordinate) geom.Coordinate {
	return seg.Midpoint()
}

// NonEncroachingSplitPointFinder splits at the projection of the encroaching
// point, moved inward if needed so that the new pieces' diametral circles
// stay clear of that point.
type NonEncroachingSplitPointFinder struct{}

// Keeps the new split point from immediately re-encroaching
const nonEncroachFactor = 0.8

func (NonEncroachingSplitPointFinder) FindSplitPoint(seg *Segment, encroachPt geom.Coordinate) geom.Coordinate {
	lineSeg := seg.LineSegment()
	midPtLen := lineSeg.Length() / 2
	splitSeg := NewSplitSegment(lineSeg)

	projPt := ProjectedSplitPoint(seg, encroachPt)
	nonEncroachDiam := projPt.Distance(encroachPt) * 2 * nonEncroachFactor
	splitSeg.SetMinimumLength(geom.Clamp(nonEncroachDiam, 0, midPtLen))
	splitSeg.SplitAt(projPt)
	return splitSeg.SplitPoint()
}

// ProjectedSplitPoint is the projection of encroachPt onto the line through
// seg.
func ProjectedSplitPoint(seg *Segment, encroachPt geom.Coordinate) geom.Coordinate {
	return seg.LineSegment().Project(encroachPt)
}

// SplitPointFinderByName maps the names used in configuration files to
// strategies.
func SplitPointFinderByName(name string) (SplitPointFinder, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "", "nonencroaching":
		return NonEncroachingSplitPointFinder{}, nil
	case "midpoint":
		return MidpointSplitPointFinder{}, nil
	}
	return nil, errors.Errorf("unknown split strategy %q", name)
}
