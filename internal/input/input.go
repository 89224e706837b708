// Package input reads sites and constraints for the command line tool.
package input

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/geom"
	"github.com/pkg/errors"
)

// Input is a set of sites, and the constraint polylines for a conforming
// triangulation.
type Input struct {
	Sites       []geom.Coordinate
	Constraints []advanced.Constraint
}

// AllCoordinates returns the sites followed by every constraint vertex.
func (in *Input) AllCoordinates() []geom.Coordinate {
	coords := append([]geom.Coordinate(nil), in.Sites...)
	for _, c := range in.Constraints {
		coords = append(coords, c.Coords...)
	}
	return coords
}

// ConstraintSegments returns the segments of every constraint polyline.
func (in *Input) ConstraintSegments() []geom.LineSegment {
	var segments []geom.LineSegment
	for _, c := range in.Constraints {
		for i := 1; i < len(c.Coords); i++ {
			segments = append(segments, geom.LineSegment{P0: c.Coords[i-1], P1: c.Coords[i]})
		}
	}
	return segments
}

// ReadFile picks a reader by extension: GeoJSON for .geojson and .json, SVG
// for .svg, and text lines for anything else. A path of "-" reads text from
// stdin.
func ReadFile(path string) (*Input, error) {
	if path == "-" {
		return ReadText(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()

	var in *Input
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		in, err = ReadGeoJSON(f)
	case ".svg":
		in, err = ReadSVG(f)
	default:
		in, err = ReadText(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return in, nil
}
