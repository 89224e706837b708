package input

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/geom"
	"github.com/pkg/errors"
)

// ReadSVG reads circles as sites, and lines, polylines and polygons as
// constraints. Polygons are closed. A constraint's data is its element id, if
// it has one. Transforms are not applied.
func ReadSVG(r io.Reader) (*Input, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing SVG")
	}

	in := &Input{}
	for _, el := range rootEl.FindAll("circle") {
		c, err := attributeCoordinate(el, "cx", "cy")
		if err != nil {
			return nil, err
		}
		in.Sites = append(in.Sites, c)
	}

	for _, el := range rootEl.FindAll("line") {
		p0, err := attributeCoordinate(el, "x1", "y1")
		if err != nil {
			return nil, err
		}
		p1, err := attributeCoordinate(el, "x2", "y2")
		if err != nil {
			return nil, err
		}
		in.addElementConstraint(el, []geom.Coordinate{p0, p1})
	}

	for _, name := range []string{"polyline", "polygon"} {
		for _, el := range rootEl.FindAll(name) {
			coords, err := parsePoints(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "%s points", name)
			}
			if name == "polygon" && len(coords) > 0 {
				coords = append(coords, coords[0])
			}
			in.addElementConstraint(el, coords)
		}
	}
	return in, nil
}

func (in *Input) addElementConstraint(el *svgparser.Element, coords []geom.Coordinate) {
	var data interface{}
	if id, ok := el.Attributes["id"]; ok {
		data = id
	}
	in.Constraints = append(in.Constraints, advanced.Constraint{Coords: coords, Data: data})
}

func attributeCoordinate(el *svgparser.Element, xName, yName string) (geom.Coordinate, error) {
	x, err := attributeFloat(el, xName)
	if err != nil {
		return geom.Coordinate{}, err
	}
	y, err := attributeFloat(el, yName)
	if err != nil {
		return geom.Coordinate{}, err
	}
	return geom.Coordinate{X: x, Y: y}, nil
}

// Missing attributes default to zero, as in SVG.
func attributeFloat(el *svgparser.Element, name string) (float64, error) {
	s, ok := el.Attributes[name]
	if !ok {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s attribute %s", el.Name, name)
	}
	return v, nil
}

// Points are separated by whitespace or commas, in x y pairs.
func parsePoints(pointString string) ([]geom.Coordinate, error) {
	fields := strings.Fields(strings.ReplaceAll(pointString, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of ordinates in %q", pointString)
	}
	coords := make([]geom.Coordinate, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid ordinate %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid ordinate %q", fields[i+1])
		}
		coords = append(coords, geom.Coordinate{X: x, Y: y})
	}
	return coords, nil
}
