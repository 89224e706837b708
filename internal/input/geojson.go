package input

import (
	"encoding/json"
	"io"

	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/geom"
	"github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// ReadGeoJSON reads a FeatureCollection, a single Feature or a bare geometry.
// Points are sites. Lines and polygon rings are constraints, carrying the
// properties of their feature.
func ReadGeoJSON(r io.Reader) (*Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading GeoJSON")
	}

	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, errors.Wrap(err, "parsing GeoJSON")
	}

	in := &Input{}
	switch header.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, errors.Wrap(err, "parsing feature collection")
		}
		for _, f := range fc.Features {
			if err := in.addGeometry(f.Geometry, f.Properties); err != nil {
				return nil, err
			}
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, errors.Wrap(err, "parsing feature")
		}
		if err := in.addGeometry(f.Geometry, f.Properties); err != nil {
			return nil, err
		}
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, errors.Wrap(err, "parsing geometry")
		}
		if err := in.addGeometry(g, nil); err != nil {
			return nil, err
		}
	}
	return in, nil
}

func (in *Input) addGeometry(g *geojson.Geometry, properties map[string]interface{}) error {
	if g == nil {
		return nil
	}
	addLine := func(line [][]float64) error {
		coords, err := positions(line)
		if err != nil {
			return err
		}
		in.Constraints = append(in.Constraints, advanced.Constraint{Coords: coords, Data: properties})
		return nil
	}

	switch g.Type {
	case geojson.GeometryPoint:
		c, err := position(g.Point)
		if err != nil {
			return err
		}
		in.Sites = append(in.Sites, c)
	case geojson.GeometryMultiPoint:
		coords, err := positions(g.MultiPoint)
		if err != nil {
			return err
		}
		in.Sites = append(in.Sites, coords...)
	case geojson.GeometryLineString:
		return addLine(g.LineString)
	case geojson.GeometryMultiLineString:
		for _, line := range g.MultiLineString {
			if err := addLine(line); err != nil {
				return err
			}
		}
	case geojson.GeometryPolygon:
		for _, ring := range g.Polygon {
			if err := addLine(ring); err != nil {
				return err
			}
		}
	case geojson.GeometryMultiPolygon:
		for _, polygon := range g.MultiPolygon {
			for _, ring := range polygon {
				if err := addLine(ring); err != nil {
					return err
				}
			}
		}
	case geojson.GeometryCollection:
		for _, child := range g.Geometries {
			if err := in.addGeometry(child, properties); err != nil {
				return err
			}
		}
	default:
		return errors.Errorf("unsupported geometry type %q", g.Type)
	}
	return nil
}

func position(p []float64) (geom.Coordinate, error) {
	switch len(p) {
	case 2:
		return geom.Coordinate{X: p[0], Y: p[1]}, nil
	case 3:
		return geom.Coordinate{X: p[0], Y: p[1], Z: p[2]}, nil
	}
	return geom.Coordinate{}, errors.Errorf("invalid position %v", p)
}

func positions(ps [][]float64) ([]geom.Coordinate, error) {
	coords := make([]geom.Coordinate, len(ps))
	for i, p := range ps {
		c, err := position(p)
		if err != nil {
			return nil, err
		}
		coords[i] = c
	}
	return coords, nil
}
