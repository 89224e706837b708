// Package output writes triangulation results as GeoJSON.
package output

import (
	"io"

	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/quadedge"
	"github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

func position(c geom.Coordinate) []float64 {
	if c.Z != 0 {
		return []float64{c.X, c.Y, c.Z}
	}
	return []float64{c.X, c.Y}
}

func ring(coords []geom.Coordinate) [][]float64 {
	positions := make([][]float64, 0, len(coords)+1)
	for _, c := range coords {
		positions = append(positions, position(c))
	}
	// GeoJSON rings repeat their first position
	if len(coords) > 0 {
		positions = append(positions, position(coords[0]))
	}
	return positions
}

// Properties describing a vertex. Constraint vertices say whether they lie on
// a constraint, and which.
func vertexProperties(v *quadedge.Vertex, cdt *advanced.ConformingDelaunayTriangulator) map[string]interface{} {
	props := map[string]interface{}{}
	if v.Data != nil {
		props["data"] = v.Data
	}
	if cdt != nil {
		if cv, ok := cdt.ConstraintVertexOf(v); ok {
			props["onConstraint"] = cv.OnConstraint
			if cv.Constraint != nil {
				props["constraint"] = cv.Constraint
			}
		}
	}
	return props
}

// Triangulation collects the features of a triangulation: one LineString
// per edge, one Polygon per triangle and, when constraint segments are given,
// one LineString per segment piece.
func Triangulation(subdiv *quadedge.Subdivision, cdt *advanced.ConformingDelaunayTriangulator) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, e := range subdiv.PrimaryEdges(false) {
		f := geojson.NewLineStringFeature([][]float64{position(e.Orig().Coordinate), position(e.Dest().Coordinate)})
		f.SetProperty("kind", "edge")
		fc.AddFeature(f)
	}

	for i, tri := range subdiv.Triangles() {
		coords := tri.Coordinates()
		f := geojson.NewPolygonFeature([][][]float64{ring(coords[:])})
		f.SetProperty("kind", "triangle")
		f.SetProperty("index", i)
		vertices := make([]map[string]interface{}, len(tri))
		for j, v := range tri {
			vertices[j] = vertexProperties(v, cdt)
		}
		f.SetProperty("vertices", vertices)
		fc.AddFeature(f)
	}

	if cdt != nil {
		for _, seg := range cdt.ConstraintSegments() {
			f := geojson.NewLineStringFeature([][]float64{position(seg.Start()), position(seg.End())})
			f.SetProperty("kind", "constraint")
			if seg.Data() != nil {
				f.SetProperty("constraint", seg.Data())
			}
			fc.AddFeature(f)
		}
	}
	return fc
}

// Voronoi collects one Polygon per cell, with the site in its properties.
func Voronoi(cells []quadedge.VoronoiCell) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, cell := range cells {
		f := geojson.NewPolygonFeature([][][]float64{ring(cell.Ring)})
		f.SetProperty("kind", "cell")
		f.SetProperty("site", position(cell.Site.Coordinate))
		if cell.Site.Data != nil {
			f.SetProperty("data", cell.Site.Data)
		}
		fc.AddFeature(f)
	}
	return fc
}

// Write encodes a feature collection.
func Write(w io.Writer, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encoding GeoJSON")
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "writing GeoJSON")
	}
	return nil
}
