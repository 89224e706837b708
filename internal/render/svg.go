package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/osuushi/delaunay/internal/dbg"
)

// WriteSVG draws the scene as an SVG document. A scale of zero fits the scene
// into about 800 units.
func WriteSVG(w io.Writer, scene Scene, scale float64) {
	env := scene.Envelope()
	if scale == 0 {
		scale = FitScale(env, 800)
	}
	vp := newViewport(env, scale)

	s := svg.New(w)
	s.Start(float64(vp.width), float64(vp.height))
	s.Rect(0, 0, float64(vp.width), float64(vp.height), "fill:black")

	s.Gstyle("fill:yellow;fill-opacity:0.3;stroke:yellow;stroke-width:1")
	for _, cell := range scene.Cells {
		xs := make([]float64, len(cell.Ring))
		ys := make([]float64, len(cell.Ring))
		for i, p := range cell.Ring {
			xs[i], ys[i] = vp.point(p)
		}
		s.Polygon(xs, ys)
	}
	s.Gend()

	s.Gstyle("fill:rgb(77,51,255);fill-opacity:0.5;stroke:none")
	for _, tri := range scene.triangles() {
		xs := make([]float64, 3)
		ys := make([]float64, 3)
		for i, v := range tri {
			xs[i], ys[i] = vp.point(v.Coordinate)
		}
		s.Polygon(xs, ys)
	}
	s.Gend()

	s.Gstyle("stroke:lime;stroke-width:1")
	for _, seg := range scene.edges() {
		x0, y0 := vp.point(seg.P0)
		x1, y1 := vp.point(seg.P1)
		s.Line(x0, y0, x1, y1)
	}
	s.Gend()

	s.Gstyle("stroke:red;stroke-width:3")
	for _, seg := range scene.Constraints {
		x0, y0 := vp.point(seg.P0)
		x1, y1 := vp.point(seg.P1)
		s.Line(x0, y0, x1, y1)
	}
	s.Gend()

	for _, v := range scene.vertices() {
		x, y := vp.point(v.Coordinate)
		s.Circle(x, y, 2, "fill:white")
		if scene.Labels {
			s.Text(x, y-4, dbg.Name(v), fmt.Sprintf("fill:white;font-size:%dpx;text-anchor:middle", 10))
		}
	}
	s.End()
}
