package render

import (
	"image"
	"io"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay/internal/dbg"
	"github.com/pkg/errors"
)

// DrawPNG draws the scene at the given scale. A scale of zero fits the scene
// into about 800 pixels.
func DrawPNG(scene Scene, scale float64) image.Image {
	env := scene.Envelope()
	if scale == 0 {
		scale = FitScale(env, 800)
	}
	vp := newViewport(env, scale)

	c := gg.NewContext(vp.width, vp.height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(vp.width), float64(vp.height))
	c.Fill()

	// Cells first so the triangulation stays visible on top
	for _, cell := range scene.Cells {
		for _, p := range cell.Ring {
			c.LineTo(vp.point(p))
		}
		c.ClosePath()
		c.SetRGBA(1, 1, 0, 0.3)
		c.FillPreserve()
		c.SetRGB(1, 1, 0)
		c.SetLineWidth(1)
		c.Stroke()
	}

	for _, tri := range scene.triangles() {
		for _, v := range tri {
			c.LineTo(vp.point(v.Coordinate))
		}
		c.ClosePath()
		c.SetRGBA(0.3, 0.2, 1, 0.5)
		c.Fill()
	}

	c.SetLineWidth(1)
	c.SetRGB(0, 1, 0)
	for _, seg := range scene.edges() {
		x0, y0 := vp.point(seg.P0)
		x1, y1 := vp.point(seg.P1)
		c.DrawLine(x0, y0, x1, y1)
		c.Stroke()
	}

	c.SetLineWidth(3)
	c.SetRGB(1, 0, 0)
	for _, seg := range scene.Constraints {
		x0, y0 := vp.point(seg.P0)
		x1, y1 := vp.point(seg.P1)
		c.DrawLine(x0, y0, x1, y1)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, v := range scene.vertices() {
		x, y := vp.point(v.Coordinate)
		c.DrawCircle(x, y, 2)
		c.Fill()
		if scene.Labels {
			c.DrawStringAnchored(dbg.Name(v), x, y-4, 0.5, 0)
		}
	}
	return c.Image()
}

// SavePNG draws the scene into a PNG file.
func SavePNG(path string, scene Scene, scale float64) error {
	if err := gg.SavePNG(path, DrawPNG(scene, scale)); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// Show prints a PNG file to the terminal (iTerm only).
func Show(path string, w io.Writer) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrap(err, "nothing to show")
	}
	imgcat.CatFile(path, w)
	return nil
}
