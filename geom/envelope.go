package geom

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Envelope is an axis aligned bounding box. The zero value is empty, and
// expanding an empty envelope by a point yields the degenerate box at that
// point.
type Envelope struct {
	rect     r2.Rect
	nonEmpty bool
}

func NewEnvelope(coords ...Coordinate) Envelope {
	var env Envelope
	for _, c := range coords {
		env.ExpandToInclude(c)
	}
	return env
}

func EnvelopeFromBounds(minX, minY, maxX, maxY float64) Envelope {
	return NewEnvelope(Coordinate{X: minX, Y: minY}, Coordinate{X: maxX, Y: maxY})
}

func (e Envelope) IsEmpty() bool {
	return !e.nonEmpty
}

func (e *Envelope) ExpandToInclude(c Coordinate) {
	if !e.nonEmpty {
		e.rect = r2.RectFromPoints(c.Point())
		e.nonEmpty = true
		return
	}
	e.rect = e.rect.AddPoint(c.Point())
}

func (e *Envelope) ExpandToIncludeEnvelope(other Envelope) {
	if other.IsEmpty() {
		return
	}
	if e.IsEmpty() {
		*e = other
		return
	}
	e.rect = e.rect.Union(other.rect)
}

// ExpandBy grows the envelope by delta on every side.
func (e *Envelope) ExpandBy(delta float64) {
	if e.IsEmpty() {
		return
	}
	e.rect = e.rect.ExpandedByMargin(delta)
}

func (e Envelope) MinX() float64 { return e.rect.X.Lo }
func (e Envelope) MaxX() float64 { return e.rect.X.Hi }
func (e Envelope) MinY() float64 { return e.rect.Y.Lo }
func (e Envelope) MaxY() float64 { return e.rect.Y.Hi }

func (e Envelope) Width() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.rect.X.Length()
}

func (e Envelope) Height() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.rect.Y.Length()
}

func (e Envelope) Center() Coordinate {
	return FromPoint(e.rect.Center())
}

func (e Envelope) Contains(c Coordinate) bool {
	return e.nonEmpty && e.rect.ContainsPoint(c.Point())
}

func (e Envelope) Intersects(other Envelope) bool {
	return e.nonEmpty && other.nonEmpty && e.rect.Intersects(other.rect)
}

// Corners returns the four corners counterclockwise from (minX, minY).
func (e Envelope) Corners() [4]Coordinate {
	return [4]Coordinate{
		{X: e.MinX(), Y: e.MinY()},
		{X: e.MaxX(), Y: e.MinY()},
		{X: e.MaxX(), Y: e.MaxY()},
		{X: e.MinX(), Y: e.MaxY()},
	}
}

func (e Envelope) String() string {
	if e.IsEmpty() {
		return "Env[empty]"
	}
	return fmt.Sprintf("Env[%g : %g, %g : %g]", e.MinX(), e.MaxX(), e.MinY(), e.MaxY())
}
