// Package canvas defines the drawing surface the render loop targets and a
// software implementation of it.
package canvas

import (
	"image/color"

	"wirecube/internal/geom"
)

// Canvas is the set of primitives a host provides. Calls are made from the
// render loop's goroutine only.
type Canvas interface {
	// SetDrawColor sets the colour used by Clear, FillRect and Line.
	SetDrawColor(c color.RGBA)
	// Clear fills the whole frame with the draw colour.
	Clear()
	FillRect(x, y, w, h float64)
	Line(x1, y1, x2, y2 float64)
	// Present shows the completed frame.
	Present()
}

// DrawPoint fills a size×size square centred on p.
func DrawPoint(c Canvas, p geom.ScreenPoint, size float64) {
	c.FillRect(p.X-size/2, p.Y-size/2, size, size)
}

func DrawLine(c Canvas, a, b geom.ScreenPoint) {
	c.Line(a.X, a.Y, b.X, b.Y)
}
