package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Framebuffer rasterises the Canvas primitives into an RGBA image. It has no
// Present; a host embeds it and shows Image() however it can.
type Framebuffer struct {
	img *image.RGBA
	ras *vector.Rasterizer
	src *image.Uniform

	// LineWidth is the stroke width of Line in pixels.
	LineWidth float64
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:       vector.NewRasterizer(width, height),
		src:       image.NewUniform(color.RGBA{A: 0xff}),
		LineWidth: 1,
	}
}

// Image returns the backing image. Rows are top to bottom.
func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}

func (f *Framebuffer) SetDrawColor(c color.RGBA) {
	f.src.C = c
}

func (f *Framebuffer) Clear() {
	draw.Draw(f.img, f.img.Bounds(), f.src, image.Point{}, draw.Src)
}

func (f *Framebuffer) FillRect(x, y, w, h float64) {
	if !finite(x, y, w, h) || w <= 0 || h <= 0 {
		return
	}
	minX, minY, maxX, maxY := f.clipBox()
	x0, y0 := math.Max(x, minX), math.Max(y, minY)
	x1, y1 := math.Min(x+w, maxX), math.Min(y+h, maxY)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	x, y, w, h = x0, y0, x1-x0, y1-y0
	f.fill(
		[2]float64{x, y},
		[2]float64{x + w, y},
		[2]float64{x + w, y + h},
		[2]float64{x, y + h},
	)
}

// Line strokes the segment with square caps, so a zero length line still
// covers one pixel.
func (f *Framebuffer) Line(x1, y1, x2, y2 float64) {
	if !finite(x1, y1, x2, y2) {
		return
	}
	minX, minY, maxX, maxY := f.clipBox()
	x1, y1, x2, y2, ok := clipSegment(x1, y1, x2, y2, minX, minY, maxX, maxY)
	if !ok {
		return
	}
	half := f.LineWidth / 2
	dx, dy := x2-x1, y2-y1
	n := math.Hypot(dx, dy)
	if n == 0 {
		f.FillRect(x1-half, y1-half, f.LineWidth, f.LineWidth)
		return
	}
	// unit tangent scaled to half the width, and its normal
	tx, ty := dx/n*half, dy/n*half
	nx, ny := -ty, tx
	f.fill(
		[2]float64{x1 - tx + nx, y1 - ty + ny},
		[2]float64{x2 + tx + nx, y2 + ty + ny},
		[2]float64{x2 + tx - nx, y2 + ty - ny},
		[2]float64{x1 - tx - nx, y1 - ty - ny},
	)
}

func (f *Framebuffer) fill(pts ...[2]float64) {
	b := f.img.Bounds()
	minX, minY, maxX, maxY := pts[0][0], pts[0][1], pts[0][0], pts[0][1]
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	if maxX <= 0 || maxY <= 0 || minX >= float64(b.Dx()) || minY >= float64(b.Dy()) {
		return
	}
	f.ras.Reset(b.Dx(), b.Dy())
	f.ras.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		f.ras.LineTo(float32(p[0]), float32(p[1]))
	}
	f.ras.ClosePath()
	f.ras.Draw(f.img, b, f.src, image.Point{})
}

// clipBox is the image bounds grown by a margin wider than any stroke.
// Geometry is cut to it before the float32 conversion; vector.Rasterizer
// cannot handle coordinates far outside its size.
func (f *Framebuffer) clipBox() (minX, minY, maxX, maxY float64) {
	m := f.LineWidth + 2
	b := f.img.Bounds()
	return -m, -m, float64(b.Dx()) + m, float64(b.Dy()) + m
}

// clipSegment cuts the segment to the box (Liang-Barsky). ok is false when
// nothing of it lies inside.
func clipSegment(x1, y1, x2, y2, minX, minY, maxX, maxY float64) (cx1, cy1, cx2, cy2 float64, ok bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := x2-x1, y2-y1
	for _, e := range [4][2]float64{
		{-dx, x1 - minX},
		{dx, maxX - x1},
		{-dy, y1 - minY},
		{dy, maxY - y1},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
