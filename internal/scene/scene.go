// Package scene contains the demos, from a plain clear up to the rotating
// wireframe cube. Each one is a frame.Scene.
package scene

import (
	"image/color"

	"wirecube/internal/canvas"
	"wirecube/internal/config"
	"wirecube/internal/geom"
	"wirecube/internal/model"
)

// screen runs p through the fixed pipeline: rotate about Y, push away along
// Z, perspective divide, map to pixels.
func screen(vp geom.Viewport, p geom.Point3, angle, dz float64) geom.ScreenPoint {
	return vp.ToScreen(geom.Project(geom.TranslateZ(geom.RotateY(p, angle), dz)))
}

// Clear draws nothing; the loop's clear is the whole picture.
type Clear struct{}

func NewClear(config.Config) Clear { return Clear{} }

func (Clear) Update(float64) {}
func (Clear) Draw(canvas.Canvas) {}

// points draws a fixed set of model points as squares.
type points struct {
	pts  []geom.Point3
	vp   geom.Viewport
	dz   float64
	size float64
	fg   color.RGBA
}

func (s *points) Update(float64) {}

func (s *points) Draw(c canvas.Canvas) {
	c.SetDrawColor(s.fg)
	for _, p := range s.pts {
		canvas.DrawPoint(c, screen(s.vp, p, 0, s.dz), s.size)
	}
}

func newPoints(cfg config.Config, pts []geom.Point3) *points {
	return &points{
		pts:  pts,
		vp:   cfg.Viewport(),
		dz:   cfg.ZOffset,
		size: cfg.PointSize,
		fg:   cfg.Foreground,
	}
}

// Point shows a single cube corner.
type Point struct{ *points }

func NewPoint(cfg config.Config) Point {
	c := model.NewCube(cfg.HalfExtent)
	return Point{newPoints(cfg, c.Vertices[:1])}
}

// Vertices shows all eight cube corners, unrotated.
type Vertices struct{ *points }

func NewVertices(cfg config.Config) Vertices {
	c := model.NewCube(cfg.HalfExtent)
	return Vertices{newPoints(cfg, c.Vertices[:])}
}

// Depth shows the four corners of one cube face moving away from the eye.
type Depth struct {
	*points
	speed float64 // units/s along +Z
}

func NewDepth(cfg config.Config) *Depth {
	c := model.NewCube(cfg.HalfExtent)
	return &Depth{points: newPoints(cfg, c.Vertices[:4]), speed: 1}
}

func (s *Depth) Update(dt float64) {
	s.dz += s.speed * dt
}

// Offset returns the current depth offset.
func (s *Depth) Offset() float64 {
	return s.dz
}
