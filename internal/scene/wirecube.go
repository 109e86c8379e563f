package scene

import (
	"image/color"

	"wirecube/internal/canvas"
	"wirecube/internal/config"
	"wirecube/internal/geom"
	"wirecube/internal/model"
)

// WireCube spins the reference cube about Y and draws every face edge.
type WireCube struct {
	cube  model.Cube
	edges []model.Edge

	vp    geom.Viewport
	dz    float64
	omega float64
	fg    color.RGBA

	angle float64
}

func NewWireCube(cfg config.Config) *WireCube {
	c := model.NewCube(cfg.HalfExtent)
	return &WireCube{
		cube:  c,
		edges: c.Edges(),
		vp:    cfg.Viewport(),
		dz:    cfg.ZOffset,
		omega: cfg.AngularVelocity,
		fg:    cfg.Foreground,
	}
}

// Angle returns the current rotation in radians. It grows without bound.
func (s *WireCube) Angle() float64 {
	return s.angle
}

func (s *WireCube) Update(dt float64) {
	s.angle += s.omega * dt
}

// Draw issues one line per face edge, shared edges included.
func (s *WireCube) Draw(c canvas.Canvas) {
	var pts [8]geom.ScreenPoint
	for i, v := range s.cube.Vertices {
		pts[i] = screen(s.vp, v, s.angle, s.dz)
	}

	c.SetDrawColor(s.fg)
	for _, e := range s.edges {
		canvas.DrawLine(c, pts[e[0]], pts[e[1]])
	}
}
