package scene

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"wirecube/internal/canvas/canvastest"
	"wirecube/internal/config"
	"wirecube/internal/geom"
	"wirecube/internal/model"
)

func TestWireCube(t *testing.T) {
	cfg := config.Default()

	Convey("Given the reference wire cube", t, func() {
		s := NewWireCube(cfg)
		rec := &canvastest.Recorder{}

		Convey("each update turns it by ω/FPS", func() {
			s.Update(cfg.Timestep())
			So(s.Angle(), ShouldAlmostEqual, math.Pi/2/60, 1e-12)
			for range 59 {
				s.Update(cfg.Timestep())
			}
			So(s.Angle(), ShouldAlmostEqual, math.Pi/2, 1e-9)
		})

		Convey("at angle zero the first corner lands on (480, 220)", func() {
			s.Draw(rec)
			lines := rec.Filter(canvastest.OpLine)
			So(lines[0].Args[0], ShouldAlmostEqual, 480, 1e-9)
			So(lines[0].Args[1], ShouldAlmostEqual, 220, 1e-9)
		})

		Convey("a frame strokes 16 foreground lines over the 12 cube edges", func() {
			for range 10 {
				s.Update(cfg.Timestep())
			}
			s.Draw(rec)

			lines := rec.Filter(canvastest.OpLine)
			So(len(lines), ShouldEqual, 16)

			vp := cfg.Viewport()
			cube := model.NewCube(cfg.HalfExtent)
			var want [8]geom.ScreenPoint
			for i, v := range cube.Vertices {
				want[i] = vp.ToScreen(geom.Project(geom.TranslateZ(geom.RotateY(v, s.Angle()), cfg.ZOffset)))
			}
			vertexAt := func(x, y float64) int {
				for i, p := range want {
					if math.Abs(p.X-x) < 1e-9 && math.Abs(p.Y-y) < 1e-9 {
						return i
					}
				}
				return -1
			}

			drawn := map[model.Edge]int{}
			for _, l := range lines {
				So(l.Color, ShouldResemble, cfg.Foreground)
				a, b := vertexAt(l.Args[0], l.Args[1]), vertexAt(l.Args[2], l.Args[3])
				So(a, ShouldBeGreaterThanOrEqualTo, 0)
				So(b, ShouldBeGreaterThanOrEqualTo, 0)
				if a > b {
					a, b = b, a
				}
				drawn[model.Edge{a, b}]++
			}
			So(drawn, ShouldResemble, map[model.Edge]int{
				{0, 1}: 2, {1, 2}: 1, {2, 3}: 2, {0, 3}: 1,
				{4, 5}: 2, {5, 6}: 1, {6, 7}: 2, {4, 7}: 1,
				{1, 5}: 1, {0, 4}: 1, {3, 7}: 1, {2, 6}: 1,
			})
		})
	})
}

func TestPointScenes(t *testing.T) {
	cfg := config.Default()

	Convey("Point draws one square around the projected corner", t, func() {
		rec := &canvastest.Recorder{}
		s := NewPoint(cfg)
		s.Update(cfg.Timestep())
		s.Draw(rec)

		rects := rec.Filter(canvastest.OpFillRect)
		So(len(rects), ShouldEqual, 1)
		got := rects[0].Args
		So(got[0], ShouldAlmostEqual, 470, 1e-9)
		So(got[1], ShouldAlmostEqual, 210, 1e-9)
		So(got[2], ShouldEqual, 20)
		So(got[3], ShouldEqual, 20)
		So(rects[0].Color, ShouldResemble, cfg.Foreground)
	})

	Convey("Vertices draws all eight corners", t, func() {
		rec := &canvastest.Recorder{}
		NewVertices(cfg).Draw(rec)
		So(rec.Count(canvastest.OpFillRect), ShouldEqual, 8)
	})

	Convey("Depth draws four corners that converge as they recede", t, func() {
		s := NewDepth(cfg)
		So(s.Offset(), ShouldEqual, cfg.ZOffset)

		spread := func() float64 {
			rec := &canvastest.Recorder{}
			s.Draw(rec)
			rects := rec.Filter(canvastest.OpFillRect)
			So(len(rects), ShouldEqual, 4)
			return math.Abs(rects[0].Args[0] - rects[1].Args[0])
		}

		before := spread()
		for range 30 {
			s.Update(cfg.Timestep())
		}
		So(s.Offset(), ShouldAlmostEqual, cfg.ZOffset+0.5, 1e-9)
		So(spread(), ShouldBeLessThan, before)
	})

	Convey("Clear draws nothing", t, func() {
		rec := &canvastest.Recorder{}
		c := NewClear(cfg)
		c.Update(cfg.Timestep())
		c.Draw(rec)
		So(rec.Calls, ShouldBeEmpty)
	})
}
