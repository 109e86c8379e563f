package canvas

import (
	"image/color"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"wirecube/internal/geom"
)

var (
	black = color.RGBA{A: 0xff}
	green = color.RGBA{R: 0x50, G: 0xff, B: 0x50, A: 0xff}
)

// shown adds the no-op Present a host would supply.
type shown struct{ *Framebuffer }

func (shown) Present() {}

func TestFramebuffer(t *testing.T) {
	Convey("Given a cleared 64x48 framebuffer", t, func() {
		fb := NewFramebuffer(64, 48)
		fb.SetDrawColor(black)
		fb.Clear()

		img := fb.Image()
		So(img.Bounds().Dx(), ShouldEqual, 64)
		So(img.Bounds().Dy(), ShouldEqual, 48)
		So(img.RGBAAt(0, 0), ShouldResemble, black)
		So(img.RGBAAt(63, 47), ShouldResemble, black)

		fb.SetDrawColor(green)

		Convey("Clear paints every pixel", func() {
			fb.Clear()
			So(img.RGBAAt(0, 0), ShouldResemble, green)
			So(img.RGBAAt(31, 20), ShouldResemble, green)
			So(img.RGBAAt(63, 47), ShouldResemble, green)
		})

		Convey("DrawPoint fills a square around the point", func() {
			DrawPoint(shown{fb}, geom.ScreenPoint{X: 20, Y: 20}, 10)
			So(img.RGBAAt(15, 15).G, ShouldBeGreaterThanOrEqualTo, 0xf0)
			So(img.RGBAAt(24, 24).G, ShouldBeGreaterThanOrEqualTo, 0xf0)
			So(img.RGBAAt(26, 20), ShouldResemble, black)
			So(img.RGBAAt(20, 13), ShouldResemble, black)
		})

		Convey("DrawLine strokes between the two points only", func() {
			DrawLine(shown{fb}, geom.ScreenPoint{X: 10, Y: 20.5}, geom.ScreenPoint{X: 30, Y: 20.5})
			So(img.RGBAAt(20, 20).G, ShouldBeGreaterThanOrEqualTo, 0xf0)
			So(img.RGBAAt(20, 20).R, ShouldBeLessThan, 0x60)
			So(img.RGBAAt(20, 23), ShouldResemble, black)
			So(img.RGBAAt(40, 20), ShouldResemble, black)
		})

		Convey("a zero length line covers one pixel", func() {
			fb.Line(5.5, 5.5, 5.5, 5.5)
			So(img.RGBAAt(5, 5).G, ShouldBeGreaterThanOrEqualTo, 0xf0)
			So(img.RGBAAt(7, 5), ShouldResemble, black)
		})

		Convey("non-finite and off-screen coordinates are tolerated", func() {
			So(func() {
				fb.Line(math.NaN(), 0, 10, 10)
				fb.Line(math.Inf(1), 0, 10, 10)
				fb.FillRect(math.NaN(), 0, 4, 4)
				fb.Line(-500, -500, 900, 700)
				fb.FillRect(100, 100, 10, 10)
			}, ShouldNotPanic)
			So(img.RGBAAt(0, 47), ShouldResemble, black)
		})

		Convey("huge finite coordinates are clipped before rasterising", func() {
			So(func() {
				fb.Line(1e9, 0, 10, 10)
				fb.Line(1e12, 0, 10, 10)
				fb.Line(-1e12, 1e12, 1e12, -1e12)
				fb.Line(1e12, 1e12, 2e12, 2e12)
			}, ShouldNotPanic)
		})

		Convey("a line running far off screen keeps its visible part", func() {
			fb.Line(10, 30.5, 1e12, 30.5)
			So(img.RGBAAt(20, 30).G, ShouldBeGreaterThanOrEqualTo, 0xf0)
			So(img.RGBAAt(63, 30).G, ShouldBeGreaterThanOrEqualTo, 0xf0)
			So(img.RGBAAt(20, 33), ShouldResemble, black)
		})

		Convey("a huge rect covers the frame", func() {
			So(func() { fb.FillRect(-1e12, -1e12, 2e12, 2e12) }, ShouldNotPanic)
			So(img.RGBAAt(0, 0).G, ShouldBeGreaterThanOrEqualTo, 0xf0)
			So(img.RGBAAt(63, 47).G, ShouldBeGreaterThanOrEqualTo, 0xf0)
		})
	})
}
