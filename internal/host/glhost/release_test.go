package glhost

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestReleaser(t *testing.T) {
	Convey("Given resources acquired library, window, program, vao", t, func() {
		var order []string
		var rel releaser
		for _, name := range []string{"library", "window", "program", "vao"} {
			rel.push(func() { order = append(order, name) })
		}

		Convey("release frees them newest first", func() {
			rel.release()
			So(order, ShouldResemble, []string{"vao", "program", "window", "library"})
		})

		Convey("a second release does nothing", func() {
			rel.release()
			rel.release()
			So(len(order), ShouldEqual, 4)
		})
	})

	Convey("A failure after the window only unwinds what was acquired", t, func() {
		var order []string
		var rel releaser
		rel.push(func() { order = append(order, "library") })
		rel.push(func() { order = append(order, "window") })
		rel.release()
		So(order, ShouldResemble, []string{"window", "library"})
	})
}
