package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notifier", t, func() {
		var m Model

		Convey("Nothing is shown initially", func() {
			So(m.View("body"), ShouldEqual, "body")
		})

		Convey("A notification is shown until it expires", func() {
			cmd := m.Update(Warn("report failed")())
			So(cmd, ShouldNotBeNil)
			So(m.Text(), ShouldEqual, "report failed")
			So(m.View("a\nb"), ShouldContainSubstring, "report failed")

			m.Update(clearMsg{id: 1})
			So(m.Text(), ShouldBeEmpty)
		})

		Convey("An older timer does not clear a newer notification", func() {
			m.Update(Notify("first")())
			m.Update(Notify("second")())
			m.Update(clearMsg{id: 1})
			So(m.Text(), ShouldEqual, "second")
		})
	})
}
