package debounce

import (
	"testing"
	"time"

	"github.com/cinefind/cinefind/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

const wait = 10 * time.Millisecond

func fire(d *Debouncer, value string) SettledMsg {
	return d.Update(value)().(SettledMsg)
}

func TestDebouncer(t *testing.T) {
	Convey("Given a debouncer", t, func() {
		d := New(wait)

		Convey("A single edit settles after the quiet period", func() {
			start := time.Now()
			msg := fire(d, "batman")
			So(time.Since(start), ShouldBeGreaterThanOrEqualTo, wait)
			So(d.Pending(), ShouldBeTrue)

			value, ok := d.Settle(msg)
			So(ok, ShouldBeTrue)
			So(value, ShouldEqual, "batman")
			So(d.Pending(), ShouldBeFalse)
			So(d.Value(), ShouldEqual, "batman")
		})

		Convey("Rapid edits emit exactly once with the final value", func() {
			cmds := []func() SettledMsg{}
			for _, v := range []string{"b", "ba", "bat"} {
				cmd := d.Update(v)
				cmds = append(cmds, func() SettledMsg { return cmd().(SettledMsg) })
			}

			var emitted []string
			for _, c := range cmds {
				if value, ok := d.Settle(c()); ok {
					emitted = append(emitted, value)
				}
			}
			So(emitted, ShouldResemble, []string{"bat"})
		})

		Convey("Settling to the same value twice emits once", func() {
			_, ok := d.Settle(fire(d, "dune"))
			So(ok, ShouldBeTrue)

			_, ok = d.Settle(fire(d, "dune"))
			So(ok, ShouldBeFalse)
		})

		Convey("Clearing the input settles to the empty string", func() {
			_, _ = d.Settle(fire(d, "dune"))

			value, ok := d.Settle(fire(d, ""))
			So(ok, ShouldBeTrue)
			So(value, ShouldEqual, "")
		})

		Convey("A primed value does not emit again", func() {
			d.Prime("")
			_, ok := d.Settle(fire(d, ""))
			So(ok, ShouldBeFalse)
		})

		Convey("Messages from another debouncer's sequence are ignored", func() {
			_, ok := d.Settle(SettledMsg{Seq: 42, Value: "x"})
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Non-positive waits fall back to the default", t, func() {
		So(New(0).Wait(), ShouldEqual, DefaultWait)
	})

	Convey("NewFromConfig reads search.debounce_ms", t, func() {
		viper.Set(key.SearchDebounceMillis, 250)
		Reset(func() { viper.Set(key.SearchDebounceMillis, 500) })

		So(NewFromConfig().Wait(), ShouldEqual, 250*time.Millisecond)
	})
}
