package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/cinefind/cinefind/analytics"
	"github.com/cinefind/cinefind/tmdb"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

type closeRecorder struct {
	analytics.Noop
	closed bool
}

func (r *closeRecorder) Close() error {
	r.closed = true
	return nil
}

func TestClosing(t *testing.T) {
	Convey("Given an open tracker", t, func() {
		tracker := &closeRecorder{}

		Convey("It is closed before a failure is returned", func() {
			var closedDuringRun bool
			err := closing(tracker, func() error {
				closedDuringRun = tracker.closed
				return errors.New("terminal gone")
			})

			So(err, ShouldBeError, "terminal gone")
			So(closedDuringRun, ShouldBeFalse)
			So(tracker.closed, ShouldBeTrue)
		})

		Convey("It is closed after a clean run", func() {
			So(closing(tracker, func() error { return nil }), ShouldBeNil)
			So(tracker.closed, ShouldBeTrue)
		})
	})
}

func TestOpenDiscovery(t *testing.T) {
	Convey("Given an analytics backend that cannot be opened", t, func() {
		t.Setenv("CINEFIND_CONFIG_PATH", t.TempDir())
		So(rootCmd.PersistentFlags().Set("analytics", "redis"), ShouldBeNil)
		Reset(func() {
			_ = rootCmd.PersistentFlags().Set("analytics", "")
		})

		Convey("Discovery still gets a working tracker", func() {
			pipeline, tracker := openDiscovery()
			So(tracker, ShouldHaveSameTypeAs, analytics.Noop{})
			So(pipeline.Tracker, ShouldHaveSameTypeAs, analytics.Noop{})
			So(tracker.UpdateSearchCount(context.Background(), "heat", &tmdb.Movie{ID: 949}), ShouldBeNil)
		})
	})
}
