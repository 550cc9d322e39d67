package analytics

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cinefind/cinefind/log"
	"github.com/cinefind/cinefind/tmdb"
	. "github.com/smartystreets/goconvey/convey"
)

type clockSetter interface {
	Tracker
	setNow(func() time.Time)
}

func (t *BoltTracker) setNow(now func() time.Time)   { t.now = now }
func (t *SQLiteTracker) setNow(now func() time.Time) { t.now = now }

func tickingClock() func() time.Time {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var n int
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
}

func movie(id int, title string) *tmdb.Movie {
	return &tmdb.Movie{ID: id, Title: title, PosterPath: "/" + title + ".jpg"}
}

func trackerBehaviour(t *testing.T, open func(dir string) (clockSetter, error)) func() {
	return func() {
		ctx := context.Background()
		tracker, err := open(t.TempDir())
		So(err, ShouldBeNil)
		tracker.setNow(tickingClock())

		Reset(func() {
			_ = tracker.Close()
		})

		Convey("A fresh store has nothing trending", func() {
			entries, err := tracker.TrendingMovies(ctx)
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)
		})

		Convey("The first report creates a counter from the movie", func() {
			So(tracker.UpdateSearchCount(ctx, "batman", movie(268, "Batman")), ShouldBeNil)

			entries, err := tracker.TrendingMovies(ctx)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 1)
			So(entries[0].SearchTerm, ShouldEqual, "batman")
			So(entries[0].Count, ShouldEqual, 1)
			So(entries[0].MovieID, ShouldEqual, 268)
			So(entries[0].Title, ShouldEqual, "Batman")
			So(entries[0].PosterURL, ShouldEqual, "https://image.tmdb.org/t/p/w500/Batman.jpg")
			So(entries[0].ID, ShouldNotBeEmpty)
		})

		Convey("Repeated reports increment the counter and keep the original movie", func() {
			So(tracker.UpdateSearchCount(ctx, "batman", movie(268, "Batman")), ShouldBeNil)
			So(tracker.UpdateSearchCount(ctx, "batman", movie(999, "Other")), ShouldBeNil)

			entries, err := tracker.TrendingMovies(ctx)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 1)
			So(entries[0].Count, ShouldEqual, 2)
			So(entries[0].MovieID, ShouldEqual, 268)
		})

		Convey("Trending is ordered by count and limited", func() {
			for i, term := range []string{"a", "b", "c", "d", "e", "f"} {
				for n := 0; n <= i; n++ {
					So(tracker.UpdateSearchCount(ctx, term, movie(i+1, term)), ShouldBeNil)
				}
			}

			entries, err := tracker.TrendingMovies(ctx)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 3)
			So(entries[0].SearchTerm, ShouldEqual, "f")
			So(entries[1].SearchTerm, ShouldEqual, "e")
			So(entries[2].SearchTerm, ShouldEqual, "d")
		})

		Convey("Different terms may point at the same movie", func() {
			So(tracker.UpdateSearchCount(ctx, "bat", movie(268, "Batman")), ShouldBeNil)
			So(tracker.UpdateSearchCount(ctx, "batman", movie(268, "Batman")), ShouldBeNil)

			entries, err := tracker.TrendingMovies(ctx)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 2)
			So(entries[0].MovieID, ShouldEqual, entries[1].MovieID)
		})

		Convey("Search terms are matched exactly", func() {
			So(tracker.UpdateSearchCount(ctx, "Batman", movie(268, "Batman")), ShouldBeNil)
			So(tracker.UpdateSearchCount(ctx, "batman", movie(268, "Batman")), ShouldBeNil)

			entries, err := tracker.TrendingMovies(ctx)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 2)
			So(entries[0].Count, ShouldEqual, 1)
			So(entries[1].Count, ShouldEqual, 1)
		})

		Convey("A nil movie is rejected", func() {
			So(tracker.UpdateSearchCount(ctx, "batman", nil), ShouldNotBeNil)
		})
	}
}

func TestTrackers(t *testing.T) {
	Convey("Bolt tracker", t, trackerBehaviour(t, func(dir string) (clockSetter, error) {
		return OpenBolt(filepath.Join(dir, "analytics.db"), 3)
	}))

	Convey("SQLite tracker", t, trackerBehaviour(t, func(dir string) (clockSetter, error) {
		return OpenSQLite(filepath.Join(dir, "analytics.sqlite"), 3)
	}))

	Convey("In-memory SQLite tracker", t, trackerBehaviour(t, func(string) (clockSetter, error) {
		return OpenSQLite(":memory:", 3)
	}))
}

func TestOpen(t *testing.T) {
	Convey("Open", t, func() {
		dir := t.TempDir()

		Convey("Defaults to the bolt backend", func() {
			tracker, err := Open("", dir, 0)
			So(err, ShouldBeNil)
			defer tracker.Close()

			bolt, ok := tracker.(*BoltTracker)
			So(ok, ShouldBeTrue)
			So(bolt.limit, ShouldEqual, DefaultTrendingLimit)
		})

		Convey("Selects the sqlite backend", func() {
			tracker, err := Open(BackendSQLite, dir, 10)
			So(err, ShouldBeNil)
			defer tracker.Close()

			_, ok := tracker.(*SQLiteTracker)
			So(ok, ShouldBeTrue)
		})

		Convey("The none backend accepts reports and has nothing trending", func() {
			tracker, err := Open(BackendNone, dir, 5)
			So(err, ShouldBeNil)
			So(tracker.UpdateSearchCount(context.Background(), "x", movie(1, "x")), ShouldBeNil)

			entries, err := tracker.TrendingMovies(context.Background())
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)
		})

		Convey("Unknown backends are an error", func() {
			_, err := Open("redis", dir, 5)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestOpenOrNoop(t *testing.T) {
	Convey("OpenOrNoop", t, func() {
		dir := t.TempDir()

		Convey("Returns the backend when it opens", func() {
			tracker := OpenOrNoop(BackendBolt, dir, 3)
			defer tracker.Close()

			_, ok := tracker.(*BoltTracker)
			So(ok, ShouldBeTrue)
		})

		Convey("Falls back to a no-op tracker while another instance holds the database", func() {
			held, err := OpenBolt(filepath.Join(dir, "analytics.db"), 3)
			So(err, ShouldBeNil)
			defer held.Close()

			var buf bytes.Buffer
			log.SetOutput(&buf)
			defer log.Disable()

			tracker := OpenOrNoop(BackendBolt, dir, 3)
			So(tracker, ShouldHaveSameTypeAs, Noop{})
			So(buf.String(), ShouldContainSubstring, "search analytics disabled")

			So(tracker.UpdateSearchCount(context.Background(), "heat", movie(949, "Heat")), ShouldBeNil)
			entries, err := tracker.TrendingMovies(context.Background())
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)
		})

		Convey("Falls back on an unknown backend", func() {
			So(OpenOrNoop("redis", dir, 3), ShouldHaveSameTypeAs, Noop{})
		})
	})
}
