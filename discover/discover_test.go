package discover

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinefind/cinefind/analytics"
	"github.com/cinefind/cinefind/constant"
	"github.com/cinefind/cinefind/log"
	"github.com/cinefind/cinefind/tmdb"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeCatalog struct {
	page    *tmdb.Page
	err     error
	queries []string
}

func (c *fakeCatalog) Movies(_ context.Context, query string) (*tmdb.Page, error) {
	c.queries = append(c.queries, query)
	return c.page, c.err
}

type report struct {
	query string
	movie *tmdb.Movie
}

type fakeTracker struct {
	reports  []report
	err      error
	trending []*analytics.Entry
}

func (t *fakeTracker) UpdateSearchCount(_ context.Context, query string, movie *tmdb.Movie) error {
	t.reports = append(t.reports, report{query, movie})
	return t.err
}

func (t *fakeTracker) TrendingMovies(context.Context) ([]*analytics.Entry, error) {
	return t.trending, t.err
}

func (t *fakeTracker) Close() error { return nil }

func movies(ids ...int) []*tmdb.Movie {
	return lo.Map(ids, func(id int, _ int) *tmdb.Movie {
		return &tmdb.Movie{ID: id}
	})
}

func entries(movieIDs ...int) []*analytics.Entry {
	return lo.Map(movieIDs, func(id int, i int) *analytics.Entry {
		return &analytics.Entry{ID: string(rune('a' + i)), MovieID: id}
	})
}

func TestReduce(t *testing.T) {
	Convey("Given the initial state", t, func() {
		s := NewState(true)
		So(s.Loading, ShouldBeFalse)
		So(s.Movies, ShouldBeEmpty)

		Convey("Starting a fetch sets loading and clears the error", func() {
			s.ErrorMessage = "old"
			s = Reduce(s, FetchStarted{Seq: 1, Query: "batman"})
			So(s.Loading, ShouldBeTrue)
			So(s.ErrorMessage, ShouldBeEmpty)
			So(s.Query, ShouldEqual, "batman")

			Convey("Success stores the movies and clears loading", func() {
				s = Reduce(s, FetchSucceeded{Seq: 1, Query: "batman", Movies: movies(1, 2)})
				So(s.Loading, ShouldBeFalse)
				So(s.Movies, ShouldHaveLength, 2)
				So(s.ErrorMessage, ShouldBeEmpty)
			})

			Convey("Nil results become an empty list", func() {
				s = Reduce(s, FetchSucceeded{Seq: 1})
				So(s.Movies, ShouldNotBeNil)
				So(s.Movies, ShouldBeEmpty)
			})

			Convey("A transport failure shows the generic message", func() {
				s.Movies = movies(9)
				s = Reduce(s, FetchFailed{Seq: 1, Err: errors.New("boom")})
				So(s.Loading, ShouldBeFalse)
				So(s.ErrorMessage, ShouldEqual, "Error fetching movies. Please try again later.")
				So(s.Movies, ShouldBeEmpty)
			})

			Convey("A rejection shows the catalog message", func() {
				s = Reduce(s, FetchRejected{Seq: 1, Message: "Rate limited"})
				So(s.ErrorMessage, ShouldEqual, "Rate limited")
				So(s.Movies, ShouldBeEmpty)
				So(s.Loading, ShouldBeFalse)
			})

			Convey("A rejection without a message falls back", func() {
				s = Reduce(s, FetchRejected{Seq: 1})
				So(s.ErrorMessage, ShouldEqual, "Failed to fetch movies")
			})

			Convey("A newer fetch makes the older settlement stale", func() {
				s = Reduce(s, FetchStarted{Seq: 2, Query: "batman begins"})
				s = Reduce(s, FetchSucceeded{Seq: 1, Query: "batman", Movies: movies(1)})
				So(s.Loading, ShouldBeTrue)
				So(s.Movies, ShouldBeEmpty)

				s = Reduce(s, FetchSucceeded{Seq: 2, Query: "batman begins", Movies: movies(2, 3)})
				So(s.Loading, ShouldBeFalse)
				So(s.Movies, ShouldHaveLength, 2)
			})
		})

		Convey("Trending updates do not touch the fetch state", func() {
			s = Reduce(s, FetchStarted{Seq: 1})
			s = Reduce(s, TrendingLoaded{Entries: entries(7, 3)})
			So(s.Trending, ShouldHaveLength, 2)
			So(s.Loading, ShouldBeTrue)
		})

		Convey("Reduce leaves its input untouched", func() {
			before := s
			_ = Reduce(s, FetchStarted{Seq: 5, Query: "x"})
			So(before.Loading, ShouldBeFalse)
			So(before.Seq, ShouldEqual, 0)
		})
	})

	Convey("With stale discarding disabled the last settlement wins", t, func() {
		s := NewState(false)
		s = Reduce(s, FetchStarted{Seq: 1, Query: "a"})
		s = Reduce(s, FetchStarted{Seq: 2, Query: "ab"})
		s = Reduce(s, FetchSucceeded{Seq: 2, Movies: movies(2)})
		s = Reduce(s, FetchSucceeded{Seq: 1, Movies: movies(1)})
		So(s.Movies[0].ID, ShouldEqual, 1)
	})
}

func TestPipeline(t *testing.T) {
	Convey("Given a pipeline", t, func() {
		var buf bytes.Buffer
		log.SetOutput(&buf)
		Reset(log.Disable)

		ctx := context.Background()
		catalog := &fakeCatalog{}
		tracker := &fakeTracker{}
		pipeline := &Pipeline{Catalog: catalog, Tracker: tracker}

		Convey("A search with results reports the top result exactly once", func() {
			catalog.page = &tmdb.Page{Results: movies(11, 12)}

			ev := pipeline.Fetch(ctx, 3, "batman")
			So(ev, ShouldHaveSameTypeAs, FetchSucceeded{})
			So(ev.(FetchSucceeded).Seq, ShouldEqual, 3)
			So(ev.(FetchSucceeded).Movies, ShouldHaveLength, 2)
			So(tracker.reports, ShouldHaveLength, 1)
			So(tracker.reports[0].query, ShouldEqual, "batman")
			So(tracker.reports[0].movie.ID, ShouldEqual, 11)
		})

		Convey("A search with no results is not reported", func() {
			catalog.page = &tmdb.Page{Results: []*tmdb.Movie{}}

			ev := pipeline.Fetch(ctx, 1, "zzzzqqq")
			So(ev, ShouldHaveSameTypeAs, FetchSucceeded{})
			So(ev.(FetchSucceeded).Movies, ShouldBeEmpty)
			So(tracker.reports, ShouldBeEmpty)
		})

		Convey("Discovery is not reported", func() {
			catalog.page = &tmdb.Page{Results: movies(1, 2, 3)}

			_ = pipeline.Fetch(ctx, 1, "")
			So(catalog.queries, ShouldResemble, []string{""})
			So(tracker.reports, ShouldBeEmpty)
		})

		Convey("A catalog rejection carries its message and skips reporting", func() {
			catalog.err = &tmdb.StatusError{Code: 429, Message: "Rate limited"}

			ev := pipeline.Fetch(ctx, 1, "batman")
			So(ev, ShouldResemble, FetchRejected{Seq: 1, Message: "Rate limited"})
			So(tracker.reports, ShouldBeEmpty)
		})

		Convey("A transport error is logged and fails the fetch", func() {
			catalog.err = errors.New("connection refused")

			ev := pipeline.Fetch(ctx, 1, "batman")
			So(ev, ShouldHaveSameTypeAs, FetchFailed{})
			So(buf.String(), ShouldContainSubstring, "connection refused")

			s := Reduce(Reduce(NewState(true), FetchStarted{Seq: 1}), ev)
			So(s.ErrorMessage, ShouldEqual, constant.FetchErrorMessage)
		})

		Convey("A failed report keeps the results and is logged as a warning", func() {
			catalog.page = &tmdb.Page{Results: movies(5)}
			tracker.err = errors.New("disk full")

			ev := pipeline.Fetch(ctx, 1, "dune")
			So(ev, ShouldHaveSameTypeAs, FetchSucceeded{})
			So(ev.(FetchSucceeded).ReportErr, ShouldNotBeNil)
			So(ev.(FetchSucceeded).Movies, ShouldHaveLength, 1)
			So(buf.String(), ShouldContainSubstring, "level=warning")
		})

		Convey("In strict mode a failed report fails the fetch", func() {
			pipeline.StrictReporting = true
			catalog.page = &tmdb.Page{Results: movies(5)}
			tracker.err = errors.New("disk full")

			ev := pipeline.Fetch(ctx, 1, "dune")
			So(ev, ShouldHaveSameTypeAs, FetchFailed{})
			So(tracker.reports, ShouldHaveLength, 1)
		})
	})

	Convey("Against the catalog client", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"status_code":25,"status_message":"Rate limited","success":false}`))
		}))
		Reset(server.Close)

		tracker := &fakeTracker{}
		pipeline := &Pipeline{Catalog: tmdb.New(tmdb.Options{BaseURL: server.URL, Token: "t"}), Tracker: tracker}

		s := NewState(true)
		s = Reduce(s, FetchStarted{Seq: 1, Query: "batman"})
		s = Reduce(s, pipeline.Fetch(context.Background(), 1, "batman"))

		So(s.ErrorMessage, ShouldEqual, "Rate limited")
		So(s.Movies, ShouldBeEmpty)
		So(s.Loading, ShouldBeFalse)
		So(tracker.reports, ShouldBeEmpty)
	})
}

func TestTrending(t *testing.T) {
	Convey("Dedupe keeps the first entry per movie in order", t, func() {
		deduped := Dedupe(entries(7, 3, 7, 9, 3))
		ids := lo.Map(deduped, func(e *analytics.Entry, _ int) int { return e.MovieID })
		So(ids, ShouldResemble, []int{7, 3, 9})
		So(deduped[0].ID, ShouldEqual, "a")
		So(deduped[1].ID, ShouldEqual, "b")
	})

	Convey("Dedupe of nothing is empty", t, func() {
		So(Dedupe(nil), ShouldBeEmpty)
	})

	Convey("LoadTrending", t, func() {
		tracker := &fakeTracker{trending: entries(1, 1, 2)}

		Convey("Returns the deduplicated list", func() {
			list, err := LoadTrending(context.Background(), tracker)
			So(err, ShouldBeNil)
			So(list, ShouldHaveLength, 2)
		})

		Convey("Returns the error so callers keep their list", func() {
			tracker.err = errors.New("unavailable")
			list, err := LoadTrending(context.Background(), tracker)
			So(err, ShouldNotBeNil)
			So(list, ShouldBeNil)
		})
	})
}
