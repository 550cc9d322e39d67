package inline

import (
	"bytes"
	"context"
	"testing"

	"github.com/cinefind/cinefind/analytics"
	"github.com/cinefind/cinefind/discover"
	"github.com/cinefind/cinefind/tmdb"
	json "github.com/goccy/go-json"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type stubCatalog struct {
	page *tmdb.Page
	err  error
}

func (c stubCatalog) Movies(context.Context, string) (*tmdb.Page, error) {
	return c.page, c.err
}

type stubTracker struct {
	analytics.Noop
	entries []*analytics.Entry
}

func (t stubTracker) TrendingMovies(context.Context) ([]*analytics.Entry, error) {
	return t.entries, nil
}

func pipelineReturning(movies ...*tmdb.Movie) *discover.Pipeline {
	return &discover.Pipeline{
		Catalog: stubCatalog{page: &tmdb.Page{Results: movies}},
		Tracker: analytics.Noop{},
	}
}

func TestRun(t *testing.T) {
	heat := &tmdb.Movie{ID: 949, Title: "Heat", ReleaseDate: "1995-12-15", VoteAverage: 7.9}
	dune := &tmdb.Movie{ID: 438631, Title: "Dune", ReleaseDate: "2021-09-15", VoteAverage: 7.8}

	Convey("Given a search with results", t, func() {
		var buf bytes.Buffer
		options := &Options{Out: &buf, Pipeline: pipelineReturning(heat, dune), Query: "h"}

		Convey("Text output lists one movie per line", func() {
			So(Run(context.Background(), options), ShouldBeNil)
			So(buf.String(), ShouldEqual, "Heat (1995) 7.9\nDune (2021) 7.8\n")
		})

		Convey("JSON output carries the query and results", func() {
			options.Json = true
			So(Run(context.Background(), options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Query, ShouldEqual, "h")
			So(output.Results, ShouldHaveLength, 2)
		})

		Convey("Limit caps the results", func() {
			options.Limit = 1
			So(Run(context.Background(), options), ShouldBeNil)
			So(buf.String(), ShouldEqual, "Heat (1995) 7.9\n")
		})

		Convey("A picker selects one movie", func() {
			picker, err := ParseMoviePicker("dune")
			So(err, ShouldBeNil)
			options.Picker = mo.Some(picker)
			options.URLs = true

			So(Run(context.Background(), options), ShouldBeNil)
			So(buf.String(), ShouldEqual, "Dune (2021) 7.8 https://www.themoviedb.org/movie/438631\n")
		})
	})

	Convey("Empty results are written as an empty JSON list", t, func() {
		var buf bytes.Buffer
		options := &Options{Out: &buf, Pipeline: pipelineReturning(), Json: true}
		So(Run(context.Background(), options), ShouldBeNil)
		So(buf.String(), ShouldEqual, `{"query":"","results":[]}`+"\n")
	})

	Convey("Failures return the interface message", t, func() {
		options := &Options{
			Out: &bytes.Buffer{},
			Pipeline: &discover.Pipeline{
				Catalog: stubCatalog{err: &tmdb.StatusError{Code: 401, Message: "Invalid API key: You must be granted a valid key."}},
				Tracker: analytics.Noop{},
			},
			Query: "x",
		}

		err := Run(context.Background(), options)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldEqual, "Invalid API key: You must be granted a valid key.")
	})
}

func TestParseMoviePicker(t *testing.T) {
	movies := []*tmdb.Movie{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}, {ID: 3, Title: "C"}}

	Convey("Selectors pick the expected movie", t, func() {
		for selector, want := range map[string]int{"first": 1, "last": 3, "1": 2, "99": 3, "c": 3} {
			picker, err := ParseMoviePicker(selector)
			So(err, ShouldBeNil)
			So(picker(movies).ID, ShouldEqual, want)
		}
	})

	Convey("Unknown titles pick nothing", t, func() {
		picker, _ := ParseMoviePicker("Z")
		So(picker(movies), ShouldBeNil)
	})

	Convey("Empty selectors are rejected", t, func() {
		_, err := ParseMoviePicker("")
		So(err, ShouldNotBeNil)
	})
}

func TestTrending(t *testing.T) {
	Convey("Trending writes the deduplicated ranking", t, func() {
		var buf bytes.Buffer
		tracker := stubTracker{entries: []*analytics.Entry{
			{MovieID: 7, Title: "Heat", Count: 4, SearchTerm: "heat"},
			{MovieID: 7, Title: "Heat", Count: 2, SearchTerm: "he"},
			{MovieID: 9, Title: "Dune", Count: 1, SearchTerm: "dune"},
		}}

		So(Trending(context.Background(), &buf, tracker, false), ShouldBeNil)
		So(buf.String(), ShouldEqual, "1. Heat (4 searches for \"heat\")\n2. Dune (1 search for \"dune\")\n")
	})
}
