// Package discover holds the movie discovery state machine: the fetch pipeline, the trending loader and the reducer that applies their results.
package discover

import (
	"github.com/cinefind/cinefind/analytics"
	"github.com/cinefind/cinefind/constant"
	"github.com/cinefind/cinefind/tmdb"
)

// State is the discovery view state. Values are never mutated in place; Reduce returns a new State.
type State struct {
	Loading      bool
	ErrorMessage string
	Movies       []*tmdb.Movie
	Trending     []*analytics.Entry
	// Query is the query of the latest started fetch.
	Query string
	// Seq identifies the latest started fetch.
	Seq int
	// DiscardStale drops settlements of fetches other than the latest one.
	DiscardStale bool
}

// Event is anything Reduce can apply.
type Event interface {
	event()
}

type FetchStarted struct {
	Seq   int
	Query string
}

type FetchSucceeded struct {
	Seq    int
	Query  string
	Movies []*tmdb.Movie
	// ReportErr is set when the results were kept but reporting the search failed.
	ReportErr error
}

// FetchFailed is a transport, parse or strict analytics failure.
type FetchFailed struct {
	Seq int
	Err error
}

// FetchRejected is an application failure reported by the catalog.
type FetchRejected struct {
	Seq     int
	Message string
}

type TrendingLoaded struct {
	Entries []*analytics.Entry
}

func (FetchStarted) event()   {}
func (FetchSucceeded) event() {}
func (FetchFailed) event()    {}
func (FetchRejected) event()  {}
func (TrendingLoaded) event() {}

// NewState returns the initial state: nothing loaded yet.
func NewState(discardStale bool) State {
	return State{
		Movies:       []*tmdb.Movie{},
		Trending:     []*analytics.Entry{},
		DiscardStale: discardStale,
	}
}

// Reduce applies ev to s.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case FetchStarted:
		s.Loading = true
		s.ErrorMessage = ""
		s.Query = ev.Query
		s.Seq = ev.Seq
	case FetchSucceeded:
		if s.stale(ev.Seq) {
			return s
		}
		s.Movies = ev.Movies
		if s.Movies == nil {
			s.Movies = []*tmdb.Movie{}
		}
		s.Loading = false
	case FetchFailed:
		if s.stale(ev.Seq) {
			return s
		}
		s.ErrorMessage = constant.FetchErrorMessage
		s.Movies = []*tmdb.Movie{}
		s.Loading = false
	case FetchRejected:
		if s.stale(ev.Seq) {
			return s
		}
		s.ErrorMessage = ev.Message
		if s.ErrorMessage == "" {
			s.ErrorMessage = constant.FetchRejectedMessage
		}
		s.Movies = []*tmdb.Movie{}
		s.Loading = false
	case TrendingLoaded:
		s.Trending = ev.Entries
		if s.Trending == nil {
			s.Trending = []*analytics.Entry{}
		}
	}

	return s
}

func (s State) stale(seq int) bool {
	return s.DiscardStale && seq != s.Seq
}
