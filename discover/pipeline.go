package discover

import (
	"context"
	"fmt"

	"github.com/cinefind/cinefind/analytics"
	"github.com/cinefind/cinefind/key"
	"github.com/cinefind/cinefind/log"
	"github.com/cinefind/cinefind/tmdb"
	"github.com/spf13/viper"
)

// Catalog lists movies for a query; an empty query lists popular movies.
type Catalog interface {
	Movies(ctx context.Context, query string) (*tmdb.Page, error)
}

// Pipeline runs one catalog fetch and reports successful searches to the tracker.
type Pipeline struct {
	Catalog Catalog
	Tracker analytics.Tracker
	// StrictReporting turns a failed analytics report into a failed fetch.
	StrictReporting bool
}

// NewPipeline returns a pipeline configured by analytics.strict.
func NewPipeline(catalog Catalog, tracker analytics.Tracker) *Pipeline {
	return &Pipeline{
		Catalog:         catalog,
		Tracker:         tracker,
		StrictReporting: viper.GetBool(key.AnalyticsStrict),
	}
}

// Fetch requests the movies for query and returns the event settling fetch seq.
// The search is reported once, with the top result, when the query is non-empty and there are results.
func (p *Pipeline) Fetch(ctx context.Context, seq int, query string) Event {
	page, err := p.Catalog.Movies(ctx, query)
	if err != nil {
		if statusErr, ok := tmdb.AsStatusError(err); ok {
			log.Debugf("catalog rejected %q: %s", query, statusErr)
			return FetchRejected{Seq: seq, Message: statusErr.Message}
		}

		log.Errorf("Error fetching movies: %s", err)
		return FetchFailed{Seq: seq, Err: err}
	}

	succeeded := FetchSucceeded{Seq: seq, Query: query, Movies: page.Results}
	if query == "" || len(page.Results) == 0 || p.Tracker == nil {
		return succeeded
	}

	if err := p.Tracker.UpdateSearchCount(ctx, query, page.Results[0]); err != nil {
		err = fmt.Errorf("report search %q: %w", query, err)
		if p.StrictReporting {
			log.Errorf("Error fetching movies: %s", err)
			return FetchFailed{Seq: seq, Err: err}
		}

		log.Warn(err)
		succeeded.ReportErr = err
	}

	return succeeded
}
