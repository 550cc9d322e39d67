// Package inline runs a single search without the interactive interface, for scripts and pipes.
package inline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cinefind/cinefind/analytics"
	"github.com/cinefind/cinefind/discover"
	"github.com/cinefind/cinefind/log"
	"github.com/cinefind/cinefind/tmdb"
	"github.com/cinefind/cinefind/util"
	json "github.com/goccy/go-json"
)

// Run fetches the movies for options.Query once and writes them to options.Out.
// A failed fetch returns the message the interface would show.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	state := discover.NewState(true)
	state = discover.Reduce(state, discover.FetchStarted{Seq: 1, Query: options.Query})
	state = discover.Reduce(state, options.Pipeline.Fetch(ctx, 1, options.Query))

	if state.ErrorMessage != "" {
		return errors.New(state.ErrorMessage)
	}

	movies := state.Movies
	if picker, ok := options.Picker.Get(); ok {
		if picked := picker(movies); picked != nil {
			movies = []*tmdb.Movie{picked}
		} else {
			movies = []*tmdb.Movie{}
		}
	}

	if options.Limit > 0 && len(movies) > options.Limit {
		movies = movies[:options.Limit]
	}

	log.Infof("inline: %d movies for %q", len(movies), options.Query)

	if options.Json {
		return writeJson(options.Out, movies, options.Query)
	}

	return writeText(options.Out, movies, options.URLs)
}

func writeJson(out io.Writer, movies []*tmdb.Movie, query string) error {
	data, err := asJson(movies, query)
	if err != nil {
		return err
	}
	_, err = out.Write(append(data, '\n'))
	return err
}

func writeText(out io.Writer, movies []*tmdb.Movie, urls bool) error {
	for _, m := range movies {
		line := fmt.Sprintf("%s (%s) %s", m.Title, m.Year(), m.Rating())
		if urls {
			line += " " + m.PageURL()
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

// Trending writes the deduplicated trending list, ranked from 1.
func Trending(ctx context.Context, out io.Writer, tracker analytics.Tracker, asJSON bool) error {
	entries, err := discover.LoadTrending(ctx, tracker)
	if err != nil {
		return err
	}

	if asJSON {
		return json.NewEncoder(out).Encode(&TrendingOutput{Trending: entries})
	}

	for i, entry := range entries {
		if _, err := fmt.Fprintf(out, "%d. %s (%s for %q)\n", i+1, entry.Title, util.Quantify(entry.Count, "search", "searches"), entry.SearchTerm); err != nil {
			return err
		}
	}
	return nil
}
