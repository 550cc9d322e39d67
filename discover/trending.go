package discover

import (
	"context"

	"github.com/cinefind/cinefind/analytics"
	"github.com/cinefind/cinefind/log"
	"github.com/samber/lo"
)

// Dedupe keeps the first entry for every movie, preserving order.
func Dedupe(entries []*analytics.Entry) []*analytics.Entry {
	return lo.UniqBy(entries, func(entry *analytics.Entry) int {
		return entry.MovieID
	})
}

// LoadTrending fetches the trending entries and removes repeated movies.
// On failure the error is logged and returned; callers keep whatever list they already show.
func LoadTrending(ctx context.Context, tracker analytics.Tracker) ([]*analytics.Entry, error) {
	entries, err := tracker.TrendingMovies(ctx)
	if err != nil {
		log.Errorf("Error fetching trending movies: %s", err)
		return nil, err
	}

	return Dedupe(entries), nil
}
