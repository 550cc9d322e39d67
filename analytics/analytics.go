// Package analytics counts searches per query and serves the ranked trending list built from those counts.
package analytics

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/cinefind/cinefind/key"
	"github.com/cinefind/cinefind/log"
	"github.com/cinefind/cinefind/tmdb"
	"github.com/cinefind/cinefind/where"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Entry is a search counter record. Several entries may point at the same movie when different queries led to it.
type Entry struct {
	ID         string    `json:"$id" jsonschema:"description=Stable identifier of the counter record."`
	SearchTerm string    `json:"searchTerm" jsonschema:"description=Query the counter belongs to."`
	Count      int       `json:"count" jsonschema:"description=Number of searches for the query."`
	MovieID    int       `json:"movie_id" jsonschema:"description=TMDB ID of the top result when the counter was created."`
	PosterURL  string    `json:"poster_url" jsonschema:"description=Poster URL of that movie. May be empty."`
	Title      string    `json:"title" jsonschema:"description=Title of that movie."`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Key returns the display key of the entry.
func (e *Entry) Key() string {
	return e.ID
}

// Tracker is the analytics collaborator.
type Tracker interface {
	// UpdateSearchCount increments the counter of query, creating it from movie on first use.
	UpdateSearchCount(ctx context.Context, query string, movie *tmdb.Movie) error
	// TrendingMovies returns the counters with the highest counts, highest first.
	TrendingMovies(ctx context.Context) ([]*Entry, error)
	Close() error
}

// Backend identifiers accepted by Open.
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendNone   = "none"
)

// DefaultTrendingLimit is used when a non-positive limit is configured.
const DefaultTrendingLimit = 5

// Open creates the tracker for backend, storing its data under dir.
func Open(backend, dir string, limit int) (Tracker, error) {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}

	switch backend {
	case BackendBolt, "":
		return OpenBolt(filepath.Join(dir, "analytics.db"), limit)
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dir, "analytics.sqlite"), limit)
	case BackendNone:
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown analytics backend %q", backend)
	}
}

// OpenFromConfig opens the tracker selected by the global configuration.
func OpenFromConfig() (Tracker, error) {
	return Open(
		viper.GetString(key.AnalyticsBackend),
		where.Analytics(),
		viper.GetInt(key.AnalyticsTrendingLimit),
	)
}

// OpenOrNoop is Open for callers that must keep working without analytics,
// for example while another instance holds the database lock. The failure is logged and a Noop is returned.
func OpenOrNoop(backend, dir string, limit int) Tracker {
	tracker, err := Open(backend, dir, limit)
	if err != nil {
		log.Warnf("search analytics disabled: %s", err)
		return Noop{}
	}
	return tracker
}

// OpenFromConfigOrNoop is OpenOrNoop with the backend selected by the global configuration.
func OpenFromConfigOrNoop() Tracker {
	return OpenOrNoop(
		viper.GetString(key.AnalyticsBackend),
		where.Analytics(),
		viper.GetInt(key.AnalyticsTrendingLimit),
	)
}

func newEntry(query string, movie *tmdb.Movie, now time.Time) *Entry {
	return &Entry{
		ID:         uuid.NewString(),
		SearchTerm: query,
		Count:      1,
		MovieID:    movie.ID,
		PosterURL:  movie.PosterURL(),
		Title:      movie.Title,
		UpdatedAt:  now,
	}
}

// rank orders entries by count, most recently updated first on ties, and keeps the top limit.
func rank(entries []*Entry, limit int) []*Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		if !entries[i].UpdatedAt.Equal(entries[j].UpdatedAt) {
			return entries[i].UpdatedAt.After(entries[j].UpdatedAt)
		}
		return entries[i].SearchTerm < entries[j].SearchTerm
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Noop discards reports and has nothing trending.
type Noop struct{}

func (Noop) UpdateSearchCount(context.Context, string, *tmdb.Movie) error { return nil }
func (Noop) TrendingMovies(context.Context) ([]*Entry, error)            { return []*Entry{}, nil }
func (Noop) Close() error                                                { return nil }
