// Package query remembers settled searches and suggests completions for the search input.
package query

import (
	"strings"

	"github.com/cinefind/cinefind/filesystem"
	"github.com/cinefind/cinefind/key"
	"github.com/cinefind/cinefind/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = filesystem.NewCache[map[string]*queryRecord](where.Queries(), 0)

// suggestions memoizes SuggestMany per prefix until the next Remember.
var suggestions = make(map[string][]*queryRecord)

// Remember records a settled search, adding weight to its rank. Empty queries are ignored.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*queryRecord)
	}

	if record, ok := cached[q]; ok {
		record.Rank += weight
	} else {
		cached[q] = &queryRecord{Rank: weight, Query: q}
	}

	clear(suggestions)
	return cacher.Set(cached)
}

// Suggest returns the best remembered completion of q. Nothing is suggested for an empty input or for q itself.
func Suggest(q string) mo.Option[string] {
	sanitized := sanitize(q)
	if sanitized == "" {
		return mo.None[string]()
	}

	match, ok := lo.Find(SuggestMany(q), func(s string) bool {
		return s != sanitized
	})
	if !ok {
		return mo.None[string]()
	}
	return mo.Some(match)
}

// SuggestMany returns remembered queries fuzzily matching q, highest rank first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)
	records, ok := suggestions[q]
	if !ok {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if fuzzy.Match(q, record.Query) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *queryRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Query, b.Query)
		})

		suggestions[q] = records
	}

	return lo.Map(records, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

// Forget drops every remembered query.
func Forget() error {
	clear(suggestions)
	return cacher.Set(make(map[string]*queryRecord))
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
