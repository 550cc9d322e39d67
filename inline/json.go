package inline

import (
	"github.com/cinefind/cinefind/analytics"
	"github.com/cinefind/cinefind/tmdb"
	json "github.com/goccy/go-json"
)

// Output is the JSON document written for a search.
type Output struct {
	Query   string        `json:"query" jsonschema:"description=Query the results belong to. Empty for the popularity listing."`
	Results []*tmdb.Movie `json:"results"`
}

// TrendingOutput is the JSON document written by the trending command.
type TrendingOutput struct {
	Trending []*analytics.Entry `json:"trending"`
}

func asJson(movies []*tmdb.Movie, query string) ([]byte, error) {
	if movies == nil {
		movies = []*tmdb.Movie{}
	}

	return json.Marshal(&Output{
		Query:   query,
		Results: movies,
	})
}
