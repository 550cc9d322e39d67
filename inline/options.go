package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cinefind/cinefind/discover"
	"github.com/cinefind/cinefind/tmdb"
	"github.com/cinefind/cinefind/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// MoviePicker narrows the results to a single movie, or nil when none qualifies.
type MoviePicker func([]*tmdb.Movie) *tmdb.Movie

type Options struct {
	Out      io.Writer
	Pipeline *discover.Pipeline
	Query    string
	Json     bool
	// Limit caps the number of results written. Zero means no cap.
	Limit  int
	URLs   bool
	Picker mo.Option[MoviePicker]
}

// ParseMoviePicker builds a picker from a selector: first, last, a zero-based index, or an exact title.
func ParseMoviePicker(selector string) (MoviePicker, error) {
	switch selector {
	case "":
		return nil, fmt.Errorf("empty movie selector")
	case "first":
		return func(movies []*tmdb.Movie) *tmdb.Movie {
			if len(movies) == 0 {
				return nil
			}
			return movies[0]
		}, nil
	case "last":
		return func(movies []*tmdb.Movie) *tmdb.Movie {
			if len(movies) == 0 {
				return nil
			}
			return movies[len(movies)-1]
		}, nil
	}

	if idx, err := strconv.ParseUint(selector, 10, 16); err == nil {
		return func(movies []*tmdb.Movie) *tmdb.Movie {
			if len(movies) == 0 {
				return nil
			}
			return movies[util.Min(int(idx), len(movies)-1)]
		}, nil
	}

	return func(movies []*tmdb.Movie) *tmdb.Movie {
		movie, _ := lo.Find(movies, func(m *tmdb.Movie) bool {
			return strings.EqualFold(m.Title, selector)
		})
		return movie
	}, nil
}
