// Package tmdb provides a client for The Movie Database (TMDB) v3 REST API.
package tmdb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cinefind/cinefind/constant"
)

// Movie is a catalog entry as returned by the search and discover endpoints.
type Movie struct {
	// ID is the unique identifier of the movie on TMDB.
	ID int `json:"id" jsonschema:"description=ID of the movie on TMDB."`
	// Title is the localized title.
	Title string `json:"title" jsonschema:"description=Localized title of the movie."`
	// OriginalTitle is the title in the original language.
	OriginalTitle string `json:"original_title" jsonschema:"description=Title in the original language."`
	// Overview is the plot summary.
	Overview string `json:"overview" jsonschema:"description=Plot summary."`
	// PosterPath is the poster image path relative to the image base URL.
	PosterPath string `json:"poster_path" jsonschema:"description=Poster path relative to the TMDB image base URL. May be empty."`
	// BackdropPath is the backdrop image path relative to the image base URL.
	BackdropPath string `json:"backdrop_path" jsonschema:"description=Backdrop path relative to the TMDB image base URL. May be empty."`
	// ReleaseDate is formatted as YYYY-MM-DD, or empty when unknown.
	ReleaseDate string `json:"release_date" jsonschema:"description=Release date in YYYY-MM-DD format. May be empty."`
	// OriginalLanguage is an ISO 639-1 code.
	OriginalLanguage string `json:"original_language" jsonschema:"description=ISO 639-1 code of the original language."`
	VoteAverage      float64 `json:"vote_average" jsonschema:"description=Average user score from 0 to 10."`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	Adult            bool    `json:"adult"`
	GenreIDs         []int   `json:"genre_ids"`
}

// Year returns the release year, or "N/A" when the release date is unknown.
func (m *Movie) Year() string {
	if year, _, ok := strings.Cut(m.ReleaseDate, "-"); ok && year != "" {
		return year
	}
	return "N/A"
}

// Rating returns the vote average with one decimal, or "N/A" when nobody voted.
func (m *Movie) Rating() string {
	if m.VoteAverage == 0 {
		return "N/A"
	}
	return strconv.FormatFloat(m.VoteAverage, 'f', 1, 64)
}

// PosterURL returns the absolute poster URL, or an empty string when the movie has no poster.
func (m *Movie) PosterURL() string {
	return PosterURL(m.PosterPath)
}

// PageURL returns the movie's page on the TMDB website.
func (m *Movie) PageURL() string {
	return fmt.Sprintf("%s/%d", constant.TMDBSiteBase, m.ID)
}

// PosterURL resolves a poster path against the image base URL.
func PosterURL(path string) string {
	if path == "" {
		return ""
	}
	return constant.TMDBImageBase + path
}

// Page is the envelope shared by the search and discover endpoints.
// Failed requests carry StatusMessage and StatusCode instead of results.
type Page struct {
	Page          int      `json:"page"`
	Results       []*Movie `json:"results"`
	TotalPages    int      `json:"total_pages"`
	TotalResults  int      `json:"total_results"`
	StatusMessage string   `json:"status_message,omitempty"`
	StatusCode    int      `json:"status_code,omitempty"`
	Success       *bool    `json:"success,omitempty"`
}
