package tui

import (
	"strings"

	"github.com/cinefind/cinefind/icon"
	"github.com/cinefind/cinefind/key"
	"github.com/cinefind/cinefind/style"
	"github.com/cinefind/cinefind/tmdb"
	"github.com/spf13/viper"
)

// listItem adapts a movie to list.Item.
type listItem struct {
	internal *tmdb.Movie
}

func (t *listItem) Title() string {
	if t.internal.Title == "" {
		return t.internal.OriginalTitle
	}
	return t.internal.Title
}

// Description shows rating, original language and release year, like a movie card.
func (t *listItem) Description() string {
	m := t.internal
	parts := []string{
		style.Rating(m.VoteAverage, icon.Get(icon.Star)+" "+m.Rating()),
		style.Faint(m.OriginalLanguage),
		style.Faint(m.Year()),
	}

	if viper.GetBool(key.TUIShowURLs) {
		parts = append(parts, style.Fg(style.LinkColor)(m.PageURL()))
	}

	return strings.Join(parts, " • ")
}

func (t *listItem) FilterValue() string {
	return t.Title()
}
