package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cinefind/cinefind/analytics"
	"github.com/cinefind/cinefind/discover"
)

// Options holds the collaborators the interface works with.
type Options struct {
	Pipeline *discover.Pipeline
	Tracker  analytics.Tracker
	// Query is the search issued on startup. Empty lists popular movies.
	Query string
}

// Run starts the interface and blocks until the user quits.
func Run(options *Options) error {
	if options == nil || options.Pipeline == nil || options.Tracker == nil {
		return errors.New("tui: pipeline and tracker are required")
	}

	bubble := newBubble(options)
	bubble.newState(searchState)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
