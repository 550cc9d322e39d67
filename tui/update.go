package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cinefind/cinefind/debounce"
	"github.com/cinefind/cinefind/discover"
	"github.com/cinefind/cinefind/internal/ui"
	"github.com/cinefind/cinefind/log"
	"github.com/cinefind/cinefind/open"
	"github.com/cinefind/cinefind/query"
	"github.com/cinefind/cinefind/tmdb"
	"github.com/samber/mo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		if b.state == detailsState && b.selectedMovie != nil {
			return b, tea.Batch(cmd, b.showDetails(b.selectedMovie))
		}
		return b, cmd
	case spinner.TickMsg:
		if !b.discovery.Loading {
			return b, cmd
		}
		var tick tea.Cmd
		b.spinnerC, tick = b.spinnerC.Update(msg)
		return b, tea.Batch(cmd, tick)
	case debounce.SettledMsg:
		value, ok := b.debouncer.Settle(msg)
		if !ok {
			return b, cmd
		}
		return b, tea.Batch(cmd, b.search(value))
	case discoveryMsg:
		return b, tea.Batch(cmd, b.onDiscovery(msg.event))
	case trendingMsg:
		// LoadTrending has logged the failure; the previous list stays.
		if msg.err != nil {
			return b, cmd
		}
		b.apply(discover.TrendingLoaded{Entries: msg.entries})
		return b, cmd
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case searchState:
		_, stateCmd = b.updateSearch(msg)
	case detailsState:
		_, stateCmd = b.updateDetails(msg)
	case errorState:
		_, stateCmd = b.updateError(msg)
	}

	return b, tea.Batch(cmd, stateCmd)
}

// onDiscovery applies a fetch settlement. Settlements of superseded fetches are dropped by the reducer.
func (b *statefulBubble) onDiscovery(ev discover.Event) tea.Cmd {
	cmd := b.apply(ev)

	succeeded, ok := ev.(discover.FetchSucceeded)
	if !ok || (b.discovery.DiscardStale && succeeded.Seq != b.discovery.Seq) {
		return cmd
	}

	if succeeded.Query != "" && len(succeeded.Movies) > 0 {
		if err := query.Remember(succeeded.Query, 1); err != nil {
			log.Warn(err)
		}
	}

	if succeeded.ReportErr != nil {
		return tea.Batch(cmd, ui.Warn("Search was not counted towards trending"))
	}

	return cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.moviesC.SelectedItem().(*listItem); ok && !b.discovery.Loading && b.discovery.ErrorMessage == "" {
				b.newState(detailsState)
				return b, b.showDetails(item.internal)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.SetCursor(len(b.inputC.Value()))
			return b, b.debouncer.Update(b.inputC.Value())
		case bubblesKey.Matches(msg, b.keymap.up, b.keymap.down, b.keymap.pageUp, b.keymap.pageDown):
			b.moviesC, cmd = b.moviesC.Update(msg)
			return b, cmd
		case bubblesKey.Matches(msg, b.keymap.reloadTrending):
			return b, b.loadTrending()
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.inputC.Value() == "" {
				return b, nil
			}
			b.inputC.SetValue("")
			b.searchSuggestion = mo.None[string]()
			return b, b.debouncer.Update("")
		}
	}

	before := b.inputC.Value()
	b.inputC, cmd = b.inputC.Update(msg)
	value := b.inputC.Value()

	if value != before {
		cmd = tea.Batch(cmd, b.debouncer.Update(value))
	}

	if value != "" {
		b.searchSuggestion = query.Suggest(value)
	} else if b.searchSuggestion.IsPresent() {
		b.searchSuggestion = mo.None[string]()
	}

	return b, cmd
}

func (b *statefulBubble) updateDetails(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.openURL):
			return b, b.openURL(b.selectedMovie.PageURL())
		case bubblesKey.Matches(msg, b.keymap.openPoster):
			return b, b.openURL(b.selectedMovie.PosterURL())
		case bubblesKey.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			return b, nil
		}
	}

	b.detailsC, cmd = b.detailsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}
	return b, nil
}

func (b *statefulBubble) showDetails(m *tmdb.Movie) tea.Cmd {
	b.selectedMovie = m

	rendered, err := renderMarkdown(movieMarkdown(m), b.detailsC.Width)
	if err != nil {
		log.Error(err)
		return func() tea.Msg { return fmt.Errorf("render details: %w", err) }
	}

	b.detailsC.SetContent(rendered)
	b.detailsC.GotoTop()
	return nil
}

func (b *statefulBubble) openURL(url string) tea.Cmd {
	if err := open.URL(url); err != nil {
		log.Warn(err)
		return ui.Warn(err.Error())
	}
	return ui.Notify("Opened " + url)
}
