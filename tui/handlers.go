package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cinefind/cinefind/analytics"
	"github.com/cinefind/cinefind/discover"
	"github.com/cinefind/cinefind/log"
)

// discoveryMsg carries the settlement of a fetch back into the update loop.
type discoveryMsg struct {
	event discover.Event
}

type trendingMsg struct {
	entries []*analytics.Entry
	err     error
}

// search starts fetch number b.seq+1 for q. The loading state is entered immediately; the fetch runs as a command.
func (b *statefulBubble) search(q string) tea.Cmd {
	b.seq++
	seq := b.seq
	b.apply(discover.FetchStarted{Seq: seq, Query: q})

	return tea.Batch(b.fetch(seq, q), b.spinnerC.Tick)
}

func (b *statefulBubble) fetch(seq int, q string) tea.Cmd {
	pipeline := b.options.Pipeline
	return func() tea.Msg {
		log.Infof("searching for %q (#%d)", q, seq)
		return discoveryMsg{event: pipeline.Fetch(b.ctx, seq, q)}
	}
}

func (b *statefulBubble) loadTrending() tea.Cmd {
	tracker := b.options.Tracker
	return func() tea.Msg {
		entries, err := discover.LoadTrending(b.ctx, tracker)
		return trendingMsg{entries: entries, err: err}
	}
}

// apply reduces ev into the discovery state and refreshes the results list when it changed.
func (b *statefulBubble) apply(ev discover.Event) tea.Cmd {
	before := b.discovery
	b.discovery = discover.Reduce(b.discovery, ev)

	if sameMovies(before, b.discovery) {
		return nil
	}

	items := make([]list.Item, len(b.discovery.Movies))
	for i, m := range b.discovery.Movies {
		items[i] = &listItem{internal: m}
	}

	b.moviesC.ResetSelected()
	return b.moviesC.SetItems(items)
}

func sameMovies(a, b discover.State) bool {
	if len(a.Movies) != len(b.Movies) {
		return false
	}
	for i := range a.Movies {
		if a.Movies[i] != b.Movies[i] {
			return false
		}
	}
	return true
}
