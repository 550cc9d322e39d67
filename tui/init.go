package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cinefind/cinefind/key"
	"github.com/spf13/viper"
)

// Init issues the startup fetch and loads the trending list once.
func (b *statefulBubble) Init() tea.Cmd {
	query := b.options.Query
	b.inputC.SetValue(query)
	b.inputC.SetCursor(len(query))
	b.debouncer.Prime(query)

	cmds := []tea.Cmd{textinput.Blink, b.search(query)}
	if viper.GetBool(key.TUIShowTrending) {
		cmds = append(cmds, b.loadTrending())
	}

	return tea.Batch(cmds...)
}
