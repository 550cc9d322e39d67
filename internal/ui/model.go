// Package ui shows transient notifications beneath the terminal UI.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cinefind/cinefind/style"
)

// NotificationTTL is how long a notification stays visible.
const NotificationTTL = 3 * time.Second

// NotifyMsg shows Text until it expires or is replaced.
type NotifyMsg struct {
	Text string
	Warn bool
}

type clearMsg struct {
	id int
}

// Model holds the current notification.
type Model struct {
	text string
	warn bool
	id   int
}

// Notify returns a command delivering a notification.
func Notify(text string) tea.Cmd {
	return func() tea.Msg { return NotifyMsg{Text: text} }
}

// Warn returns a command delivering a warning notification.
func Warn(text string) tea.Cmd {
	return func() tea.Msg { return NotifyMsg{Text: text, Warn: true} }
}

// Update handles notification messages; other messages are ignored.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotifyMsg:
		m.id++
		m.text = msg.Text
		m.warn = msg.Warn
		id := m.id
		return tea.Tick(NotificationTTL, func(time.Time) tea.Msg { return clearMsg{id: id} })
	case clearMsg:
		// A newer notification has its own timer.
		if msg.id == m.id {
			m.text = ""
		}
	}
	return nil
}

// Text returns the visible notification, or an empty string.
func (m *Model) Text() string {
	return m.text
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.text == "" {
		return content
	}

	render := style.Faint
	if m.warn {
		render = style.Fg(style.WarningColor)
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + render(m.text)
	return strings.Join(lines, "\n")
}
