package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cinefind/cinefind/analytics"
	"github.com/cinefind/cinefind/icon"
	"github.com/cinefind/cinefind/style"
	"github.com/cinefind/cinefind/tmdb"
	"github.com/cinefind/cinefind/util"
	"github.com/muesli/reflow/wrap"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case searchState:
		output = b.viewSearch()
	case detailsState:
		output = b.viewDetails()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewSearch() string {
	input := b.inputC.View()
	if suggestion, ok := b.searchSuggestion.Get(); ok {
		input += " " + style.Faint("tab: "+suggestion)
	}

	lines := []string{
		style.Title("Find Movies You'll Enjoy"),
		"",
		input,
		"",
	}

	if trending := b.viewTrending(); trending != "" {
		lines = append(lines, trending, "")
	}

	switch {
	case b.discovery.Loading:
		lines = append(lines, b.spinnerC.View()+" Loading movies...")
	case b.discovery.ErrorMessage != "":
		lines = append(lines, style.Fg(style.ErrorColor)(icon.Get(icon.Fail)+" "+b.discovery.ErrorMessage))
	default:
		lines = append(lines, b.moviesC.View())
	}

	return b.renderLines(true, lines)
}

// viewTrending renders the ranked trending strip, or nothing when the list is empty.
func (b *statefulBubble) viewTrending() string {
	if len(b.discovery.Trending) == 0 {
		return ""
	}
	return renderTrending(b.discovery.Trending, b.width)
}

func renderTrending(entries []*analytics.Entry, width int) string {
	ranked := make([]string, len(entries))
	for i, entry := range entries {
		ranked[i] = fmt.Sprintf("%s %s", style.Rank(i+1), entry.Title)
	}

	header := style.Fg(style.TrendingColor)(icon.Get(icon.Trending) + " Trending Movies")
	return header + "\n" + util.Ellipsis(strings.Join(ranked, style.Faint("  ·  ")), width)
}

func (b *statefulBubble) viewDetails() string {
	return b.renderLines(true, []string{b.detailsC.View()})
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorMsg := wrap.String(errorStyle.Render(b.lastError.Error()), b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	if addHelp {
		if h := lipgloss.Height(l); b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}

// movieMarkdown describes m for the details view.
func movieMarkdown(m *tmdb.Movie) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s (%s)\n\n", m.Title, m.Year())
	if m.OriginalTitle != "" && m.OriginalTitle != m.Title {
		fmt.Fprintf(&sb, "*%s*\n\n", m.OriginalTitle)
	}

	fmt.Fprintf(&sb, "**Rating** %s (%d votes) · **Language** %s", m.Rating(), m.VoteCount, m.OriginalLanguage)
	if m.ReleaseDate != "" {
		fmt.Fprintf(&sb, " · **Released** %s", m.ReleaseDate)
	}
	sb.WriteString("\n\n")

	if m.Overview != "" {
		sb.WriteString(m.Overview)
	} else {
		sb.WriteString("_No overview available._")
	}
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "[TMDB](%s)", m.PageURL())
	if poster := m.PosterURL(); poster != "" {
		fmt.Fprintf(&sb, " · [Poster](%s)", poster)
	}
	sb.WriteString("\n")

	return sb.String()
}

func renderMarkdown(markdown string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(util.Max(width, 20)),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}
