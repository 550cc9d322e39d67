package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/cinefind/cinefind/constant"
	"github.com/cinefind/cinefind/debounce"
	"github.com/cinefind/cinefind/discover"
	"github.com/cinefind/cinefind/internal/ui"
	"github.com/cinefind/cinefind/key"
	"github.com/cinefind/cinefind/style"
	"github.com/cinefind/cinefind/tmdb"
	"github.com/cinefind/cinefind/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	// components
	spinnerC spinner.Model
	inputC   textinput.Model
	moviesC  list.Model
	detailsC viewport.Model
	helpC    help.Model

	ctx       context.Context
	debouncer *debounce.Debouncer
	discovery discover.State
	// seq numbers fetches; the newest one wins.
	seq int

	selectedMovie *tmdb.Movie
	lastError     error

	width, height    int
	searchSuggestion mo.Option[string]
	notifier         *ui.Model

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering the current state so esc can return to it.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{0, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

// headerHeight is the number of lines drawn above the results list.
const headerHeight = 8

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y

	b.moviesC.SetSize(b.width, util.Max(b.height-headerHeight, 3))
	b.moviesC.Help.Width = b.width

	b.detailsC.Width = b.width
	b.detailsC.Height = util.Max(b.height-2, 1)

	b.inputC.Width = b.width - lipgloss.Width(b.inputC.Prompt) - 1
	b.helpC.Width = b.width
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		ctx:           context.Background(),
		debouncer:     debounce.NewFromConfig(),
		discovery:     discover.NewState(viper.GetBool(key.SearchDiscardStale)),
		notifier:      &ui.Model{},
		options:       options,
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	bubble.moviesC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.moviesC.KeyMap = keymap.forList()
	bubble.moviesC.Title = "All Movies"
	bubble.moviesC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.Lavender).Padding(0, 1)
	bubble.moviesC.Styles.NoItems = lipgloss.NewStyle().Foreground(style.FaintColor)
	bubble.moviesC.SetStatusBarItemName("movie", "movies")
	bubble.moviesC.SetFilteringEnabled(false)
	bubble.moviesC.SetShowHelp(false)
	bubble.moviesC.SetShowPagination(false)

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Search through thousands of movies (v%s)", constant.Version)
	bubble.inputC.CharLimit = 100
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)

	bubble.detailsC = viewport.New(0, 0)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.inputC.Focus()

	return &bubble
}
