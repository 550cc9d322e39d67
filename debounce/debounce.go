// Package debounce turns a stream of keystroke-level values into settled values once input has been quiet for a fixed period.
package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cinefind/cinefind/key"
	"github.com/spf13/viper"
)

// DefaultWait is the quiet period used when none is configured.
const DefaultWait = 500 * time.Millisecond

// SettledMsg is delivered when the quiet period following an edit elapses.
type SettledMsg struct {
	Seq   int
	Value string
}

// Debouncer tracks the latest edit. It is not safe for concurrent use; the bubbletea update loop owns it.
type Debouncer struct {
	wait    time.Duration
	seq     int
	pending bool
	settled string
	primed  bool
}

// New returns a debouncer with the given quiet period.
func New(wait time.Duration) *Debouncer {
	if wait <= 0 {
		wait = DefaultWait
	}
	return &Debouncer{wait: wait}
}

// NewFromConfig returns a debouncer using search.debounce_ms.
func NewFromConfig() *Debouncer {
	return New(time.Duration(viper.GetInt(key.SearchDebounceMillis)) * time.Millisecond)
}

// Wait returns the quiet period.
func (d *Debouncer) Wait() time.Duration {
	return d.wait
}

// Update records value as the latest edit and schedules its settlement.
// Any tick scheduled by an earlier call becomes stale.
func (d *Debouncer) Update(value string) tea.Cmd {
	d.seq++
	d.pending = true
	seq := d.seq
	return tea.Tick(d.wait, func(time.Time) tea.Msg { return SettledMsg{Seq: seq, Value: value} })
}

// Settle accepts msg only when it belongs to the latest edit and its value differs from the previously settled one.
func (d *Debouncer) Settle(msg SettledMsg) (string, bool) {
	if msg.Seq != d.seq {
		return "", false
	}

	d.pending = false
	if d.primed && msg.Value == d.settled {
		return "", false
	}

	d.settled = msg.Value
	d.primed = true
	return msg.Value, true
}

// Prime marks value as already settled, so settling to it again does not emit. Used for the value fetched on startup.
func (d *Debouncer) Prime(value string) {
	d.settled = value
	d.primed = true
}

// Pending reports whether an edit is waiting for its quiet period.
func (d *Debouncer) Pending() bool {
	return d.pending
}

// Value returns the last settled value.
func (d *Debouncer) Value() string {
	return d.settled
}
