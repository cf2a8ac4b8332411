// Package progress tracks concurrently in-flight named operations and
// renders them as a single live status line on stderr.
package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleSpinner = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleCount   = lipgloss.NewStyle().Bold(true)
	styleLabels  = lipgloss.NewStyle().Faint(true)
)

// Slot is a stable handle to one in-flight operation. Handles are
// generation-tagged so a reused arena index can never release a newer entry.
type Slot struct {
	index      int
	generation uint64
}

type entry struct {
	label      string
	generation uint64
	live       bool
}

// Tracker is a concurrency-safe registry of in-flight labelled operations.
// Every insert and remove synchronously redraws the status line. The zero
// value is not usable; construct with New.
type Tracker struct {
	mu       sync.Mutex
	entries  []entry
	free     []int
	count    int
	finished bool

	out     io.Writer
	lastLen int
}

// New returns a Tracker that renders to out. Pass io.Discard (or any
// non-terminal writer chosen by the caller) to suppress rendering.
func New(out io.Writer) *Tracker {
	return &Tracker{out: out}
}

// Begin registers a new in-flight operation and redraws the status line.
func (t *Tracker) Begin(label string) Slot {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finished {
		panic("progress: Begin after Finish")
	}

	var idx int
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.entries = append(t.entries, entry{})
		idx = len(t.entries) - 1
	}
	e := &t.entries[idx]
	e.generation++
	e.label = label
	e.live = true
	t.count++

	t.render()
	return Slot{index: idx, generation: e.generation}
}

// End releases a slot returned by Begin and redraws the status line. Ending
// a slot twice is a no-op.
func (t *Tracker) End(s Slot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s.index < 0 || s.index >= len(t.entries) {
		return
	}
	e := &t.entries[s.index]
	if !e.live || e.generation != s.generation {
		return
	}
	e.live = false
	e.label = ""
	t.free = append(t.free, s.index)
	t.count--

	t.render()
}

// InFlight returns the number of operations begun but not yet ended.
func (t *Tracker) InFlight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Finish clears the status line. The tracker must not be used afterwards;
// call it once, after every wrapped operation has completed.
func (t *Tracker) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.finished = true
	t.clear()
}

// Wrap runs fn with an in-flight entry for label, releasing it on every exit
// path. This is the entry point callers should use.
func Wrap[T any](t *Tracker, label string, fn func() (T, error)) (T, error) {
	slot := t.Begin(label)
	defer t.End(slot)
	return fn()
}

// render redraws the aggregate line. Caller holds t.mu.
func (t *Tracker) render() {
	labels := make([]string, 0, t.count)
	for _, e := range t.entries {
		if e.live {
			labels = append(labels, e.label)
		}
	}
	line := fmt.Sprintf("%s %s %s",
		styleSpinner.Render("⠿"),
		styleCount.Render(fmt.Sprintf("(%d)", len(labels))),
		styleLabels.Render(strings.Join(labels, ", ")))
	t.draw(line)
}

// clear blanks the line and returns the cursor to column zero. Caller holds
// t.mu.
func (t *Tracker) clear() {
	fmt.Fprintf(t.out, "\r%s\r", strings.Repeat(" ", t.lastLen))
	t.lastLen = 0
}

func (t *Tracker) draw(line string) {
	width := lipgloss.Width(line)
	pad := ""
	if width < t.lastLen {
		pad = strings.Repeat(" ", t.lastLen-width)
	}
	fmt.Fprintf(t.out, "\r%s%s", line, pad)
	t.lastLen = width
}
