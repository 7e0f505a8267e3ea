package tui

import (
	"sync"

	"github.com/MKhiriev/go-landing-builder/internal/editor"
	tea "github.com/charmbracelet/bubbletea"
)

// stateFeed hands editor snapshots from session goroutines to the program.
// Only the latest snapshot is kept; older ones are dropped unread.
type stateFeed struct {
	mu     sync.Mutex
	ch     chan editor.State
	closed bool
}

func newStateFeed() *stateFeed {
	return &stateFeed{ch: make(chan editor.State, 1)}
}

func (f *stateFeed) push(s editor.State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}

	select {
	case <-f.ch:
	default:
	}
	f.ch <- s
}

// wait returns a command that delivers the next snapshot as a stateMsg. It
// yields nil once the feed is closed.
func (f *stateFeed) wait() tea.Cmd {
	return func() tea.Msg {
		s, ok := <-f.ch
		if !ok {
			return nil
		}
		return stateMsg{state: s}
	}
}

func (f *stateFeed) close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	close(f.ch)
}
