package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nextwave/siteclient/pkg/searchui"
)

// stateChangedMsg tells the model that the panel holds a new state.
type stateChangedMsg struct{}

// Panel receives renders from the controller and hands them to the bubbletea loop.
// Render never blocks: only the latest state is kept and a single wakeup is queued.
type Panel struct {
	mu     sync.Mutex
	latest searchui.State
	wake   chan struct{}
}

func NewPanel() *Panel {
	return &Panel{wake: make(chan struct{}, 1)}
}

func (p *Panel) Render(state searchui.State) {
	p.mu.Lock()
	p.latest = state
	p.mu.Unlock()
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *Panel) Latest() searchui.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest
}

func (p *Panel) listen() tea.Cmd {
	return func() tea.Msg {
		<-p.wake
		return stateChangedMsg{}
	}
}
