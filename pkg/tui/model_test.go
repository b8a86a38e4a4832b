package tui

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/nextwave/siteclient/pkg/searchui"
	"github.com/nextwave/siteclient/pkg/shared/sched"
	"github.com/nextwave/siteclient/pkg/sitesearch"
)

type stubSearcher struct {
	mu      sync.Mutex
	queries []string
	results []sitesearch.Result
}

func (s *stubSearcher) Search(_ context.Context, query string) ([]sitesearch.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
	return s.results, nil
}

func (s *stubSearcher) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

func newTestModel(t *testing.T, searcher *stubSearcher) (*Model, *sched.Manual) {
	t.Helper()
	scheduler := &sched.Manual{}
	m, err := New(context.Background(), searcher, searchui.Options{Scheduler: scheduler, Log: zerolog.Nop()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(m.Shutdown)
	return m, scheduler
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// settle waits for the controller and applies the newest panel state.
func settle(m *Model) {
	m.Controller().Wait()
	m.Update(stateChangedMsg{})
}

func TestTypingIsDebounced(t *testing.T) {
	searcher := &stubSearcher{results: []sitesearch.Result{{URL: "/about", Title: "About", Type: "Page"}}}
	m, scheduler := newTestModel(t, searcher)

	typeText(m, "abo")
	if scheduler.Active() != 1 {
		t.Fatalf("expected a single pending search, got %d", scheduler.Active())
	}
	if len(searcher.calls()) != 0 {
		t.Fatalf("search ran before the debounce delay")
	}

	scheduler.Fire()
	settle(m)
	if calls := searcher.calls(); len(calls) != 1 || calls[0] != "abo" {
		t.Fatalf("expected one search for abo, got %v", calls)
	}
	if !strings.Contains(m.View(), "About") {
		t.Fatalf("expected result in view:\n%s", m.View())
	}
}

func TestEnterSubmitsAndOpensSelection(t *testing.T) {
	searcher := &stubSearcher{results: []sitesearch.Result{
		{URL: "/careers", Title: "Careers", Type: "Page"},
		{URL: "/blog/launch", Title: "Launch", Type: "Blog"},
	}}
	m, _ := newTestModel(t, searcher)

	typeText(m, "a")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	settle(m)
	if len(searcher.calls()) != 1 {
		t.Fatalf("enter should search immediately, got %v", searcher.calls())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Chosen() != "/blog/launch" {
		t.Fatalf("expected second result chosen, got %q", m.Chosen())
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("opening a result should quit")
	}
	if strings.Contains(m.View(), "Careers") {
		t.Fatalf("results should be hidden after opening one")
	}
}

func TestTabTriggersSearch(t *testing.T) {
	searcher := &stubSearcher{}
	m, _ := newTestModel(t, searcher)

	typeText(m, "zzz")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	settle(m)
	if calls := searcher.calls(); len(calls) != 1 || calls[0] != "zzz" {
		t.Fatalf("expected tab to search for zzz, got %v", calls)
	}
	if !strings.Contains(m.View(), searchui.NoResultsMessage) {
		t.Fatalf("expected no results message:\n%s", m.View())
	}
}

func TestPanelKeepsLatestState(t *testing.T) {
	p := NewPanel()
	p.Render(searchui.State{Kind: searchui.StateLoading, Query: "a"})
	p.Render(searchui.State{Kind: searchui.StateEmpty})
	if p.Latest().Kind != searchui.StateEmpty {
		t.Fatalf("expected latest state to win")
	}
	if msg := p.listen()(); msg != (stateChangedMsg{}) {
		t.Fatalf("unexpected msg %v", msg)
	}
}
