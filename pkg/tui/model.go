// Package tui is a terminal front-end for the site search box.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nextwave/siteclient/pkg/searchui"
	"github.com/nextwave/siteclient/pkg/sitesearch"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	typeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	dangerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the search screen. It acts as the input, trigger, overlay and navigator
// of a bound search controller.
type Model struct {
	input      textinput.Model
	spinner    spinner.Model
	panel      *Panel
	controller *searchui.Controller

	onInput func(string)
	onEnter func(string)
	onClick func()

	state    searchui.State
	selected int
	open     bool
	chosen   string
}

// New builds the model and binds a controller to it.
func New(ctx context.Context, searcher searchui.Searcher, opts searchui.Options) (*Model, error) {
	ti := textinput.New()
	ti.Placeholder = "Search the site..."
	ti.Prompt = "› "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		input:    ti,
		spinner:  sp,
		panel:    NewPanel(),
		selected: -1,
		open:     true,
	}
	m.controller = searchui.Bind(ctx, searchui.Surface{
		Input:     m,
		Trigger:   m,
		Results:   m.panel,
		Overlay:   m,
		Navigator: m,
	}, searcher, opts)
	if m.controller == nil {
		return nil, fmt.Errorf("no searcher configured")
	}
	return m, nil
}

func (m *Model) Value() string { return m.input.Value() }

func (m *Model) OnInput(fn func(string)) { m.onInput = fn }

func (m *Model) OnEnter(fn func(string)) { m.onEnter = fn }

func (m *Model) OnClick(fn func()) { m.onClick = fn }

// Close hides the result list.
func (m *Model) Close() { m.open = false }

// Navigate records the URL of the opened result.
func (m *Model) Navigate(url string) { m.chosen = url }

// Chosen returns the URL of the opened result, if any.
func (m *Model) Chosen() string { return m.chosen }

func (m *Model) Controller() *searchui.Controller { return m.controller }

// Shutdown stops the controller.
func (m *Model) Shutdown() {
	m.controller.Close()
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.panel.listen())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case stateChangedMsg:
		m.state = m.panel.Latest()
		m.selected = -1
		m.open = true
		cmds := []tea.Cmd{m.panel.listen()}
		if m.state.Kind == searchui.StateLoading {
			cmds = append(cmds, m.spinner.Tick)
		}
		return m, tea.Batch(cmds...)
	case spinner.TickMsg:
		if m.state.Kind != searchui.StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down":
		if m.selected < len(m.visibleResults())-1 {
			m.selected++
		}
		return m, nil
	case "tab":
		if m.onClick != nil {
			m.onClick()
		}
		return m, nil
	case "enter":
		results := m.visibleResults()
		if m.selected >= 0 && m.selected < len(results) {
			m.controller.Open(results[m.selected])
			return m, tea.Quit
		}
		if m.onEnter != nil {
			m.onEnter(m.input.Value())
		}
		return m, nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before && m.onInput != nil {
		m.onInput(after)
	}
	return m, cmd
}

func (m *Model) visibleResults() []sitesearch.Result {
	if !m.open || m.state.Kind != searchui.StateResults {
		return nil
	}
	return m.state.Results
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.open {
		switch m.state.Kind {
		case searchui.StateLoading:
			b.WriteString(m.spinner.View() + " Searching...\n")
		case searchui.StateFailed:
			b.WriteString(dangerStyle.Render(searchui.FailureMessage) + "\n")
		case searchui.StateResults:
			if m.state.NoResults() {
				b.WriteString(mutedStyle.Render(searchui.NoResultsMessage) + "\n")
			}
			for i, result := range m.state.Results {
				title := titleStyle.Render(result.Title)
				cursor := "  "
				if i == m.selected {
					title = selectedStyle.Render(result.Title)
					cursor = "› "
				}
				b.WriteString(cursor + title + " " + typeStyle.Render(result.Type) + "\n")
			}
		}
	}
	b.WriteString("\n" + helpStyle.Render("enter search/open • tab search • ↑/↓ select • esc quit"))
	return b.String()
}
