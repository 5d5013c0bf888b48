package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/formatter"
	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PromptView ViewState = iota
	SearchingView
	HitView
	VerdictView
)

// Searcher performs one resumable chart scan. Implemented by tasks.Engine.
type Searcher interface {
	Search(ctx context.Context, chart models.Chart, artist string, start time.Time) (*models.FoundResult, error)
}

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	searcher Searcher
	now      func() time.Time

	input        textinput.Model
	query        string // original casing, for display
	queryLowered string

	charts    []models.Chart
	chartIdx  int
	nextStart time.Time
	hits      int

	lastChart models.Chart
	lastHit   models.FoundResult

	err  error
	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, searcher Searcher, now func() time.Time) *Model {
	if now == nil {
		now = time.Now
	}

	input := textinput.New()
	input.Placeholder = "artist name"
	input.CharLimit = 120
	input.Focus()

	return &Model{
		ctx:      ctx,
		view:     PromptView,
		searcher: searcher,
		now:      now,
		input:    input,
		charts:   models.Charts(),
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// Init starts the input cursor blinking.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.view {
		case PromptView:
			return m.handlePromptKeys(msg)
		case SearchingView:
			if msg.String() == "ctrl+c" || msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		case HitView:
			return m.handleHitKeys(msg)
		case VerdictView:
			return m.handleVerdictKeys(msg)
		}

	case hitFoundMsg:
		m.view = HitView
		m.lastChart = msg.chart
		m.lastHit = msg.result
		m.hits++

		hitDate, err := models.ParseDate(msg.result.Date)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.nextStart = hitDate.AddDate(0, 0, -7)
		return m, nil

	case chartExhaustedMsg:
		m.chartIdx++
		if m.chartIdx < len(m.charts) {
			m.nextStart = m.now()
			return m, m.searchNext()
		}
		m.view = VerdictView
		return m, nil

	case searchFailedMsg:
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case PromptView:
		return m.renderPrompt()
	case SearchingView:
		return m.renderSearching()
	case HitView:
		return m.renderHit()
	case VerdictView:
		return m.renderVerdict()
	default:
		return ""
	}
}

func (m *Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		query := strings.TrimSpace(m.input.Value())
		if query == "" {
			return m, nil
		}
		return m, m.startSearch(query)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleHitKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "c":
		m.view = SearchingView
		return m, m.searchNext()
	}
	return m, nil
}

func (m *Model) handleVerdictKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "s":
		m.view = PromptView
		m.input.Reset()
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// startSearch begins a fresh two-chart scan for the entered artist.
func (m *Model) startSearch(query string) tea.Cmd {
	m.query = query
	m.queryLowered = strings.ToLower(query)
	m.chartIdx = 0
	m.hits = 0
	m.nextStart = m.now()
	m.view = SearchingView
	return m.searchNext()
}

// searchNext resumes the scan of the current chart from nextStart.
func (m *Model) searchNext() tea.Cmd {
	chart := m.charts[m.chartIdx]
	start := m.nextStart

	return func() tea.Msg {
		hit, err := m.searcher.Search(m.ctx, chart, m.queryLowered, start)
		if err != nil {
			return searchFailedMsg{err: err}
		}
		if hit == nil {
			return chartExhaustedMsg{chart: chart}
		}
		return hitFoundMsg{chart: chart, result: *hit}
	}
}

func (m *Model) renderPrompt() string {
	title := styles.title.Render("WUOG In-Philosophy Checker")
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.submit, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n\n%s", title, m.input.View(), helpView)
}

func (m *Model) renderSearching() string {
	chart := m.charts[m.chartIdx]
	return fmt.Sprintf("Searching in %s for %q...", chart.DisplayName(), m.query)
}

func (m *Model) renderHit() string {
	title := styles.warn.Render(formatter.HitSummary(m.query, m.lastChart, m.lastHit))
	link := styles.help.Render(fmt.Sprintf("( %s )", formatter.ChartURL(m.lastChart, m.lastHit.Date)))
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.continueKey, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n\n%s", title, link, helpView)
}

func (m *Model) renderVerdict() string {
	var verdict string
	if m.hits == 0 {
		verdict = styles.ok.Render(fmt.Sprintf("%s not found, you're good to go!", m.query))
	} else {
		verdict = styles.err.Render(fmt.Sprintf("%s charted %d time(s), not in philosophy", m.query, m.hits))
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.again, m.keys.quit})
	return fmt.Sprintf("%s\n\n%s", verdict, helpView)
}
