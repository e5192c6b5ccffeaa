package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/kioskboard/internal/refresh"
	"github.com/zappabad/kioskboard/tui/panels"
	"github.com/zappabad/kioskboard/tui/styles"
)

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusNews    PanelFocus = 0
	FocusWeather PanelFocus = 1
)

// Refresher is the part of the refresh service the model reports on.
type Refresher interface {
	Events() <-chan refresh.Event
	NewsState() refresh.NewsState
}

type taskStatus struct {
	fetching bool
	lastOK   time.Time
	count    int
	absent   bool
	err      error
}

// Model is the main TUI application model.
type Model struct {
	updates   <-chan tea.Msg
	refresher Refresher

	// Panels
	newsPanel    *panels.NewsPanel
	weatherPanel *panels.WeatherPanel

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	news    taskStatus
	weather taskStatus

	// Focus management
	focusedPanel PanelFocus

	// Window dimensions
	width  int
	height int

	// Status
	statusMsg string
	statusErr bool
	now       time.Time
	ready     bool
}

// NewModel creates a new TUI model fed by sink and reporting on r.
func NewModel(sink *Sink, r Refresher) *Model {
	return &Model{
		updates:      sink.Updates(),
		refresher:    r,
		newsPanel:    panels.NewNewsPanel(),
		weatherPanel: panels.NewWeatherPanel(),
		keys:         defaultKeyMap(),
		help:         help.New(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(styles.SpinnerStyle),
		),
		focusedPanel: FocusNews,
		now:          time.Now(),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.newsPanel.Init(),
		m.weatherPanel.Init(),
		m.listenUpdates(),
		m.listenEvents(),
		m.spinner.Tick,
		m.clockRefresh(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Focus):
			m.cycleFocus()
		case key.Matches(msg, m.keys.CopyLink):
			if link := m.newsPanel.Link(); link != "" {
				cmds = append(cmds, copyLink(link))
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

	case panels.NewsSlotMsg:
		m.newsPanel.Set(msg)
		cmds = append(cmds, m.listenUpdates())

	case panels.WeatherSlotMsg:
		m.weatherPanel.Set(msg)
		cmds = append(cmds, m.listenUpdates())

	case eventMsg:
		m.handleEvent(refresh.Event(msg))
		cmds = append(cmds, m.listenEvents())

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.err

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case clockMsg:
		m.now = time.Time(msg)
		cmds = append(cmds, m.clockRefresh())
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleEvent(ev refresh.Event) {
	st := &m.news
	if ev.Task == refresh.TaskWeather {
		st = &m.weather
	}

	switch ev.Kind {
	case refresh.FetchStarted:
		st.fetching = true
	case refresh.FetchSucceeded:
		st.fetching = false
		st.lastOK = ev.Time
		st.count = ev.Count
		st.absent = ev.Absent
		st.err = nil
	case refresh.FetchFailed:
		st.fetching = false
		st.err = ev.Err
	}
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	m.newsPanel.SetFocus(m.focusedPanel == FocusNews)
	m.weatherPanel.SetFocus(m.focusedPanel == FocusWeather)

	// Layout:
	// ┌─────────────────────────────┬───────────┐
	// │            News             │  Weather  │
	// └─────────────────────────────┴───────────┘
	sideWidth := m.width / 3
	if sideWidth < 30 {
		sideWidth = 30
	}
	mainWidth := m.width - sideWidth
	bodyHeight := m.height - 1

	m.newsPanel.SetSize(mainWidth, bodyHeight)
	m.weatherPanel.SetSize(sideWidth, bodyHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.newsPanel.View(),
		m.weatherPanel.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

func (m *Model) renderStatusBar() string {
	parts := []string{
		m.taskLine("news", m.news, m.refresher.NewsState().String()),
		m.taskLine("weather", m.weather, ""),
		m.help.View(m.keys),
	}
	if m.statusMsg != "" {
		style := styles.StatusBarDescStyle
		if m.statusErr {
			style = styles.StatusErrorStyle
		}
		parts = append(parts, style.Render(m.statusMsg))
	}

	line := styles.StatusBarDescStyle.Render(m.now.Format("15:04"))
	for _, p := range parts {
		line += " │ " + p
	}
	return styles.StatusBarStyle.Width(m.width).Render(line)
}

func (m *Model) taskLine(name string, st taskStatus, state string) string {
	label := styles.StatusBarKeyStyle.Render(name)

	var detail string
	switch {
	case st.fetching:
		detail = m.spinner.View()
	case st.err != nil:
		detail = styles.StatusErrorStyle.Render("failed")
	case st.lastOK.IsZero():
		detail = "waiting"
	case st.absent:
		detail = "no data " + st.lastOK.Format("15:04")
	default:
		detail = st.lastOK.Format("15:04")
	}
	if state != "" && !st.fetching {
		detail += fmt.Sprintf(" (%s, %d)", state, st.count)
	}
	return label + " " + styles.StatusBarDescStyle.Render(detail)
}

func (m *Model) cycleFocus() {
	m.focusedPanel = (m.focusedPanel + 1) % 2
}

func (m *Model) listenUpdates() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.updates
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) listenEvents() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.refresher.Events()
		if !ok {
			return nil
		}
		return eventMsg(ev)
	}
}

// eventMsg carries a refresh lifecycle event.
type eventMsg refresh.Event

// clockMsg is sent periodically to refresh the status bar clock.
type clockMsg time.Time

func (m *Model) clockRefresh() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

// statusMsg is shown in the status bar.
type statusMsg struct {
	text string
	err  bool
}

func copyLink(link string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(link); err != nil {
			return statusMsg{text: "❌ Copy failed: " + err.Error(), err: true}
		}
		return statusMsg{text: "✓ Copied " + link}
	}
}
