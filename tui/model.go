package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/r-4spberry/markevy/internal/sim"
	"github.com/r-4spberry/markevy/tui/panels"
	"github.com/r-4spberry/markevy/tui/styles"
)

// dayTickMsg fires when the external day clock elapses.
type dayTickMsg time.Time

// Model is the main TUI application model. It owns the wall-clock day
// timer: every tick it triggers one AdvanceDay on the scheduler and
// refreshes the read-only snapshot the panels render from.
type Model struct {
	scheduler    *sim.Scheduler
	tickInterval time.Duration

	marketPanel *panels.MarketPanel
	chartPanel  *panels.ChartPanel
	ladderPanel *panels.LadderPanel

	paused bool
	width  int
	height int
	err    error
	ready  bool
}

// NewModel creates a new TUI model driving the given scheduler.
func NewModel(scheduler *sim.Scheduler, tickInterval time.Duration) *Model {
	m := &Model{
		scheduler:    scheduler,
		tickInterval: tickInterval,
		marketPanel:  panels.NewMarketPanel(),
		chartPanel:   panels.NewChartPanel(),
		ladderPanel:  panels.NewLadderPanel(),
	}
	m.marketPanel.SetFocus(true)
	m.refresh()
	return m
}

// Err reports the error that stopped the simulation, if any.
func (m *Model) Err() error {
	return m.err
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.marketPanel.Init(),
		m.chartPanel.Init(),
		m.ladderPanel.Init(),
		m.tickDay(),
	)
}

func (m *Model) tickDay() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return dayTickMsg(t)
	})
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		default:
			var cmd tea.Cmd
			m.marketPanel, cmd = m.marketPanel.Update(msg)
			cmds = append(cmds, cmd)
			m.pointPanels()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true

	case dayTickMsg:
		if !m.paused {
			if _, err := m.scheduler.AdvanceDay(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.refresh()
		}
		cmds = append(cmds, m.tickDay())
	}

	return m, tea.Batch(cmds...)
}

// refresh pulls a fresh snapshot and repoints the detail panels.
func (m *Model) refresh() {
	m.marketPanel.SetSnapshot(m.scheduler.Snapshot())
	m.pointPanels()
}

func (m *Model) pointPanels() {
	asset, ok := m.marketPanel.Selected()
	m.chartPanel.SetAsset(asset, ok)
	m.ladderPanel.SetAsset(asset, ok)
}

func (m *Model) layout() {
	leftWidth := m.width * 55 / 100
	rightWidth := m.width - leftWidth
	bodyHeight := m.height - 1 // status bar

	m.marketPanel.SetSize(leftWidth, bodyHeight)
	m.chartPanel.SetSize(rightWidth, bodyHeight*55/100)
	m.ladderPanel.SetSize(rightWidth, bodyHeight-bodyHeight*55/100)
}

// View renders the full screen.
func (m *Model) View() string {
	if !m.ready {
		return "Loading markets..."
	}

	right := lipgloss.JoinVertical(lipgloss.Left, m.chartPanel.View(), m.ladderPanel.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.marketPanel.View(), right)

	status := fmt.Sprintf("%s quit  %s pause  %s select asset",
		styles.StatusBarKeyStyle.Render("q"),
		styles.StatusBarKeyStyle.Render("space"),
		styles.StatusBarKeyStyle.Render("↑/↓"),
	)
	if m.paused {
		status += "  " + styles.PausedStyle.Render("PAUSED")
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, styles.StatusBarStyle.Render(status))
}
