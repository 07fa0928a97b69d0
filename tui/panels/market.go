package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/r-4spberry/markevy/internal/sim"
	"github.com/r-4spberry/markevy/tui/styles"
)

// MarketPanel displays every listed asset with its settled price and
// last-day auction activity.
type MarketPanel struct {
	snap          sim.Snapshot
	selectedIndex int
	focused       bool
	width         int
	height        int
}

// NewMarketPanel creates a new market overview panel.
func NewMarketPanel() *MarketPanel {
	return &MarketPanel{}
}

// Init initializes the panel.
func (p *MarketPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *MarketPanel) Update(msg tea.Msg) (*MarketPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.snap.Assets)-1 {
				p.selectedIndex++
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *MarketPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%-8s %-11s %10s %8s %6s %6s %6s",
		"Symbol", "Sector", "Price", "Chg", "Trades", "Buys", "Sells")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")

	for i, asset := range p.snap.Assets {
		change := "-"
		changeStyle := styles.RowStyle
		if n := len(asset.History); n >= 2 {
			delta := asset.History[n-1] - asset.History[n-2]
			change = fmt.Sprintf("%+.2f", delta)
			if delta > 0 {
				changeStyle = styles.PriceUpStyle
			} else if delta < 0 {
				changeStyle = styles.PriceDownStyle
			}
		}

		if i == p.selectedIndex && p.focused {
			row := fmt.Sprintf("%-8s %-11s %10.2f %8s %6d %6d %6d",
				asset.Symbol, asset.Category, asset.LastPrice, change,
				asset.TradesLastDay, len(asset.LastDayBuys), len(asset.LastDaySells))
			content.WriteString(styles.SelectedRowStyle.Render(row))
		} else {
			symbol := lipgloss.NewStyle().Foreground(lipgloss.Color(asset.Color)).Render(fmt.Sprintf("%-8s", asset.Symbol))
			mid := styles.RowStyle.Render(fmt.Sprintf(" %-11s %10.2f ", asset.Category, asset.LastPrice))
			chg := changeStyle.Render(fmt.Sprintf("%8s", change))
			tail := styles.RowStyle.Render(fmt.Sprintf(" %6d %6d %6d",
				asset.TradesLastDay, len(asset.LastDayBuys), len(asset.LastDaySells)))
			content.WriteString(symbol + mid + chg + tail)
		}
		if i < len(p.snap.Assets)-1 {
			content.WriteString("\n")
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle(fmt.Sprintf("Market — Day %d", p.snap.Day), p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *MarketPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *MarketPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetSnapshot replaces the displayed market state.
func (p *MarketPanel) SetSnapshot(snap sim.Snapshot) {
	p.snap = snap
	if p.selectedIndex >= len(snap.Assets) {
		p.selectedIndex = 0
	}
}

// Selected returns the currently selected asset and whether one exists.
func (p *MarketPanel) Selected() (sim.AssetSnapshot, bool) {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.snap.Assets) {
		return p.snap.Assets[p.selectedIndex], true
	}
	return sim.AssetSnapshot{}, false
}
