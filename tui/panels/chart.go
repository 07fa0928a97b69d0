package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/r-4spberry/markevy/internal/sim"
	"github.com/r-4spberry/markevy/tui/styles"
)

// ChartPanel plots the selected asset's daily price history as a line.
type ChartPanel struct {
	asset sim.AssetSnapshot
	ok    bool

	focused bool
	width   int
	height  int
}

// NewChartPanel creates a new price history chart panel.
func NewChartPanel() *ChartPanel {
	return &ChartPanel{}
}

// Init initializes the panel.
func (p *ChartPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *ChartPanel) Update(msg tea.Msg) (*ChartPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *ChartPanel) View() string {
	var content strings.Builder

	title := "Price History"
	if p.ok {
		title = fmt.Sprintf("Price History — %s", p.asset.Symbol)
	}

	chartWidth := p.width - 14 // room for the price axis
	chartHeight := p.height - 5
	if chartHeight < 4 {
		chartHeight = 4
	}
	if chartWidth < 10 {
		chartWidth = 10
	}

	if !p.ok || len(p.asset.History) < 2 {
		content.WriteString(lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("No trading data yet..."))
	} else {
		content.WriteString(p.renderChart(chartWidth, chartHeight))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	panel := lipgloss.JoinVertical(lipgloss.Left, styles.RenderTitle(title, p.focused), content.String())
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *ChartPanel) renderChart(width, height int) string {
	history := p.asset.History
	if len(history) > width {
		history = history[len(history)-width:]
	}

	minPrice, maxPrice := history[0], history[0]
	for _, v := range history {
		if v < minPrice {
			minPrice = v
		}
		if v > maxPrice {
			maxPrice = v
		}
	}
	priceRange := maxPrice - minPrice
	if priceRange == 0 {
		priceRange = 1
	}
	// 10% padding so the line does not hug the borders.
	minPrice -= priceRange * 0.1
	maxPrice += priceRange * 0.1
	priceRange = maxPrice - minPrice

	// rows[r][c]: row 0 is the highest price.
	rows := make([][]rune, height)
	for r := range rows {
		rows[r] = []rune(strings.Repeat(" ", len(history)))
	}

	toRow := func(price float64) int {
		r := int((maxPrice - price) / priceRange * float64(height-1))
		if r < 0 {
			r = 0
		}
		if r >= height {
			r = height - 1
		}
		return r
	}

	prev := toRow(history[0])
	for c, v := range history {
		r := toRow(v)
		rows[r][c] = '●'
		// Vertical connector toward the previous day's level.
		lo, hi := r, prev
		if lo > hi {
			lo, hi = hi, lo
		}
		for rr := lo + 1; rr < hi; rr++ {
			if rows[rr][c] == ' ' {
				rows[rr][c] = '│'
			}
		}
		prev = r
	}

	lineStyle := styles.PriceUpStyle
	if len(history) >= 2 && history[len(history)-1] < history[0] {
		lineStyle = styles.PriceDownStyle
	}
	if p.asset.Color != "" {
		lineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(p.asset.Color))
	}

	var result strings.Builder
	for r := 0; r < height; r++ {
		axisPrice := maxPrice - float64(r)/float64(height-1)*priceRange
		result.WriteString(styles.ChartAxisStyle.Render(fmt.Sprintf("%9.2f │", axisPrice)))
		result.WriteString(lineStyle.Render(string(rows[r])))
		result.WriteString("\n")
	}
	result.WriteString(styles.ChartAxisStyle.Render("──────────┴" + strings.Repeat("─", len(history))))

	return result.String()
}

// SetFocus sets the focus state of the panel.
func (p *ChartPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *ChartPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetAsset points the chart at an asset snapshot.
func (p *ChartPanel) SetAsset(asset sim.AssetSnapshot, ok bool) {
	p.asset = asset
	p.ok = ok
}
