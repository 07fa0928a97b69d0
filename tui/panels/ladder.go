package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/r-4spberry/markevy/internal/sim"
	"github.com/r-4spberry/markevy/tui/styles"
)

// LadderPanel shows the selected asset's last-day order lists, buys and
// sells side by side in auction priority order.
type LadderPanel struct {
	asset sim.AssetSnapshot
	ok    bool

	focused bool
	width   int
	height  int
}

// NewLadderPanel creates a new order ladder panel.
func NewLadderPanel() *LadderPanel {
	return &LadderPanel{}
}

// Init initializes the panel.
func (p *LadderPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *LadderPanel) Update(msg tea.Msg) (*LadderPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *LadderPanel) View() string {
	var content strings.Builder

	title := "Order Ladder"
	if p.ok {
		title = fmt.Sprintf("Order Ladder — %s (day %d)", p.asset.Symbol, p.snapDay())
	}

	header := fmt.Sprintf("%-14s   %-14s", "Buys", "Sells")
	content.WriteString(styles.HeaderStyle.Render(header))
	content.WriteString("\n")
	content.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("%6s %7s   %6s %7s", "Trader", "Price", "Trader", "Price")))
	content.WriteString("\n")

	maxRows := p.height - 7
	if maxRows < 1 {
		maxRows = 1
	}

	rows := len(p.asset.LastDayBuys)
	if len(p.asset.LastDaySells) > rows {
		rows = len(p.asset.LastDaySells)
	}
	if rows > maxRows {
		rows = maxRows
	}

	for i := 0; i < rows; i++ {
		buyCell := strings.Repeat(" ", 14)
		if i < len(p.asset.LastDayBuys) {
			o := p.asset.LastDayBuys[i]
			buyCell = styles.BuyStyle.Render(fmt.Sprintf("%6d %7.2f", o.Trader, o.Price))
		}
		sellCell := ""
		if i < len(p.asset.LastDaySells) {
			o := p.asset.LastDaySells[i]
			sellCell = styles.SellStyle.Render(fmt.Sprintf("%6d %7.2f", o.Trader, o.Price))
		}
		content.WriteString(buyCell + "   " + sellCell)
		if i < rows-1 {
			content.WriteString("\n")
		}
	}

	if rows == 0 {
		content.WriteString(lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("No orders yesterday"))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	panel := lipgloss.JoinVertical(lipgloss.Left, styles.RenderTitle(title, p.focused), content.String())
	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *LadderPanel) snapDay() int {
	return len(p.asset.History) - 1
}

// SetFocus sets the focus state of the panel.
func (p *LadderPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *LadderPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetAsset points the ladder at an asset snapshot.
func (p *LadderPanel) SetAsset(asset sim.AssetSnapshot, ok bool) {
	p.asset = asset
	p.ok = ok
}
