package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7C3AED") // Purple
	AccentColor  = lipgloss.Color("#F59E0B") // Amber

	BuyColor     = lipgloss.Color("#10B981") // Green
	SellColor    = lipgloss.Color("#EF4444") // Red
	NeutralColor = lipgloss.Color("#6B7280") // Gray

	BackgroundColor  = lipgloss.Color("#1F2937")
	BorderColor      = lipgloss.Color("#374151")
	FocusBorderColor = lipgloss.Color("#7C3AED")

	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#6B7280")
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextSecondaryColor)

	RowStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(lipgloss.Color("#374151"))
)

// Text styles
var (
	BuyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(BuyColor)

	SellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SellColor)

	PriceUpStyle = lipgloss.NewStyle().
			Foreground(BuyColor)

	PriceDownStyle = lipgloss.NewStyle().
			Foreground(SellColor)

	ChartAxisStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	PausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)
)

// RenderTitle renders a title bar for a panel.
func RenderTitle(title string, focused bool) string {
	style := TitleStyle
	if focused {
		style = style.Foreground(FocusBorderColor)
	}
	return style.Render(title)
}
