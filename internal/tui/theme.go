package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the wizard uses.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorMuted   = colorSubtext0
	colorBorder  = colorSurface2
	colorPrice   = colorPeach
)

var (
	brandStyle  = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	headerStyle = lipgloss.NewStyle().Background(colorMantle).Foreground(colorText).Padding(0, 1)
	heroStyle   = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	priceStyle  = lipgloss.NewStyle().Foreground(colorPrice).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(colorTeal).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
	cursorStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			Width(30)
	activeCardStyle = cardStyle.BorderForeground(colorFocus)
	chosenCardStyle = cardStyle.BorderForeground(colorSuccess)

	stepActiveStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	stepDoneStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	stepPendingStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMauve).
			Background(colorBase).
			Padding(1, 2)
	modalTitleStyle = lipgloss.NewStyle().Foreground(colorMauve).Bold(true)

	statusBarStyle    = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().Foreground(colorError).Background(colorSurface0)
	statusWarnStyle   = lipgloss.NewStyle().Foreground(colorWarning).Background(colorSurface0)
	footerStyle       = lipgloss.NewStyle().Background(colorMantle)
	footerKeyStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	footerDescStyle   = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	historyHeadStyle  = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
)
