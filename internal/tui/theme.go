package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
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
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// semantic aliases
const (
	colorAccent  = colorBlue
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorOverlay1
)

var (
	pageTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	pageSubtitleStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	cardStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(1, 2)
	resultCardStyle = cardStyle.BorderForeground(colorSuccess)
	modalStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorFocus).Padding(0, 1)

	cardTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	resultTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	labelStyle        = lipgloss.NewStyle().Foreground(colorSubtext0)
	mutedStyle        = lipgloss.NewStyle().Foreground(colorMuted)
	fieldStyle        = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	focusedFieldStyle = fieldStyle.BorderForeground(colorFocus)

	rateBoxStyle        = lipgloss.NewStyle().Background(colorSurface0).Foreground(colorBlue).Bold(true).Padding(0, 2)
	resultAmountStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	buttonStyle         = lipgloss.NewStyle().Foreground(colorBase).Background(colorAccent).Padding(0, 2)
	disabledButtonStyle = buttonStyle.Background(colorSurface1).Foreground(colorMuted)
	spinnerStyle        = lipgloss.NewStyle().Foreground(colorTeal)
	warnStyle           = lipgloss.NewStyle().Foreground(colorPeach)
	updatedStyle        = lipgloss.NewStyle().Foreground(colorYellow)
	cursorStyle         = lipgloss.NewStyle().Foreground(colorMauve).Bold(true)

	toastStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorError).Foreground(colorText).Padding(0, 1)
	toastTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)
)
