package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/devcon/internal/domain"
)

// Main UI styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorSpinner)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

var indicatorColors = map[domain.Color]Color{
	domain.ColorBlue:  ColorIndicatorBlue,
	domain.ColorGreen: ColorIndicatorGreen,
	domain.ColorOff:   ColorIndicatorOff,
	domain.ColorRed:   ColorIndicatorRed,
	domain.ColorWhite: ColorIndicatorWhite,
}

// IndicatorStyle returns the style used to draw an indicator color
func IndicatorStyle(c domain.Color) lipgloss.Style {
	color, ok := indicatorColors[c]
	if !ok {
		color = ColorIndicatorOff
	}
	return lipgloss.NewStyle().Foreground(color)
}

// RenderIndicator draws the indicator as a colored dot
func RenderIndicator(c domain.Color) string {
	symbol := domain.SymbolOn
	if c == domain.ColorOff || c == "" {
		symbol = domain.SymbolOff
	}
	return IndicatorStyle(c).Render(symbol)
}
