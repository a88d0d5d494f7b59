package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - prompt
)

// Indicator colors
const (
	ColorIndicatorBlue  Color = "33"
	ColorIndicatorGreen Color = "2"
	ColorIndicatorOff   Color = "8"
	ColorIndicatorRed   Color = "1"
	ColorIndicatorWhite Color = "255"
)

// UI semantic colors
const (
	ColorError   Color = "196" // Bright red
	ColorMuted   Color = "241" // Gray - secondary text
	ColorSubtle  Color = "245" // Light gray - labels
	ColorSpinner Color = "205" // Pink
	ColorVersion Color = "240" // Dark gray
)
