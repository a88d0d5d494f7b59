package domain

import "fmt"

// Color is the discrete signal shown by the status indicator (the LED on a
// device, a colored dot on a terminal)
type Color string

const (
	ColorOff   Color = "off"
	ColorRed   Color = "red"
	ColorGreen Color = "green"
	ColorBlue  Color = "blue"
	ColorWhite Color = "white"
)

// Colors lists every valid indicator color
var Colors = []Color{ColorOff, ColorRed, ColorGreen, ColorBlue, ColorWhite}

// Status symbols (Unicode)
const (
	SymbolOff = "○"
	SymbolOn  = "●"
)

// ParseColor converts user input into a Color
func ParseColor(s string) (Color, error) {
	for _, c := range Colors {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown color %q", s)
}
