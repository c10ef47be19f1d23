package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background tcell.Color
	Foreground tcell.Color
	Accent     tcell.Color // title, selection and status line
	ErrorFg    tcell.Color
	ValidFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background: tcell.ColorDefault,
		Foreground: tcell.ColorSilver,
		Accent:     tcell.ColorTeal,
		ErrorFg:    tcell.ColorRed,
		ValidFg:    tcell.ColorGreen,
	}
}
