package ui

import "image/color"

// Theme holds the panel colours for one appearance.
type Theme struct {
	Name       string
	Background color.RGBA
	Panel      color.RGBA
	Text       color.RGBA
	MutedText  color.RGBA
	Button     color.RGBA
	ButtonOff  color.RGBA
	ButtonText color.RGBA
	Error      color.RGBA
}

var (
	// LightTheme is the default appearance.
	LightTheme = Theme{
		Name:       "light",
		Background: color.RGBA{R: 240, G: 240, B: 240, A: 255},
		Panel:      color.RGBA{R: 225, G: 225, B: 228, A: 255},
		Text:       color.RGBA{R: 20, G: 20, B: 24, A: 255},
		MutedText:  color.RGBA{R: 110, G: 110, B: 118, A: 255},
		Button:     color.RGBA{R: 200, G: 200, B: 206, A: 255},
		ButtonOff:  color.RGBA{R: 230, G: 230, B: 232, A: 255},
		ButtonText: color.RGBA{R: 20, G: 20, B: 24, A: 255},
		Error:      color.RGBA{R: 190, G: 30, B: 30, A: 255},
	}
	// DarkTheme matches the reference viewer's dark palette.
	DarkTheme = Theme{
		Name:       "dark",
		Background: color.RGBA{R: 45, G: 45, B: 48, A: 255},
		Panel:      color.RGBA{R: 37, G: 37, B: 38, A: 255},
		Text:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		MutedText:  color.RGBA{R: 160, G: 160, B: 170, A: 255},
		Button:     color.RGBA{R: 63, G: 63, B: 70, A: 255},
		ButtonOff:  color.RGBA{R: 45, G: 45, B: 48, A: 255},
		ButtonText: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Error:      color.RGBA{R: 255, G: 110, B: 100, A: 255},
	}
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == DarkTheme.Name {
		return LightTheme
	}
	return DarkTheme
}

// ThemeByName returns DarkTheme for "dark" and LightTheme otherwise.
func ThemeByName(name string) Theme {
	if name == DarkTheme.Name {
		return DarkTheme
	}
	return LightTheme
}
