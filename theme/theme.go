// Package theme provides color theming for the prompt and picker.
package theme

import "fmt"

// Color represents an RGB color that can render to ANSI.
type Color struct {
	R, G, B uint8
}

// Fg returns the SGR sequence setting this color as foreground.
func (c Color) Fg() string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Bg returns the SGR sequence setting this color as background.
func (c Color) Bg() string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Hex parses a color from a hex string like "d75f5f".
func Hex(s string) Color {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}
	}
	return Color{R: hexByte(s[0:2]), G: hexByte(s[2:4]), B: hexByte(s[4:6])}
}

func hexByte(s string) uint8 {
	var v uint8
	for i := 0; i < 2; i++ {
		v <<= 4
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			v += c - '0'
		case c >= 'a' && c <= 'f':
			v += c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v += c - 'A' + 10
		}
	}
	return v
}

// Theme defines the palette for the prompt chrome: the prompt marker, the
// picker selection, indicators, and feedback lines.
type Theme struct {
	Name string

	Prompt     Color // prompt marker
	Selected   Color // picker selection foreground
	SelectedBg Color // picker selection background
	Dim        Color // indicators, descriptions
	Accent     Color // filter echo, argument hints
	Error      Color
}

// Built-in themes.
var (
	DefaultDark = &Theme{
		Name:       "default-dark",
		Prompt:     Hex("5fd7d7"),
		Selected:   Hex("e0e0e0"),
		SelectedBg: Hex("3a3a3a"),
		Dim:        Hex("666666"),
		Accent:     Hex("5fd75f"),
		Error:      Hex("d75f5f"),
	}

	SolarizedDark = &Theme{
		Name:       "solarized-dark",
		Prompt:     Hex("2aa198"),
		Selected:   Hex("fdf6e3"),
		SelectedBg: Hex("073642"),
		Dim:        Hex("586e75"),
		Accent:     Hex("859900"),
		Error:      Hex("dc322f"),
	}

	GruvboxDark = &Theme{
		Name:       "gruvbox-dark",
		Prompt:     Hex("8ec07c"),
		Selected:   Hex("ebdbb2"),
		SelectedBg: Hex("3c3836"),
		Dim:        Hex("928374"),
		Accent:     Hex("b8bb26"),
		Error:      Hex("fb4934"),
	}

	Nord = &Theme{
		Name:       "nord",
		Prompt:     Hex("88c0d0"),
		Selected:   Hex("eceff4"),
		SelectedBg: Hex("3b4252"),
		Dim:        Hex("4c566a"),
		Accent:     Hex("a3be8c"),
		Error:      Hex("bf616a"),
	}
)

// All contains all built-in themes for iteration.
var All = []*Theme{
	DefaultDark,
	SolarizedDark,
	GruvboxDark,
	Nord,
}

// Current is the active theme.
var Current = DefaultDark

// currentIndex tracks position in All for cycling.
var currentIndex = 0

// Set changes to a specific theme by name.
func Set(name string) bool {
	for i, t := range All {
		if t.Name == name {
			Current = t
			currentIndex = i
			return true
		}
	}
	return false
}

// Next cycles to the next theme and returns it.
func Next() *Theme {
	currentIndex = (currentIndex + 1) % len(All)
	Current = All[currentIndex]
	return Current
}
