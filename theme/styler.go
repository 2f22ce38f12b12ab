package theme

const reset = "\033[0m"

// Styled renders picker lines with the active theme's colors.
// It implements selector.Styler.
type Styled struct {
	Theme *Theme
}

func (s Styled) theme() *Theme {
	if s.Theme != nil {
		return s.Theme
	}
	return Current
}

func (s Styled) Selected(line string) string {
	t := s.theme()
	return t.SelectedBg.Bg() + t.Selected.Fg() + line + reset
}

func (s Styled) Normal(line string) string {
	return line
}

func (s Styled) Indicator(line string) string {
	return s.theme().Dim.Fg() + line + reset
}

func (s Styled) Empty(line string) string {
	return s.theme().Dim.Fg() + line + reset
}

func (s Styled) Notice(line string) string {
	return s.theme().Error.Fg() + line + reset
}

// Plain renders picker lines without any escape sequences, for NO_COLOR
// terminals and tests. The selection marker the engine prepends is the only
// visual distinction. It implements selector.Styler.
type Plain struct{}

func (Plain) Selected(line string) string  { return line }
func (Plain) Normal(line string) string    { return line }
func (Plain) Indicator(line string) string { return line }
func (Plain) Empty(line string) string     { return line }
func (Plain) Notice(line string) string    { return line }
