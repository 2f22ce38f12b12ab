// Package selector implements a filterable, scrollable item picker with a
// bounded viewport.
package selector

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Item is one selectable entry. Name and Description both participate in
// filtering; NeedsArg marks items that require a follow-up argument after
// selection.
type Item struct {
	Name        string
	Description string
	NeedsArg    bool
	ArgHint     string
}

// Styler renders the visual variants of a display line. Themed and plain
// output share the engine and differ only here. Notice covers transient
// messages the prompt renderer draws below the input line.
type Styler interface {
	Selected(line string) string
	Normal(line string) string
	Indicator(line string) string
	Empty(line string) string
	Notice(line string) string
}

// Engine holds the picker state: the full item list, the current filter,
// and the selection/scroll position over the filtered view.
//
// Invariants: 0 <= selected < len(filtered) when filtered is non-empty;
// scroll <= selected < scroll+maxVisible; 0 <= scroll <= max(0, n-maxVisible).
type Engine struct {
	all        []Item
	filtered   []Item
	filter     string
	selected   int
	scroll     int
	maxVisible int
}

// New creates an Engine over a snapshot of items with an empty filter.
// maxVisible caps the viewport height; values below 1 are clamped to 1.
func New(items []Item, maxVisible int) *Engine {
	if maxVisible < 1 {
		maxVisible = 1
	}
	e := &Engine{
		all:        append([]Item(nil), items...),
		maxVisible: maxVisible,
	}
	e.SetFilter("")
	return e
}

// Filter returns the current filter text.
func (e *Engine) Filter() string {
	return e.filter
}

// Len returns the number of items matching the current filter.
func (e *Engine) Len() int {
	return len(e.filtered)
}

// SetFilter recomputes the filtered view. Matching is a case-insensitive
// substring test against name or description; no fuzzy matching, no ranking,
// insertion order preserved. Selection and scroll reset to the top.
func (e *Engine) SetFilter(text string) {
	e.filter = text
	needle := strings.ToLower(text)
	e.filtered = e.filtered[:0]
	for _, item := range e.all {
		if needle == "" ||
			strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) {
			e.filtered = append(e.filtered, item)
		}
	}
	e.selected = 0
	e.scroll = 0
}

// MoveUp moves the selection up one item, scrolling the minimum amount
// needed to keep it visible.
func (e *Engine) MoveUp() bool {
	if e.selected == 0 {
		return false
	}
	e.selected--
	if e.selected < e.scroll {
		e.scroll = e.selected
	}
	return true
}

// MoveDown moves the selection down one item, scrolling the minimum amount
// needed to keep it visible.
func (e *Engine) MoveDown() bool {
	if e.selected >= len(e.filtered)-1 {
		return false
	}
	e.selected++
	if e.selected >= e.scroll+e.maxVisible {
		e.scroll = e.selected - e.maxVisible + 1
	}
	return true
}

// Selected returns the currently selected item, if any.
func (e *Engine) Selected() (Item, bool) {
	if len(e.filtered) == 0 {
		return Item{}, false
	}
	return e.filtered[e.selected], true
}

// Render produces the viewport as display lines: an optional "more above"
// indicator, one line per visible item, an optional "more below" indicator,
// or a single empty-state line. The line count is deterministic from state
// so the caller can erase exactly what was drawn.
func (e *Engine) Render(width int, style Styler) []string {
	if len(e.filtered) == 0 {
		return []string{style.Empty("  (no matching commands)")}
	}

	var lines []string
	if e.scroll > 0 {
		lines = append(lines, style.Indicator(fmt.Sprintf("  … %d more", e.scroll)))
	}

	top := e.scroll
	bottom := e.scroll + e.maxVisible
	if bottom > len(e.filtered) {
		bottom = len(e.filtered)
	}
	for i := top; i < bottom; i++ {
		item := e.filtered[i]
		line := itemLine(item, width)
		if i == e.selected {
			lines = append(lines, style.Selected("▸ "+line))
		} else {
			lines = append(lines, style.Normal("  "+line))
		}
	}

	if rest := len(e.filtered) - bottom; rest > 0 {
		lines = append(lines, style.Indicator(fmt.Sprintf("  … %d more", rest)))
	}
	return lines
}

// itemLine formats "/name  description", truncated to the display width.
func itemLine(item Item, width int) string {
	name := "/" + item.Name
	if item.NeedsArg && item.ArgHint != "" {
		name += " <" + item.ArgHint + ">"
	}
	line := name
	if item.Description != "" {
		line = fmt.Sprintf("%-22s %s", name, item.Description)
	}
	if width > 4 && runewidth.StringWidth(line) > width-2 {
		line = runewidth.Truncate(line, width-2, "…")
	}
	return line
}
