package prompt

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"slashline/render"
	"slashline/selector"
)

// renderer redraws the input line and any picker viewport in place, using
// relative cursor movement so the terminal history never scrolls away.
type renderer struct {
	out    io.Writer
	text   string // prompt marker
	styler selector.Styler
	width  int
	extra  int // lines drawn below the input last frame
}

// frame builds the current display: the input line, the cursor column, and
// any lines below it. Line count below is deterministic from state, which is
// what lets erase logic never leave stale output.
func (r *renderer) frame(c *Controller) (line string, col int, below []string) {
	switch c.State() {
	case StateSelector:
		filter := c.Selector().Filter()
		line = r.text + "/" + filter
		col = runewidth.StringWidth(r.text + "/" + filter)
		below = c.Selector().Render(r.width, r.styler)
	case StateSkillArg:
		pending := c.Pending()
		prefix := r.text + "/" + pending.Name + " "
		buf := c.ArgBuffer()
		line = prefix + buf.Text()
		col = runewidth.StringWidth(prefix + buf.BeforeCursor())
		if pending.ArgHint != "" && buf.Len() == 0 {
			below = []string{r.styler.Indicator("  " + pending.ArgHint)}
		}
	default:
		buf := c.Buffer()
		line = r.text + buf.Text()
		col = runewidth.StringWidth(r.text + buf.BeforeCursor())
	}

	if notice := c.TakeNotice(); notice != "" {
		below = append(below, r.styler.Notice(notice))
	}
	return line, col, below
}

// draw writes the frame, erasing whatever the previous frame left below.
func (r *renderer) draw(c *Controller) {
	line, col, below := r.frame(c)

	var sb strings.Builder
	sb.WriteString(render.CursorHide)
	sb.WriteString("\r" + render.ClearLine)
	sb.WriteString(line)

	rows := len(below)
	if r.extra > rows {
		rows = r.extra
	}
	for i := 0; i < rows; i++ {
		sb.WriteString("\r\n" + render.ClearLine)
		if i < len(below) {
			sb.WriteString(below[i])
		}
	}
	sb.WriteString(render.CursorUp(rows))
	sb.WriteString("\r")
	sb.WriteString(render.CursorRight(col))
	sb.WriteString(render.CursorShow)

	io.WriteString(r.out, sb.String())
	r.extra = len(below)
}

// finish erases any picker lines and moves past the input line, leaving the
// final text on screen the way a cooked-mode Enter would.
func (r *renderer) finish() {
	var sb strings.Builder
	for i := 0; i < r.extra; i++ {
		sb.WriteString("\r\n" + render.ClearLine)
	}
	sb.WriteString(render.CursorUp(r.extra))
	sb.WriteString("\r\n")
	io.WriteString(r.out, sb.String())
	r.extra = 0
}
