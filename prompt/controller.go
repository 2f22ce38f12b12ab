// Package prompt drives interactive line input: it routes decoded keys to
// the line buffer, the history navigator, the paste aggregator, or the
// slash-command picker, depending on the current mode.
package prompt

import (
	"strings"

	"slashline/history"
	"slashline/key"
	"slashline/lineedit"
	"slashline/paste"
	"slashline/selector"
)

// State identifies the controller mode.
type State int

const (
	StateNormal State = iota
	StateSelector
	StateSkillArg
	StatePasting
	StateResolved
	StateCancelled
)

// Controller is the modal input state machine. It performs no I/O: it is fed
// raw chunks (or synthetic key events in tests) and exposes its state for
// rendering. One Controller serves one prompt invocation.
type Controller struct {
	state    State
	prePaste State // state to restore when a paste envelope closes

	buf    *lineedit.Buffer
	argBuf *lineedit.Buffer
	agg    *paste.Aggregator
	nav    *history.Navigator

	items      []selector.Item
	sel        *selector.Engine
	pending    selector.Item // selection awaiting its argument
	maxVisible int

	resolved string
	notice   string // one-shot message shown under the input line
}

// NewController creates a controller over the available picker items and
// past history entries (oldest first, never mutated).
func NewController(items []selector.Item, histEntries []string, maxVisible int) *Controller {
	return &Controller{
		state:      StateNormal,
		buf:        lineedit.New(),
		argBuf:     lineedit.New(),
		agg:        paste.New(),
		nav:        history.NewNavigator(histEntries),
		items:      items,
		maxVisible: maxVisible,
	}
}

// State returns the current mode.
func (c *Controller) State() State {
	return c.state
}

// Done reports whether the prompt has resolved or been cancelled.
func (c *Controller) Done() bool {
	return c.state == StateResolved || c.state == StateCancelled
}

// Cancelled reports whether the prompt ended via Ctrl+C.
func (c *Controller) Cancelled() bool {
	return c.state == StateCancelled
}

// Resolved returns the final input string once Done.
func (c *Controller) Resolved() string {
	return c.resolved
}

// Buffer exposes the line buffer for rendering.
func (c *Controller) Buffer() *lineedit.Buffer {
	return c.buf
}

// ArgBuffer exposes the skill-argument buffer for rendering.
func (c *Controller) ArgBuffer() *lineedit.Buffer {
	return c.argBuf
}

// Selector returns the active picker engine, nil outside selector mode.
func (c *Controller) Selector() *selector.Engine {
	return c.sel
}

// Pending returns the selected item awaiting its argument.
func (c *Controller) Pending() selector.Item {
	return c.pending
}

// TakeNotice returns and clears the one-shot message line.
func (c *Controller) TakeNotice() string {
	n := c.notice
	c.notice = ""
	return n
}

// FeedBytes consumes one raw read from the terminal, in arrival order.
// Paste envelopes are peeled off first; everything else goes through key
// decoding into HandleEvent.
func (c *Controller) FeedBytes(chunk []byte) {
	for len(chunk) > 0 && !c.Done() {
		pre, res := c.agg.Feed(chunk)
		if len(pre) > 0 {
			for _, ev := range key.Decode(pre) {
				c.HandleEvent(ev)
				if c.Done() {
					return
				}
			}
		}
		switch res.Kind {
		case paste.NotPasting:
			return
		case paste.Continuing:
			if c.state != StatePasting {
				c.prePaste = c.state
				c.state = StatePasting
			}
			return
		case paste.Complete:
			if c.state == StatePasting {
				c.state = c.prePaste
			}
			c.insertText(res.Text)
			chunk = res.Leftover
		}
	}
}

// FlushIdle is called when a read returns no bytes: any held-back partial
// paste marker was a real keypress and is decoded now. Reports whether any
// event was handled.
func (c *Controller) FlushIdle() bool {
	pending := c.agg.TakePending()
	if len(pending) == 0 {
		return false
	}
	for _, ev := range key.Decode(pending) {
		c.HandleEvent(ev)
		if c.Done() {
			break
		}
	}
	return true
}

// insertText applies a completed paste payload to whichever input is live.
func (c *Controller) insertText(text string) {
	if text == "" {
		return
	}
	switch c.state {
	case StateNormal:
		if c.buf.Insert(text) == lineedit.Modified {
			c.nav.Reset()
		}
	case StateSkillArg:
		c.argBuf.Insert(text)
	case StateSelector:
		c.sel.SetFilter(c.sel.Filter() + text)
	}
}

// HandleEvent applies one decoded key to the state machine. Unknown
// sequences are dropped: terminals send harmless codes the table does not
// model, and inserting them would corrupt the buffer.
func (c *Controller) HandleEvent(ev key.Event) {
	if ev.Kind == key.Unknown {
		return
	}
	// Ctrl+C is terminal in every state.
	if ev.Kind == key.Named && ev.Name == key.CtrlC {
		c.state = StateCancelled
		return
	}

	switch c.state {
	case StateNormal:
		c.handleNormal(ev)
	case StateSelector:
		c.handleSelector(ev)
	case StateSkillArg:
		c.handleSkillArg(ev)
	}
}

func (c *Controller) handleNormal(ev key.Event) {
	if ev.Kind == key.Printable {
		// A leading "/" on an empty buffer opens the picker; anywhere else
		// it is ordinary text.
		if ev.Ch == '/' && c.buf.Len() == 0 {
			if len(c.items) == 0 {
				c.notice = "no commands registered"
				return
			}
			c.sel = selector.New(c.items, c.maxVisible)
			c.state = StateSelector
			return
		}
		c.edit(c.buf.Insert(string(ev.Ch)))
		return
	}

	switch ev.Name {
	case key.Enter:
		c.resolved = c.buf.Text()
		c.state = StateResolved
	case key.Escape:
		// Reserved: bare Escape in normal mode is deliberately a no-op.
	case key.Space:
		c.edit(c.buf.Insert(" "))
	case key.Tab:
		// Tab has no completion target in normal mode.
	case key.ArrowUp:
		if text, ok := c.nav.Up(c.buf.Text()); ok {
			c.buf.Set(text)
		}
	case key.ArrowDown:
		if text, ok := c.nav.Down(); ok {
			c.buf.Set(text)
		}
	case key.ArrowLeft:
		c.buf.MoveLeft()
	case key.ArrowRight:
		c.buf.MoveRight()
	case key.WordLeft:
		c.buf.WordLeft()
	case key.WordRight:
		c.buf.WordRight()
	case key.Home, key.CtrlA:
		c.buf.Home()
	case key.End, key.CtrlE:
		c.buf.End()
	case key.Backspace:
		c.edit(c.buf.DeleteBack())
	case key.WordBackspace:
		c.edit(c.buf.DeleteWordBack())
	case key.Delete:
		c.edit(c.buf.DeleteForward())
	case key.WordDelete:
		c.edit(c.buf.DeleteWordForward())
	case key.CtrlU:
		c.edit(c.buf.KillToStart())
	case key.CtrlK:
		c.edit(c.buf.KillToEnd())
	}
}

// edit resets history navigation whenever the buffer content changes, so a
// later ArrowUp starts from the newest entry again.
func (c *Controller) edit(ch lineedit.Change) {
	if ch == lineedit.Modified {
		c.nav.Reset()
	}
}

func (c *Controller) handleSelector(ev key.Event) {
	if ev.Kind == key.Printable {
		c.sel.SetFilter(c.sel.Filter() + string(ev.Ch))
		return
	}

	switch ev.Name {
	case key.Space:
		c.sel.SetFilter(c.sel.Filter() + " ")
	case key.Backspace, key.WordBackspace:
		filter := c.sel.Filter()
		if filter == "" {
			c.closeSelector()
			return
		}
		c.sel.SetFilter(filter[:len(filter)-1])
	case key.ArrowUp:
		c.sel.MoveUp()
	case key.ArrowDown:
		c.sel.MoveDown()
	case key.Enter, key.Tab:
		item, ok := c.sel.Selected()
		if !ok {
			c.notice = "no matching command"
			c.closeSelector()
			return
		}
		if item.NeedsArg {
			c.pending = item
			c.argBuf.ClearLine()
			c.sel = nil
			c.state = StateSkillArg
			return
		}
		c.resolved = "/" + item.Name
		c.state = StateResolved
	case key.Escape:
		c.closeSelector()
	}
}

// closeSelector returns to normal mode with the buffer cleared: the "/" that
// opened the picker was never inserted.
func (c *Controller) closeSelector() {
	c.sel = nil
	c.buf.ClearLine()
	c.state = StateNormal
}

// handleSkillArg is a plain line read for the selected command's argument.
func (c *Controller) handleSkillArg(ev key.Event) {
	if ev.Kind == key.Printable {
		c.argBuf.Insert(string(ev.Ch))
		return
	}

	switch ev.Name {
	case key.Enter:
		arg := strings.TrimSpace(c.argBuf.Text())
		if arg == "" {
			c.resolved = "/" + c.pending.Name
		} else {
			c.resolved = "/" + c.pending.Name + " " + arg
		}
		c.state = StateResolved
	case key.Escape:
		c.pending = selector.Item{}
		c.argBuf.ClearLine()
		c.state = StateNormal
	case key.Space:
		c.argBuf.Insert(" ")
	case key.ArrowLeft:
		c.argBuf.MoveLeft()
	case key.ArrowRight:
		c.argBuf.MoveRight()
	case key.WordLeft:
		c.argBuf.WordLeft()
	case key.WordRight:
		c.argBuf.WordRight()
	case key.Home, key.CtrlA:
		c.argBuf.Home()
	case key.End, key.CtrlE:
		c.argBuf.End()
	case key.Backspace:
		c.argBuf.DeleteBack()
	case key.WordBackspace:
		c.argBuf.DeleteWordBack()
	case key.Delete:
		c.argBuf.DeleteForward()
	case key.WordDelete:
		c.argBuf.DeleteWordForward()
	case key.CtrlU:
		c.argBuf.KillToStart()
	case key.CtrlK:
		c.argBuf.KillToEnd()
	}
}
