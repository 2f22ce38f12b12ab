package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"slashline/render"
	"slashline/selector"
	"slashline/theme"
)

// ErrCancelled is returned by Run when the user presses Ctrl+C.
var ErrCancelled = errors.New("prompt cancelled")

// Prompt reads one line of input with editing, history navigation, bracketed
// paste, and a slash-command picker. Zero-value fields get sane defaults.
type Prompt struct {
	In  *os.File  // defaults to os.Stdin
	Out io.Writer // defaults to os.Stdout

	Text       string          // prompt marker, defaults to "> "
	Items      []selector.Item // picker items; empty disables the picker
	History    []string        // past entries, oldest first; never mutated
	MaxVisible int             // picker viewport height, defaults to 8
	Styler     selector.Styler // picker line styling, defaults to themed
}

func (p *Prompt) defaults() {
	if p.In == nil {
		p.In = os.Stdin
	}
	if p.Out == nil {
		p.Out = os.Stdout
	}
	if p.Text == "" {
		p.Text = "> "
	}
	if p.MaxVisible == 0 {
		p.MaxVisible = 8
	}
	if p.Styler == nil {
		p.Styler = theme.Styled{}
	}
}

// Run performs one prompt invocation and returns the resolved input: the
// edited line, or a composed "/command argument" string when the picker was
// used. Returns ErrCancelled on Ctrl+C.
//
// When stdin is not a terminal (piped input), Run degrades to a single
// buffered line read returned verbatim: no editing, no picker.
func (p *Prompt) Run() (string, error) {
	p.defaults()

	if !isatty.IsTerminal(p.In.Fd()) {
		return readPlainLine(p.In)
	}

	term, err := render.NewTerminal(p.In)
	if err != nil {
		return readPlainLine(p.In)
	}
	if err := term.Acquire(); err != nil {
		return "", fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Release()

	io.WriteString(p.Out, render.BracketedPasteOn)
	defer io.WriteString(p.Out, render.BracketedPasteOff)

	c := NewController(p.Items, p.History, p.MaxVisible)
	r := &renderer{
		out:    p.Out,
		text:   p.Text,
		styler: p.Styler,
		width:  term.Width(80),
	}
	r.draw(c)
	defer r.finish()

	// Single-threaded event loop: bytes are handled strictly in arrival
	// order, because paste-marker and escape detection depend on adjacency.
	buf := make([]byte, 256)
	for !c.Done() {
		n, err := p.In.Read(buf)
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", fmt.Errorf("reading input: %w", err)
		}
		if n == 0 {
			// Idle tick: a held-back partial marker was a real keypress.
			if c.FlushIdle() && !c.Done() {
				r.draw(c)
			}
			continue
		}
		c.FeedBytes(buf[:n])
		if !c.Done() {
			r.draw(c)
		}
	}

	if c.Cancelled() {
		return "", ErrCancelled
	}
	return c.Resolved(), nil
}

// readPlainLine is the non-interactive fallback: one line, verbatim.
func readPlainLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	return line, nil
}
