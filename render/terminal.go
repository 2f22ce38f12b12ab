// Package render handles raw terminal mode and ANSI line control.
package render

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Terminal owns the raw-mode state of a tty. Raw mode is a process-wide
// exclusive resource: only one holder at a time, enforced by Acquire/Release.
type Terminal struct {
	fd       int
	original unix.Termios
	held     bool
}

// NewTerminal creates a terminal controller for the given file.
// Fails if the file is not a tty.
func NewTerminal(f *os.File) (*Terminal, error) {
	fd := int(f.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("not a terminal: %w", err)
	}
	return &Terminal{fd: fd, original: *termios}, nil
}

// Acquire puts the terminal into raw mode for direct character input.
// Acquiring while already held is an invariant violation: it would mean two
// readers consuming the same byte stream.
func (t *Terminal) Acquire() error {
	if t.held {
		return fmt.Errorf("raw mode already held")
	}
	raw := t.original
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	// VMIN=0 + VTIME=1: reads return within 100ms even with no input, so
	// the event loop gets idle ticks to flush held-back marker prefixes.
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &raw); err != nil {
		return err
	}
	t.held = true
	return nil
}

// Release restores the original terminal mode. Safe to call when not held,
// so callers can defer it on every exit path.
func (t *Terminal) Release() error {
	if !t.held {
		return nil
	}
	t.held = false
	return unix.IoctlSetTermios(t.fd, ioctlSetTermios, &t.original)
}

// Held reports whether raw mode is currently acquired.
func (t *Terminal) Held() bool {
	return t.held
}

// Width returns the terminal width in columns, or fallback on error.
func (t *Terminal) Width(fallback int) int {
	ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return fallback
	}
	return int(ws.Col)
}

const (
	ClearLine         = "\033[2K"
	CursorHide        = "\033[?25l"
	CursorShow        = "\033[?25h"
	BracketedPasteOn  = "\033[?2004h"
	BracketedPasteOff = "\033[?2004l"
)

// CursorRight moves the cursor n columns right.
func CursorRight(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\033[%dC", n)
}

// CursorUp moves the cursor n lines up.
func CursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\033[%dA", n)
}

// CursorDown moves the cursor n lines down.
func CursorDown(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\033[%dB", n)
}
