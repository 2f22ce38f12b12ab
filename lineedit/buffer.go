// Package lineedit provides a single-line text buffer with cursor tracking
// and emacs-style editing primitives.
package lineedit

// Change describes the effect of an operation, so callers can decide whether
// a redraw is needed and whether history navigation should reset.
type Change int

const (
	NoChange Change = iota
	CursorOnly
	Modified
)

// Buffer is a single-line text buffer. Content never holds newlines; paste
// text is normalized before insertion. Invariant: 0 <= cursor <= len(text).
type Buffer struct {
	text   []byte
	cursor int
}

// New creates a new empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// Text returns the current text.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Len returns the length of the text.
func (b *Buffer) Len() int {
	return len(b.text)
}

// BeforeCursor returns text before the cursor.
func (b *Buffer) BeforeCursor() string {
	return string(b.text[:b.cursor])
}

// AfterCursor returns text from cursor to end.
func (b *Buffer) AfterCursor() string {
	return string(b.text[b.cursor:])
}

// Set replaces the text and moves cursor to end.
func (b *Buffer) Set(text string) {
	b.text = []byte(text)
	b.cursor = len(b.text)
}

// Insert splices text at the cursor and advances the cursor past it.
func (b *Buffer) Insert(text string) Change {
	if text == "" {
		return NoChange
	}
	out := make([]byte, 0, len(b.text)+len(text))
	out = append(out, b.text[:b.cursor]...)
	out = append(out, text...)
	out = append(out, b.text[b.cursor:]...)
	b.text = out
	b.cursor += len(text)
	return Modified
}

// DeleteBack removes the character before the cursor (backspace).
func (b *Buffer) DeleteBack() Change {
	if b.cursor == 0 {
		return NoChange
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
	return Modified
}

// DeleteForward removes the character at the cursor (delete).
func (b *Buffer) DeleteForward() Change {
	if b.cursor >= len(b.text) {
		return NoChange
	}
	b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
	return Modified
}

// MoveLeft moves cursor one character left, clamping at the start.
func (b *Buffer) MoveLeft() Change {
	if b.cursor == 0 {
		return NoChange
	}
	b.cursor--
	return CursorOnly
}

// MoveRight moves cursor one character right, clamping at the end.
func (b *Buffer) MoveRight() Change {
	if b.cursor >= len(b.text) {
		return NoChange
	}
	b.cursor++
	return CursorOnly
}

// Home moves cursor to the beginning of the line.
func (b *Buffer) Home() Change {
	if b.cursor == 0 {
		return NoChange
	}
	b.cursor = 0
	return CursorOnly
}

// End moves cursor to the end of the line.
func (b *Buffer) End() Change {
	if b.cursor == len(b.text) {
		return NoChange
	}
	b.cursor = len(b.text)
	return CursorOnly
}

// ClearLine resets the buffer to empty with the cursor at 0.
func (b *Buffer) ClearLine() Change {
	if len(b.text) == 0 && b.cursor == 0 {
		return NoChange
	}
	b.text = b.text[:0]
	b.cursor = 0
	return Modified
}

// KillToEnd deletes from cursor to end of line (Ctrl+K).
func (b *Buffer) KillToEnd() Change {
	if b.cursor >= len(b.text) {
		return NoChange
	}
	b.text = b.text[:b.cursor]
	return Modified
}

// KillToStart deletes from beginning of line to cursor (Ctrl+U).
func (b *Buffer) KillToStart() Change {
	if b.cursor == 0 {
		return NoChange
	}
	b.text = append(b.text[:0], b.text[b.cursor:]...)
	b.cursor = 0
	return Modified
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// PrevWordBoundary finds the previous word boundary: skip whitespace
// leftward, then skip the word itself. A run of whitespace is a boundary,
// not a word, giving shell-like word semantics.
func (b *Buffer) PrevWordBoundary() int {
	i := b.cursor
	for i > 0 && isSpace(b.text[i-1]) {
		i--
	}
	for i > 0 && !isSpace(b.text[i-1]) {
		i--
	}
	return i
}

// NextWordBoundary finds the next word boundary: skip the word rightward,
// then skip whitespace.
func (b *Buffer) NextWordBoundary() int {
	i := b.cursor
	for i < len(b.text) && !isSpace(b.text[i]) {
		i++
	}
	for i < len(b.text) && isSpace(b.text[i]) {
		i++
	}
	return i
}

// WordLeft moves cursor to the previous word boundary.
func (b *Buffer) WordLeft() Change {
	pos := b.PrevWordBoundary()
	if pos == b.cursor {
		return NoChange
	}
	b.cursor = pos
	return CursorOnly
}

// WordRight moves cursor to the next word boundary.
func (b *Buffer) WordRight() Change {
	pos := b.NextWordBoundary()
	if pos == b.cursor {
		return NoChange
	}
	b.cursor = pos
	return CursorOnly
}

// DeleteWordBack deletes from the previous word boundary to the cursor.
func (b *Buffer) DeleteWordBack() Change {
	pos := b.PrevWordBoundary()
	if pos == b.cursor {
		return NoChange
	}
	b.text = append(b.text[:pos], b.text[b.cursor:]...)
	b.cursor = pos
	return Modified
}

// DeleteWordForward deletes from the cursor to the next word boundary.
func (b *Buffer) DeleteWordForward() Change {
	pos := b.NextWordBoundary()
	if pos == b.cursor {
		return NoChange
	}
	b.text = append(b.text[:b.cursor], b.text[pos:]...)
	return Modified
}
