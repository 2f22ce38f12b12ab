// Package key classifies raw terminal bytes into semantic key events.
package key

// Name identifies a semantic key. One Name may correspond to several raw
// byte sequences depending on the terminal emulator.
type Name int

const (
	None Name = iota
	ArrowLeft
	ArrowRight
	ArrowUp
	ArrowDown
	WordLeft
	WordRight
	Home
	End
	CtrlA
	CtrlE
	CtrlU
	CtrlK
	Backspace
	WordBackspace
	Delete
	WordDelete
	Tab
	Space
	Enter
	Escape
	CtrlC
	PasteStart
	PasteEnd
)

// String returns the key name for display and test failures.
func (n Name) String() string {
	switch n {
	case ArrowLeft:
		return "arrow-left"
	case ArrowRight:
		return "arrow-right"
	case ArrowUp:
		return "arrow-up"
	case ArrowDown:
		return "arrow-down"
	case WordLeft:
		return "word-left"
	case WordRight:
		return "word-right"
	case Home:
		return "home"
	case End:
		return "end"
	case CtrlA:
		return "ctrl-a"
	case CtrlE:
		return "ctrl-e"
	case CtrlU:
		return "ctrl-u"
	case CtrlK:
		return "ctrl-k"
	case Backspace:
		return "backspace"
	case WordBackspace:
		return "word-backspace"
	case Delete:
		return "delete"
	case WordDelete:
		return "word-delete"
	case Tab:
		return "tab"
	case Space:
		return "space"
	case Enter:
		return "enter"
	case Escape:
		return "escape"
	case CtrlC:
		return "ctrl-c"
	case PasteStart:
		return "paste-start"
	case PasteEnd:
		return "paste-end"
	}
	return "none"
}

// Event is a decoded key press: a printable character, a named key, or an
// unrecognized byte sequence.
type Event struct {
	Kind Kind
	Ch   byte   // printable character, when Kind == Printable
	Name Name   // named key, when Kind == Named
	Raw  []byte // original bytes, when Kind == Unknown
}

// Kind tags the event variant.
type Kind int

const (
	Printable Kind = iota
	Named
	Unknown
)

// Char builds a printable-character event.
func Char(ch byte) Event {
	return Event{Kind: Printable, Ch: ch}
}

// Key builds a named-key event.
func Key(n Name) Event {
	return Event{Kind: Named, Name: n}
}
