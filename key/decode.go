package key

// Bracketed paste markers. Decode never matches these itself; the paste
// aggregator strips them out of the stream before decoding. They are
// exported so both layers agree on the exact bytes.
const (
	PasteStartSeq = "\033[200~"
	PasteEndSeq   = "\033[201~"
)

// sequences maps raw byte sequences to named keys. Matching is exact over
// the whole chunk; there is no prefix matching. Several sequences per name
// cover terminal variance (CSI vs SS3, modifier encodings, Alt-as-ESC).
var sequences = map[string]Name{
	// Arrows: CSI and SS3 (application cursor mode).
	"\033[A": ArrowUp,
	"\033[B": ArrowDown,
	"\033[C": ArrowRight,
	"\033[D": ArrowLeft,
	"\033OA": ArrowUp,
	"\033OB": ArrowDown,
	"\033OC": ArrowRight,
	"\033OD": ArrowLeft,

	// Home/End: CSI letter, SS3 letter, and VT-style numeric.
	"\033[H":  Home,
	"\033OH":  Home,
	"\033[1~": Home,
	"\033[F":  End,
	"\033OF":  End,
	"\033[4~": End,

	// Word navigation: Ctrl+Arrow, Alt+Arrow, Alt+b/f, bare modifier CSI.
	"\033[1;5D": WordLeft,
	"\033[1;3D": WordLeft,
	"\033[5D":   WordLeft,
	"\033b":     WordLeft,
	"\033[1;5C": WordRight,
	"\033[1;3C": WordRight,
	"\033[5C":   WordRight,
	"\033f":     WordRight,

	// Word deletion backward: Ctrl+Backspace (BS), Ctrl+W, Alt+Backspace.
	"\x08":     WordBackspace,
	"\x17":     WordBackspace,
	"\033\x7f": WordBackspace,
	"\033\x08": WordBackspace,

	// Word deletion forward: Ctrl+Delete, Alt+Delete, Alt+d.
	"\033[3;5~": WordDelete,
	"\033[3;3~": WordDelete,
	"\033d":     WordDelete,

	// Plain editing keys.
	"\x7f":    Backspace,
	"\033[3~": Delete,

	// Control characters.
	"\x01": CtrlA,
	"\x05": CtrlE,
	"\x15": CtrlU,
	"\x0b": CtrlK,
	"\x03": CtrlC,
	"\x09": Tab,
	"\x0d": Enter,
	"\x0a": Enter,
	"\x1b": Escape,
	" ":    Space,
}

// Decode classifies one raw chunk of input. A chunk may hold several logical
// keys (fast typing) or exactly one escape sequence; it is matched whole
// against the sequence table first, then split into printable characters.
//
// Known limitation: a terminal that splits a multi-byte escape sequence
// across two reads produces two Unknown events instead of one Named event.
// Fragments are dropped rather than reassembled.
func Decode(chunk []byte) []Event {
	if len(chunk) == 0 {
		return nil
	}

	if name, ok := sequences[string(chunk)]; ok {
		return []Event{Key(name)}
	}

	// A run of printable ASCII is individual keystrokes delivered together.
	if allPrintable(chunk) {
		events := make([]Event, 0, len(chunk))
		for _, b := range chunk {
			if b == ' ' {
				events = append(events, Key(Space))
			} else {
				events = append(events, Char(b))
			}
		}
		return events
	}

	raw := make([]byte, len(chunk))
	copy(raw, chunk)
	return []Event{{Kind: Unknown, Raw: raw}}
}

func allPrintable(chunk []byte) bool {
	for _, b := range chunk {
		if b < ' ' || b > '~' {
			return false
		}
	}
	return true
}
