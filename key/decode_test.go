package key

import "testing"

func TestDecodeNamedSequences(t *testing.T) {
	cases := []struct {
		chunk string
		want  Name
	}{
		{"\033[A", ArrowUp},
		{"\033OA", ArrowUp},
		{"\033[D", ArrowLeft},
		{"\033[H", Home},
		{"\033[1~", Home},
		{"\033OF", End},
		{"\033[1;5D", WordLeft},
		{"\033[1;3D", WordLeft},
		{"\033b", WordLeft},
		{"\033[1;5C", WordRight},
		{"\033f", WordRight},
		{"\x08", WordBackspace},
		{"\x17", WordBackspace},
		{"\033\x7f", WordBackspace},
		{"\x7f", Backspace},
		{"\033[3~", Delete},
		{"\033[3;5~", WordDelete},
		{"\033d", WordDelete},
		{"\x01", CtrlA},
		{"\x05", CtrlE},
		{"\x15", CtrlU},
		{"\x0b", CtrlK},
		{"\x03", CtrlC},
		{"\x09", Tab},
		{"\x0d", Enter},
		{"\x0a", Enter},
		{"\x1b", Escape},
		{" ", Space},
	}
	for _, c := range cases {
		events := Decode([]byte(c.chunk))
		if len(events) != 1 {
			t.Errorf("%q: expected 1 event, got %d", c.chunk, len(events))
			continue
		}
		ev := events[0]
		if ev.Kind != Named || ev.Name != c.want {
			t.Errorf("%q: expected %v, got kind=%d name=%v", c.chunk, c.want, ev.Kind, ev.Name)
		}
	}
}

func TestDecodePrintable(t *testing.T) {
	events := Decode([]byte("a"))
	if len(events) != 1 || events[0].Kind != Printable || events[0].Ch != 'a' {
		t.Errorf("expected Printable 'a', got %+v", events)
	}
}

// Fast typing can deliver several characters in one read.
func TestDecodePrintableRun(t *testing.T) {
	events := Decode([]byte("hi u"))
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}
	if events[0].Ch != 'h' || events[1].Ch != 'i' {
		t.Errorf("unexpected chars: %+v", events)
	}
	if events[2].Kind != Named || events[2].Name != Space {
		t.Errorf("expected Space, got %+v", events[2])
	}
	if events[3].Ch != 'u' {
		t.Errorf("expected 'u', got %+v", events[3])
	}
}

func TestDecodeUnknown(t *testing.T) {
	// Unmodeled escape sequence (mouse reporting fragment).
	events := Decode([]byte("\033[M abc"))
	if len(events) != 1 || events[0].Kind != Unknown {
		t.Fatalf("expected one Unknown, got %+v", events)
	}
	if string(events[0].Raw) != "\033[M abc" {
		t.Errorf("Raw should keep original bytes, got %q", events[0].Raw)
	}
}

// A split escape sequence degrades to Unknown fragments; this is the
// documented limitation, not an accident.
func TestDecodeSplitSequenceDegrades(t *testing.T) {
	first := Decode([]byte("\033["))
	if len(first) != 1 || first[0].Kind != Unknown {
		t.Errorf("expected Unknown for fragment, got %+v", first)
	}
}

func TestDecodeEmpty(t *testing.T) {
	if events := Decode(nil); events != nil {
		t.Errorf("expected nil, got %+v", events)
	}
}

func TestDecodeHighBytes(t *testing.T) {
	events := Decode([]byte{0xc3, 0xa9}) // é
	if len(events) != 1 || events[0].Kind != Unknown {
		t.Errorf("non-ASCII should be Unknown, got %+v", events)
	}
}
