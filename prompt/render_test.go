package prompt

import (
	"bytes"
	"strings"
	"testing"

	"slashline/key"
	"slashline/theme"
)

func newTestRenderer(out *bytes.Buffer) *renderer {
	return &renderer{out: out, text: "> ", styler: theme.Plain{}, width: 80}
}

func TestFrameNormal(t *testing.T) {
	c := newTestController()
	typeString(c, "abc")
	c.HandleEvent(key.Key(key.ArrowLeft))

	r := newTestRenderer(&bytes.Buffer{})
	line, col, below := r.frame(c)
	if line != "> abc" {
		t.Errorf("expected '> abc', got %q", line)
	}
	if col != 4 { // "> ab" before the cursor
		t.Errorf("expected col 4, got %d", col)
	}
	if len(below) != 0 {
		t.Errorf("expected no extra lines, got %q", below)
	}
}

func TestFrameSelectorLineCount(t *testing.T) {
	c := newTestController()
	c.HandleEvent(key.Char('/'))

	r := newTestRenderer(&bytes.Buffer{})
	line, _, below := r.frame(c)
	if line != "> /" {
		t.Errorf("expected '> /', got %q", line)
	}
	// 4 items, maxVisible 4: exactly one line per item, no indicators.
	if len(below) != 4 {
		t.Errorf("expected 4 picker lines, got %d: %q", len(below), below)
	}
}

func TestFrameSkillArgShowsHint(t *testing.T) {
	c := newTestController()
	typeString(c, "/read")
	c.HandleEvent(key.Key(key.Enter))

	r := newTestRenderer(&bytes.Buffer{})
	line, col, below := r.frame(c)
	if line != "> /read " {
		t.Errorf("expected '> /read ', got %q", line)
	}
	if col != len("> /read ") {
		t.Errorf("expected cursor after prefix, got %d", col)
	}
	if len(below) != 1 || !strings.Contains(below[0], "path") {
		t.Errorf("expected argument hint line, got %q", below)
	}

	// Hint disappears once typing starts.
	typeString(c, "x")
	_, _, below = r.frame(c)
	if len(below) != 0 {
		t.Errorf("expected no hint after typing, got %q", below)
	}
}

// With the plain styler every line below the input, hints and notices
// included, must be free of escape sequences.
func TestFramePlainStylerHasNoEscapes(t *testing.T) {
	c := newTestController()
	typeString(c, "/read")
	c.HandleEvent(key.Key(key.Enter))

	r := newTestRenderer(&bytes.Buffer{})
	_, _, below := r.frame(c)
	if len(below) != 1 || below[0] != "  path" {
		t.Errorf("expected bare hint line, got %q", below)
	}

	c = NewController(nil, nil, 4)
	c.HandleEvent(key.Char('/'))
	_, _, below = r.frame(c)
	if len(below) != 1 || strings.Contains(below[0], "\033") {
		t.Errorf("expected bare notice line, got %q", below)
	}
}

// Shrinking frames must clear the lines the previous frame drew.
func TestDrawErasesStaleLines(t *testing.T) {
	var out bytes.Buffer
	c := newTestController()
	r := newTestRenderer(&out)

	c.HandleEvent(key.Char('/'))
	r.draw(c)
	if r.extra != 4 {
		t.Fatalf("expected 4 extra lines recorded, got %d", r.extra)
	}

	out.Reset()
	c.HandleEvent(key.Key(key.Escape))
	r.draw(c)
	if r.extra != 0 {
		t.Errorf("expected 0 extra lines recorded, got %d", r.extra)
	}
	// The frame after closing the picker must still visit all four stale
	// lines to clear them.
	if got := strings.Count(out.String(), "\033[2K"); got < 5 {
		t.Errorf("expected at least 5 line clears, got %d", got)
	}
}

func TestDrawNotice(t *testing.T) {
	var out bytes.Buffer
	c := NewController(nil, nil, 4)
	r := newTestRenderer(&out)
	c.HandleEvent(key.Char('/'))
	r.draw(c)
	if !strings.Contains(out.String(), "no commands registered") {
		t.Error("expected notice in output")
	}

	// Notice is one-shot: the next frame drops it.
	out.Reset()
	r.draw(c)
	if strings.Contains(out.String(), "no commands registered") {
		t.Error("notice should not repeat")
	}
}
