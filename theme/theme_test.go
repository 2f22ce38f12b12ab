package theme

import (
	"strings"
	"testing"
)

func TestHex(t *testing.T) {
	c := Hex("d75f5f")
	if c.R != 0xd7 || c.G != 0x5f || c.B != 0x5f {
		t.Errorf("unexpected color: %+v", c)
	}
	c = Hex("#5fd7d7")
	if c.R != 0x5f {
		t.Errorf("leading # should be accepted, got %+v", c)
	}
	if Hex("bad") != (Color{}) {
		t.Error("malformed hex should yield zero color")
	}
}

func TestFgEscape(t *testing.T) {
	got := Color{R: 1, G: 2, B: 3}.Fg()
	if got != "\033[38;2;1;2;3m" {
		t.Errorf("unexpected escape: %q", got)
	}
}

func TestSetAndNext(t *testing.T) {
	defer Set("default-dark")
	if !Set("nord") {
		t.Fatal("expected 'nord' to exist")
	}
	if Current.Name != "nord" {
		t.Errorf("expected nord active, got %s", Current.Name)
	}
	if Set("no-such-theme") {
		t.Error("unknown theme should not match")
	}
	next := Next()
	if next.Name == "nord" {
		t.Error("Next should advance")
	}
}

func TestStyledSelected(t *testing.T) {
	s := Styled{Theme: DefaultDark}
	got := s.Selected("line")
	if !strings.Contains(got, "line") || !strings.HasSuffix(got, "\033[0m") {
		t.Errorf("expected styled line with reset, got %q", got)
	}
}

func TestPlainPassesThrough(t *testing.T) {
	p := Plain{}
	if p.Selected("▸ x") != "▸ x" || p.Normal("  x") != "  x" {
		t.Error("plain styler should not alter lines")
	}
}
