// Package paste reassembles bracketed-paste payloads that may arrive split
// across multiple terminal reads.
package paste

import (
	"bytes"
	"strings"

	"slashline/key"
)

// Kind tags the outcome of a Feed call.
type Kind int

const (
	// NotPasting: no paste marker seen; the chunk is ordinary input.
	NotPasting Kind = iota
	// Continuing: inside a paste envelope, end marker not yet seen.
	Continuing
	// Complete: end marker found; Text holds the normalized payload.
	Complete
)

// Result describes what Feed did with a chunk.
type Result struct {
	Kind     Kind
	Text     string // normalized payload, when Kind == Complete
	Leftover []byte // bytes after the end marker, to be re-fed as ordinary input
}

// Aggregator accumulates bytes between paste-start and paste-end markers.
// Once active, every incoming byte is appended until the end marker shows up
// in the cumulative stream. A trailing partial start marker is held back
// between feeds so an envelope split at any byte offset still reassembles.
type Aggregator struct {
	active      bool
	accumulated []byte
	pending     []byte // possible partial start marker from the last chunk
}

// New creates an idle Aggregator.
func New() *Aggregator {
	return &Aggregator{}
}

// Active reports whether a paste envelope is open.
func (a *Aggregator) Active() bool {
	return a.active
}

// Feed consumes one raw chunk. pre holds any bytes that precede a paste-start
// marker and should go through normal key decoding; res describes the paste
// outcome. On Complete, res.Leftover must be re-fed through the normal path.
func (a *Aggregator) Feed(chunk []byte) (pre []byte, res Result) {
	start := []byte(key.PasteStartSeq)
	end := []byte(key.PasteEndSeq)

	if !a.active {
		if len(a.pending) > 0 {
			chunk = append(append([]byte(nil), a.pending...), chunk...)
			a.pending = nil
		}
		idx := bytes.Index(chunk, start)
		if idx < 0 {
			// Hold back a trailing prefix of the start marker; the rest of
			// the marker may arrive in the next read.
			if k := partialSuffix(chunk, start); k > 0 {
				a.pending = append([]byte(nil), chunk[len(chunk)-k:]...)
				chunk = chunk[:len(chunk)-k]
			}
			return chunk, Result{Kind: NotPasting}
		}
		pre = chunk[:idx]
		rest := chunk[idx+len(start):]
		if e := bytes.Index(rest, end); e >= 0 {
			// Whole envelope arrived in one read.
			return pre, Result{
				Kind:     Complete,
				Text:     Normalize(string(rest[:e])),
				Leftover: rest[e+len(end):],
			}
		}
		a.active = true
		a.accumulated = append(a.accumulated[:0], rest...)
		return pre, Result{Kind: Continuing}
	}

	a.accumulated = append(a.accumulated, chunk...)
	if e := bytes.Index(a.accumulated, end); e >= 0 {
		text := Normalize(string(a.accumulated[:e]))
		leftover := append([]byte(nil), a.accumulated[e+len(end):]...)
		a.active = false
		a.accumulated = a.accumulated[:0]
		return nil, Result{Kind: Complete, Text: text, Leftover: leftover}
	}
	return nil, Result{Kind: Continuing}
}

// TakePending returns and clears any held-back partial start marker. Called
// on idle reads: if no further bytes arrived, the held prefix was a real
// keypress (for example a lone Escape), not the start of a paste.
func (a *Aggregator) TakePending() []byte {
	if a.active || len(a.pending) == 0 {
		return nil
	}
	p := a.pending
	a.pending = nil
	return p
}

// Reset abandons any open envelope.
func (a *Aggregator) Reset() {
	a.active = false
	a.accumulated = a.accumulated[:0]
	a.pending = nil
}

// partialSuffix returns the length of the longest proper prefix of marker
// that chunk ends with, or 0.
func partialSuffix(chunk, marker []byte) int {
	max := len(marker) - 1
	if max > len(chunk) {
		max = len(chunk)
	}
	for k := max; k > 0; k-- {
		if bytes.HasSuffix(chunk, marker[:k]) {
			return k
		}
	}
	return 0
}

// Normalize replaces every newline byte with a space; the line buffer is
// single-line only.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	return text
}
