// Package history provides read-only traversal over past prompt entries and
// a persistent store for the REPL host.
package history

// Navigator walks an ordered list of past entries (oldest first) without
// mutating it. navIndex == len(entries) means "at new input": the in-progress
// draft is saved on first navigation and restored when walking back down.
type Navigator struct {
	entries  []string
	navIndex int
	draft    string
}

// NewNavigator creates a Navigator over the caller's entries. The slice is
// not copied; the navigator never writes to it.
func NewNavigator(entries []string) *Navigator {
	return &Navigator{entries: entries, navIndex: len(entries)}
}

// AtNewInput reports whether navigation is at the in-progress draft.
func (n *Navigator) AtNewInput() bool {
	return n.navIndex == len(n.entries)
}

// Up moves to the previous (older) entry. current is the buffer content at
// the time of the call; it becomes the saved draft on the first step away
// from new input. Returns the entry to display and whether a move occurred.
func (n *Navigator) Up(current string) (string, bool) {
	if n.navIndex == 0 {
		return "", false
	}
	if n.AtNewInput() {
		n.draft = current
	}
	n.navIndex--
	return n.entries[n.navIndex], true
}

// Down moves to the next (newer) entry, or back to the saved draft when
// walking past the newest entry. Returns the text to display and whether a
// move occurred.
func (n *Navigator) Down() (string, bool) {
	if n.AtNewInput() {
		return "", false
	}
	n.navIndex++
	if n.AtNewInput() {
		return n.draft, true
	}
	return n.entries[n.navIndex], true
}

// Reset returns navigation to new input. Called whenever the buffer is
// modified, so a later Up starts from the newest entry again.
func (n *Navigator) Reset() {
	n.navIndex = len(n.entries)
	n.draft = ""
}
