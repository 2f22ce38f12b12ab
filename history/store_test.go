package history

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	for _, e := range []string{"one", "two", "three"} {
		if err := s.Append(e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRecentLimitKeepsNewest(t *testing.T) {
	s := openTestStore(t)
	for _, e := range []string{"a", "b", "c", "d"} {
		s.Append(e)
	}
	got, err := s.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 || got[0] != "c" || got[1] != "d" {
		t.Errorf("expected [c d], got %v", got)
	}
}

func TestAppendSkipsBlankAndDuplicate(t *testing.T) {
	s := openTestStore(t)
	s.Append("")
	s.Append("same")
	s.Append("same")
	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 entry, got %v", got)
	}
}

func TestSessionID(t *testing.T) {
	s := openTestStore(t)
	if s.Session() == "" {
		t.Error("expected a session id")
	}
}

// Entries written by an earlier run must not show up in the current run's
// session view, while Recent still sees everything.
func TestRecentSessionScopedToRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	if err := first.Append("earlier run"); err != nil {
		t.Fatalf("append: %v", err)
	}
	first.Close()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.Append("this run"); err != nil {
		t.Fatalf("append: %v", err)
	}

	all, err := s.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both entries, got %v", all)
	}
	got, err := s.RecentSession(10)
	if err != nil {
		t.Fatalf("recent session: %v", err)
	}
	if len(got) != 1 || got[0] != "this run" {
		t.Errorf("expected only this run's entry, got %v", got)
	}
}
