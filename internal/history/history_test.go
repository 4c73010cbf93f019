package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempHistoryPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "history")
}

func TestOpen_MissingFileSeedsExamples(t *testing.T) {
	s, err := Open(tempHistoryPath(t))
	if err != nil {
		t.Fatalf("Open() with missing file returned error: %v", err)
	}

	got := s.Entries()
	if len(got) != len(Examples) {
		t.Fatalf("Entries() length = %d, want %d seeded examples", len(got), len(Examples))
	}
	for i, want := range Examples {
		if got[i] != want {
			t.Errorf("Entries()[%d] = %q, want %q", i, got[i], want)
		}
	}
}

func TestOpen_LoadsExistingFile(t *testing.T) {
	path := tempHistoryPath(t)
	if err := os.WriteFile(path, []byte("first\nsecond\nthird\n"), 0600); err != nil {
		t.Fatalf("failed to write history file: %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	want := []string{"first", "second", "third"}
	got := s.Entries()
	if len(got) != len(want) {
		t.Fatalf("Entries() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAdd_FIFOBound(t *testing.T) {
	s, err := Open(tempHistoryPath(t))
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}

	// Recording 150 entries must retain exactly the 100 most recent
	for i := 1; i <= 150; i++ {
		s.Add(fmt.Sprintf("entry-%d", i))
	}

	if s.Len() != MaxEntries {
		t.Fatalf("Len() = %d, want %d", s.Len(), MaxEntries)
	}
	got := s.Entries()
	if got[0] != "entry-51" {
		t.Errorf("oldest retained entry = %q, want %q", got[0], "entry-51")
	}
	if got[len(got)-1] != "entry-150" {
		t.Errorf("newest retained entry = %q, want %q", got[len(got)-1], "entry-150")
	}
}

func TestOpen_CapsOversizedFile(t *testing.T) {
	path := tempHistoryPath(t)

	var sb strings.Builder
	for i := 1; i <= 120; i++ {
		fmt.Fprintf(&sb, "line-%d\n", i)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		t.Fatalf("failed to write history file: %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	if s.Len() != MaxEntries {
		t.Fatalf("Len() = %d, want %d (oldest evicted on load)", s.Len(), MaxEntries)
	}
	if got := s.Entries()[0]; got != "line-21" {
		t.Errorf("oldest retained entry = %q, want %q", got, "line-21")
	}
}

func TestAdd_IgnoresBlank(t *testing.T) {
	s, err := Open(tempHistoryPath(t))
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	before := s.Len()

	s.Add("")
	s.Add("   ")
	s.Add("\t")

	if s.Len() != before {
		t.Errorf("Len() = %d after blank adds, want %d", s.Len(), before)
	}
}

func TestClose_WritesOneEntryPerLine(t *testing.T) {
	path := tempHistoryPath(t)

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	s.Add("hello world")
	s.Add("second entry")

	if err := s.Close(); err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read history file: %v", err)
	}
	content := string(data)
	if !strings.HasSuffix(content, "\n") {
		t.Error("history file should be newline-terminated")
	}

	// Round trip: reopening must restore the same entries
	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() after Close returned error: %v", err)
	}
	want := append(append([]string{}, Examples...), "hello world", "second entry")
	got := reopened.Entries()
	if len(got) != len(want) {
		t.Fatalf("Entries() length after round trip = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClose_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("history file was not created: %v", err)
	}
}
