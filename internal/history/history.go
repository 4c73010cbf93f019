// Package history manages the bounded, persisted input history for
// interactive sessions.
//
// A Session is a scoped resource: Open loads prior entries (or seeds
// defaults on first run), Add records inputs during the session, and
// Close flushes everything back to disk. Callers defer Close on normal
// exit paths, so persistence is best-effort and does not survive an
// abnormal termination.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quocvuong92/chat-cli/internal/config"
)

// MaxEntries caps the number of retained history entries. The cap is
// enforced on load and on every Add, oldest entries evicted first.
const MaxEntries = 100

// Examples seed a fresh history so tab-recall has something to offer on
// first run. They are never replayed as actions.
var Examples = []string{
	"What is love?",
	"Have you heard about an open-source app called ActivityWatch?",
	"Explain 'Attention is All You Need' in the style of Andrej Karpathy.",
	"Explain how public-key cryptography works as if I'm five.",
	"Write a Python script that prints the first 100 prime numbers.",
	"Find all TODOs in the current git project",
}

// DefaultPath returns the location of the user's history file.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", config.AppName, "history"), nil
}

// Session is an in-memory view of the history file, bounded to
// MaxEntries. It is not safe for concurrent use.
type Session struct {
	path    string
	entries []string
}

// Open loads prior entries from path, one per line. A missing file is
// treated as a first run, not an error: the session is seeded with
// Examples instead.
func Open(path string) (*Session, error) {
	s := &Session{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.entries = append(s.entries, Examples...)
			return s, nil
		}
		return nil, fmt.Errorf("failed to read history file %s: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			s.add(line)
		}
	}
	return s, nil
}

// Add records an interactive input. Blank inputs are ignored.
func (s *Session) Add(entry string) {
	if strings.TrimSpace(entry) == "" {
		return
	}
	s.add(entry)
}

func (s *Session) add(entry string) {
	s.entries = append(s.entries, entry)
	if len(s.entries) > MaxEntries {
		s.entries = s.entries[len(s.entries)-MaxEntries:]
	}
}

// Entries returns a copy of the retained history, oldest first.
func (s *Session) Entries() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of retained entries.
func (s *Session) Len() int {
	return len(s.entries)
}

// Close writes the in-memory history back to disk, newline-terminated,
// one entry per line.
func (s *Session) Close() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	var sb strings.Builder
	for _, entry := range s.entries {
		sb.WriteString(entry)
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(s.path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write history file %s: %w", s.path, err)
	}
	return nil
}
